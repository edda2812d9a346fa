package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zyppr/database/repository"
	"zyppr/models"
)

func customerSignupData() map[string]string {
	return map[string]string{
		"first_name":       "Jane",
		"last_name":        "Doe",
		"email":            "jane@example.com",
		"address":          "1 Main St",
		"zipcode":          "10001",
		"password":         "s3cret!",
		"confirm_password": "s3cret!",
	}
}

func ownerSignupData() map[string]string {
	return map[string]string{
		"business_name": "Serenity Now Yoga",
		"address":       "123 Wellness Way",
		"zipcode":       "10001",
		"email":         "owner@example.com",
		"password":      "s3cret!",
		"category":      "Yoga",
	}
}

func newTestUserService() (*DefaultUserService, *repository.MemoryUserRepo, *repository.MemoryBusinessRepo) {
	users := repository.NewMemoryUserRepo()
	businesses := repository.NewMemoryBusinessRepo()
	svc := NewDefaultUserService(users, businesses, nil)
	svc.Now = func() time.Time { return time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC) }
	return svc, users, businesses
}

func TestSignup_Customer(t *testing.T) {
	svc, users, _ := newTestUserService()

	resp, err := svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleCustomer, resp.User.Role)
	require.NotNil(t, resp.User.Customer)
	assert.Equal(t, "Jane", resp.User.Customer.FirstName)
	assert.NotEqual(t, "s3cret!", resp.User.PasswordHash)

	stored, err := users.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, stored.ID)
}

func TestSignup_MissingFieldsListed(t *testing.T) {
	svc, _, _ := newTestUserService()

	data := customerSignupData()
	delete(data, "first_name")
	delete(data, "zipcode")

	_, err := svc.Signup(context.Background(), models.RoleCustomer, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first_name")
	assert.Contains(t, err.Error(), "zipcode")
}

func TestSignup_PasswordMismatch(t *testing.T) {
	svc, _, _ := newTestUserService()

	data := customerSignupData()
	data["confirm_password"] = "different"

	_, err := svc.Signup(context.Background(), models.RoleCustomer, data)
	assert.ErrorContains(t, err, "do not match")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService()

	_, err := svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	require.NoError(t, err)
	_, err = svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignup_OwnerCreatesSeededBusiness(t *testing.T) {
	svc, _, businesses := newTestUserService()

	resp, err := svc.Signup(context.Background(), models.RoleBusinessOwner, ownerSignupData())
	require.NoError(t, err)
	require.NotNil(t, resp.User.Business)
	assert.Equal(t, models.CategoryYoga, resp.User.Business.Category)
	require.NotEmpty(t, resp.User.BusinessID)

	biz, err := businesses.GetByID(context.Background(), resp.User.BusinessID)
	require.NoError(t, err)
	assert.Equal(t, "Serenity Now Yoga", biz.Name)
	assert.Equal(t, models.TypeYogaStudio, biz.Type)
	assert.False(t, biz.IsDemo)
	assert.NotEmpty(t, biz.Services)
	assert.NotEmpty(t, biz.Appointments)
	for _, s := range biz.Services {
		assert.True(t, s.IsDemo)
	}
}

func TestLogin_RoleParticipatesInMatch(t *testing.T) {
	svc, _, _ := newTestUserService()
	_, err := svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), "jane@example.com", "s3cret!", models.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), "jane@example.com", "s3cret!", models.RoleBusinessOwner)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestUserService()
	_, err := svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPassword(t *testing.T) {
	svc, _, _ := newTestUserService()
	resp, err := svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), resp.User.ID, "wrong", "newpass")
	assert.ErrorContains(t, err, "incorrect old password")

	require.NoError(t, svc.ResetPassword(context.Background(), resp.User.ID, "s3cret!", "newpass"))

	_, err = svc.Login(context.Background(), "jane@example.com", "newpass", models.RoleCustomer)
	assert.NoError(t, err)
}

func TestUpdateProfile_CustomerOnly(t *testing.T) {
	svc, _, _ := newTestUserService()
	resp, err := svc.Signup(context.Background(), models.RoleCustomer, customerSignupData())
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), resp.User.ID, models.CustomerProfile{
		FirstName: "Janet", LastName: "Doe", Address: "2 Side St", Zipcode: "10002",
	})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.Customer.FirstName)
	assert.Equal(t, "10002", updated.Customer.Zipcode)

	_, err = svc.UpdateProfile(context.Background(), "user_missing", models.CustomerProfile{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
