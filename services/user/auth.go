package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"zyppr/database/repository"
	"zyppr/models"
	"zyppr/services/business"
	"zyppr/utils"
)

var customerSignupFields = []string{"first_name", "last_name", "email", "address", "zipcode", "password", "confirm_password"}

var ownerSignupFields = []string{"business_name", "address", "zipcode", "email", "password", "category"}

func missingFields(data map[string]string, required []string) []string {
	var missing []string
	for _, f := range required {
		if data[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Signup registers a new account. Mandatory fields depend on the role;
// owner signup additionally creates the linked business, pre-seeded with
// category-appropriate starter content so the dashboard is never empty.
func (s *DefaultUserService) Signup(ctx context.Context, role models.Role, data map[string]string) (*AuthResponse, error) {
	existing, err := s.Users.GetByEmail(ctx, data["email"])
	if err != nil && err != repository.ErrNotFound {
		utils.GetLogger().Error("Signup: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	var required []string
	switch role {
	case models.RoleCustomer:
		required = customerSignupFields
	case models.RoleBusinessOwner:
		required = ownerSignupFields
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if missing := missingFields(data, required); len(missing) > 0 {
		return nil, fmt.Errorf("missing mandatory fields: %s", strings.Join(missing, ", "))
	}
	if role == models.RoleCustomer && data["password"] != data["confirm_password"] {
		return nil, fmt.Errorf("passwords do not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data["password"]), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Signup: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := models.User{
		ID:           "user_" + uuid.NewString(),
		Email:        data["email"],
		PasswordHash: string(hashed),
		Role:         role,
	}

	switch role {
	case models.RoleCustomer:
		newUser.Customer = &models.CustomerProfile{
			FirstName:       data["first_name"],
			LastName:        data["last_name"],
			Address:         data["address"],
			Zipcode:         data["zipcode"],
			ApartmentNumber: data["apartment_number"],
		}
	case models.RoleBusinessOwner:
		category := models.BusinessCategory(data["category"])
		demo := business.GenerateOwnerDemoData(category, s.Rng, s.now())

		biz := models.Business{
			ID:            "biz_" + uuid.NewString(),
			Name:          data["business_name"],
			Type:          models.TypeForCategory(category),
			Timezone:      "America/New_York",
			Zipcode:       data["zipcode"],
			Address:       data["address"],
			Photos:        demo.Photos,
			Announcements: demo.Announcements,
			Services:      demo.Services,
			Appointments:  demo.Appointments,
		}
		if err := s.appendBusiness(ctx, biz); err != nil {
			return nil, err
		}

		newUser.BusinessID = biz.ID
		newUser.Business = &models.BusinessProfile{
			BusinessName:  data["business_name"],
			Address:       data["address"],
			Zipcode:       data["zipcode"],
			Category:      category,
			Photos:        demo.Photos,
			Announcements: demo.Announcements,
		}
	}

	users, err := s.Users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	users = append(users, newUser)
	if err := s.Users.ReplaceAll(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	return s.issueToken(ctx, newUser)
}

// Login authenticates by email, password and role. Role participates in the
// match so a customer and an owner can share an email address.
func (s *DefaultUserService) Login(ctx context.Context, email, password string, role models.Role) (*AuthResponse, error) {
	found, err := s.Users.GetByEmail(ctx, email)
	if err == repository.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if found.Role != role {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, *found)
}

// Logout revokes the session for the given token hash.
func (s *DefaultUserService) Logout(ctx context.Context, tokenHash string) error {
	if s.Sessions == nil {
		return nil
	}
	return utils.ClearAuthSession(ctx, s.Sessions, tokenHash)
}

// ResetPassword verifies the old password before rehashing the new one.
func (s *DefaultUserService) ResetPassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	users, err := s.Users.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(oldPassword)); err != nil {
			return fmt.Errorf("incorrect old password")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		users[i].PasswordHash = string(hashed)
		if err := s.Users.ReplaceAll(ctx, users); err != nil {
			return fmt.Errorf("failed to persist password change: %w", err)
		}
		return nil
	}
	return ErrUserNotFound
}

func (s *DefaultUserService) appendBusiness(ctx context.Context, biz models.Business) error {
	businesses, err := s.Businesses.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load businesses: %w", err)
	}
	businesses = append(businesses, biz)
	if err := s.Businesses.ReplaceAll(ctx, businesses); err != nil {
		return fmt.Errorf("failed to persist business: %w", err)
	}
	return nil
}

func (s *DefaultUserService) issueToken(ctx context.Context, u models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, utils.AuthSessionTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if s.Sessions != nil {
		session := utils.AuthSession{
			UserID:    u.ID,
			Email:     u.Email,
			Role:      string(u.Role),
			CreatedAt: s.now(),
		}
		if err := utils.SaveAuthSession(ctx, s.Sessions, utils.HashToken(token), session); err != nil {
			return nil, fmt.Errorf("failed to create auth session: %w", err)
		}
	}
	return &AuthResponse{User: u, Token: token}, nil
}
