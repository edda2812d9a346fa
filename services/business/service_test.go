package business

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zyppr/database/repository"
	"zyppr/models"
)

func strPtrT(s string) *string { return &s }

func newTestService(users *repository.MemoryUserRepo, businesses *repository.MemoryBusinessRepo) *DefaultBusinessService {
	svc := NewDefaultBusinessService(users, businesses)
	svc.Rng = rand.New(rand.NewSource(1))
	svc.Now = func() time.Time { return time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC) }
	return svc
}

func seedBusiness() models.Business {
	return models.Business{
		ID:      "biz_1",
		Name:    "Serenity Now Yoga",
		Type:    models.TypeYogaStudio,
		Zipcode: "10001",
		Services: []models.Service{
			{
				ID:              "svc_1",
				Name:            "Vinyasa Flow",
				DurationMinutes: 60,
				Category:        "Yoga",
				WeeklySchedule:  []models.ScheduleEntry{{Day: "Monday", Time: "09:00"}},
			},
		},
	}
}

func TestListForCustomer_RealBusinesses(t *testing.T) {
	svc := newTestService(repository.NewMemoryUserRepo(), repository.NewMemoryBusinessRepo(seedBusiness()))

	got, err := svc.ListForCustomer(context.Background(), "10001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "biz_1", got[0].ID)
	assert.False(t, got[0].IsDemo)
}

func TestListForCustomer_FiltersByZipcode(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	// The seeded tenant serves 10001, so a 90210 customer sees demos instead.
	got, err := svc.ListForCustomer(context.Background(), "90210")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.IsDemo)
		assert.Equal(t, "90210", b.Zipcode)
	}

	got, err = svc.ListForCustomer(context.Background(), "10001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "biz_1", got[0].ID)

	// No zipcode on the request means no locality filter.
	got, err = svc.ListForCustomer(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "biz_1", got[0].ID)
}

func TestListForCustomer_EmptyZipcodeFallsBackToDemos(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo()
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	got, err := svc.ListForCustomer(context.Background(), "90210")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.IsDemo)
		assert.Equal(t, "90210", b.Zipcode)
		assert.NotEmpty(t, b.Services)
	}

	// Demo tenants never reach the store.
	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByID_RegeneratesDemoTenant(t *testing.T) {
	svc := newTestService(repository.NewMemoryUserRepo(), repository.NewMemoryBusinessRepo())

	b, err := svc.GetByID(context.Background(), demoBusinessPrefix+"yoga_1")
	require.NoError(t, err)
	assert.True(t, b.IsDemo)
	assert.Equal(t, "Serenity Now Yoga", b.Name)

	_, err = svc.GetByID(context.Background(), demoBusinessPrefix+"nope")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestAddService_GeneratesNonOverlappingSchedule(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	created, err := svc.AddService(context.Background(), "biz_1", models.Service{
		Name:            "Meditation Circle",
		DurationMinutes: 30,
		Category:        "Meditation",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "svc_"))
	assert.NotEmpty(t, created.WeeklySchedule)
	for _, e := range created.WeeklySchedule {
		assert.False(t, e.Day == "Monday" && e.Time == "09:00" ||
			e.Day == "Monday" && e.Time == "09:30",
			"generated slot %s %s collides with existing schedule", e.Day, e.Time)
	}

	stored, err := repo.GetByID(context.Background(), "biz_1")
	require.NoError(t, err)
	assert.Len(t, stored.Services, 2)
}

func TestRemovePhoto(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	added, err := svc.AddPhoto(context.Background(), "biz_1", "https://res.cloudinary.com/demo/image/upload/v1/zyppr/biz_1/a.jpg", "Studio")
	require.NoError(t, err)

	removed, err := svc.RemovePhoto(context.Background(), "biz_1", added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.URL, removed.URL)

	stored, err := repo.GetByID(context.Background(), "biz_1")
	require.NoError(t, err)
	assert.Empty(t, stored.Photos)

	_, err = svc.RemovePhoto(context.Background(), "biz_1", added.ID)
	assert.ErrorIs(t, err, ErrPhotoNotFound)

	_, err = svc.RemovePhoto(context.Background(), "biz_nope", added.ID)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestBookAppointment_Succeeds(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	start := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	created, err := svc.BookAppointment(context.Background(), "biz_1", models.Appointment{
		ServiceID:   "svc_1",
		ServiceName: "Vinyasa Flow",
		Customer:    models.Customer{Name: "Jane Doe", Email: strPtrT("jane@example.com")},
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "appt_"))
	assert.Equal(t, models.AppointmentConfirmed, created.Status)
}

func TestBookAppointment_RejectsTakenSlot(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	start := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	appt := models.Appointment{
		ServiceName: "Vinyasa Flow",
		Customer:    models.Customer{Name: "Jane Doe"},
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
	_, err := svc.BookAppointment(context.Background(), "biz_1", appt)
	require.NoError(t, err)

	appt.Customer.Name = "John Smith"
	_, err = svc.BookAppointment(context.Background(), "biz_1", appt)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestBookAppointment_CancelledSlotReopens(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	start := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	appt := models.Appointment{
		ServiceName: "Vinyasa Flow",
		Customer:    models.Customer{Name: "Jane Doe"},
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
	created, err := svc.BookAppointment(context.Background(), "biz_1", appt)
	require.NoError(t, err)
	require.NoError(t, svc.CancelAppointment(context.Background(), created.ID))

	_, err = svc.BookAppointment(context.Background(), "biz_1", appt)
	assert.NoError(t, err)
}

func TestBookAppointment_UnknownService(t *testing.T) {
	svc := newTestService(repository.NewMemoryUserRepo(), repository.NewMemoryBusinessRepo(seedBusiness()))

	_, err := svc.BookAppointment(context.Background(), "biz_1", models.Appointment{
		ServiceID:   "svc_missing",
		ServiceName: "Hot Stone Massage",
		Customer:    models.Customer{Name: "Jane Doe"},
		StartTime:   time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCancelAppointment_MissingLeavesStateUntouched(t *testing.T) {
	seed := seedBusiness()
	start := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	seed.Appointments = []models.Appointment{{
		ID:          "appt_1",
		ServiceName: "Vinyasa Flow",
		Customer:    models.Customer{Name: "Jane Doe"},
		StartTime:   start,
		Status:      models.AppointmentConfirmed,
	}}
	repo := repository.NewMemoryBusinessRepo(seed)
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	err := svc.CancelAppointment(context.Background(), "appt_missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	stored, err := repo.GetByID(context.Background(), "biz_1")
	require.NoError(t, err)
	require.Len(t, stored.Appointments, 1)
	assert.Equal(t, models.AppointmentConfirmed, stored.Appointments[0].Status)
}

func TestCancelAppointment_FlipsStatusKeepsRecord(t *testing.T) {
	seed := seedBusiness()
	seed.Appointments = []models.Appointment{{
		ID:          "appt_1",
		ServiceName: "Vinyasa Flow",
		Customer:    models.Customer{Name: "Jane Doe"},
		StartTime:   time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
		Status:      models.AppointmentConfirmed,
	}}
	repo := repository.NewMemoryBusinessRepo(seed)
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	require.NoError(t, svc.CancelAppointment(context.Background(), "appt_1"))

	stored, err := repo.GetByID(context.Background(), "biz_1")
	require.NoError(t, err)
	require.Len(t, stored.Appointments, 1)
	assert.Equal(t, models.AppointmentCancelled, stored.Appointments[0].Status)
}

func TestAppointmentsForUser_MatchesByEmailNewestFirst(t *testing.T) {
	older := time.Date(2026, 1, 8, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	seed := seedBusiness()
	seed.Appointments = []models.Appointment{
		{ID: "appt_1", ServiceName: "Vinyasa Flow", Customer: models.Customer{Name: "Jane", Email: strPtrT("jane@example.com")}, StartTime: older, Status: models.AppointmentConfirmed},
		{ID: "appt_2", ServiceName: "Vinyasa Flow", Customer: models.Customer{Name: "Jane", Email: strPtrT("jane@example.com")}, StartTime: newer, Status: models.AppointmentConfirmed},
		{ID: "appt_3", ServiceName: "Vinyasa Flow", Customer: models.Customer{Name: "Someone Else", Email: strPtrT("other@example.com")}, StartTime: newer, Status: models.AppointmentConfirmed},
	}
	users := repository.NewMemoryUserRepo(models.User{
		ID:       "user_1",
		Email:    "jane@example.com",
		Role:     models.RoleCustomer,
		Customer: &models.CustomerProfile{FirstName: "Jane", LastName: "Doe", Zipcode: "10001"},
	})
	svc := newTestService(users, repository.NewMemoryBusinessRepo(seed))

	got, err := svc.AppointmentsForUser(context.Background(), "user_1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "appt_2", got[0].ID)
	assert.Equal(t, "Vinyasa Flow at Serenity Now Yoga", got[0].ServiceName)
}

func TestAddAnnouncement_PrependsNewestFirst(t *testing.T) {
	repo := repository.NewMemoryBusinessRepo(seedBusiness())
	svc := newTestService(repository.NewMemoryUserRepo(), repo)

	_, err := svc.AddAnnouncement(context.Background(), "biz_1", "First")
	require.NoError(t, err)
	_, err = svc.AddAnnouncement(context.Background(), "biz_1", "Second")
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), "biz_1")
	require.NoError(t, err)
	require.Len(t, stored.Announcements, 2)
	assert.Equal(t, "Second", stored.Announcements[0].Message)
}
