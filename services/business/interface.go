// Package business owns tenant state: services with generated weekly
// schedules, photos, announcements and appointments. All mutations are
// whole-collection replace-on-write through the repository layer.
package business

import (
	"context"
	"math/rand"
	"time"

	"zyppr/database/repository"
	"zyppr/models"
)

// BusinessService is the tenant-state surface consumed by handlers and the
// assistant reconciliation path.
type BusinessService interface {
	ListForCustomer(ctx context.Context, zipcode string) ([]models.Business, error)
	GetByID(ctx context.Context, id string) (*models.Business, error)

	AddService(ctx context.Context, businessID string, svc models.Service) (*models.Service, error)
	AddPhoto(ctx context.Context, businessID, url, caption string) (*models.Photo, error)
	RemovePhoto(ctx context.Context, businessID, photoID string) (*models.Photo, error)
	AddAnnouncement(ctx context.Context, businessID, message string) (*models.Announcement, error)

	BookAppointment(ctx context.Context, businessID string, appt models.Appointment) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	AppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error)

	Reconcile(ctx context.Context, businessID string, resp *models.AssistantResponse) error
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Users      repository.UserRepository
	Businesses repository.BusinessRepository
	// Rng drives schedule generation; tests seed it for determinism.
	Rng *rand.Rand
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func NewDefaultBusinessService(users repository.UserRepository, businesses repository.BusinessRepository) *DefaultBusinessService {
	return &DefaultBusinessService{
		Users:      users,
		Businesses: businesses,
		Rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *DefaultBusinessService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
