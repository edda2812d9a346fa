package business

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"zyppr/models"
	"zyppr/scheduling"
	"zyppr/utils"
)

// ListForCustomer returns the businesses visible to a customer, scoped to
// their zipcode. An empty zipcode matches every real tenant. When no real
// tenant serves the zipcode, the listing is populated from generated demo
// tenants so the discovery screen is never empty; demos are flagged and never
// persisted.
func (s *DefaultBusinessService) ListForCustomer(ctx context.Context, zipcode string) ([]models.Business, error) {
	all, err := s.Businesses.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	matched := make([]models.Business, 0, len(all))
	for _, b := range all {
		if b.IsDemo {
			continue
		}
		if zipcode == "" || b.Zipcode == zipcode {
			matched = append(matched, b)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}
	return GenerateDemoBusinesses(zipcode, s.Rng), nil
}

// GetByID resolves a business, regenerating demo tenants on demand since
// they never hit durable storage.
func (s *DefaultBusinessService) GetByID(ctx context.Context, id string) (*models.Business, error) {
	if strings.HasPrefix(id, demoBusinessPrefix) {
		for _, b := range GenerateDemoBusinesses("", s.Rng) {
			if b.ID == id {
				return &b, nil
			}
		}
		return nil, ErrBusinessNotFound
	}

	b, err := s.Businesses.GetByID(ctx, id)
	if err != nil {
		return nil, ErrBusinessNotFound
	}
	return b, nil
}

// AddService creates a service with a freshly generated, collision-free
// weekly schedule and persists the updated business.
func (s *DefaultBusinessService) AddService(ctx context.Context, businessID string, svc models.Service) (*models.Service, error) {
	var created *models.Service
	err := s.mutate(ctx, businessID, func(b *models.Business) error {
		svc.ID = "svc_" + uuid.NewString()
		svc.IsDemo = false
		svc.WeeklySchedule = scheduling.GenerateWeeklySchedule(b.Services, svc.DurationMinutes, s.Rng)
		b.Services = append(b.Services, svc)
		created = &svc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AddPhoto appends a gallery photo.
func (s *DefaultBusinessService) AddPhoto(ctx context.Context, businessID, url, caption string) (*models.Photo, error) {
	var created *models.Photo
	err := s.mutate(ctx, businessID, func(b *models.Business) error {
		photo := models.Photo{ID: "pic_" + uuid.NewString(), URL: url, Caption: caption}
		b.Photos = append(b.Photos, photo)
		created = &photo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RemovePhoto drops a gallery photo and returns the removed record so the
// caller can release the backing upload.
func (s *DefaultBusinessService) RemovePhoto(ctx context.Context, businessID, photoID string) (*models.Photo, error) {
	var removed *models.Photo
	err := s.mutate(ctx, businessID, func(b *models.Business) error {
		for i := range b.Photos {
			if b.Photos[i].ID == photoID {
				photo := b.Photos[i]
				b.Photos = append(b.Photos[:i], b.Photos[i+1:]...)
				removed = &photo
				return nil
			}
		}
		return ErrPhotoNotFound
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// AddAnnouncement prepends a broadcast message, newest first.
func (s *DefaultBusinessService) AddAnnouncement(ctx context.Context, businessID, message string) (*models.Announcement, error) {
	var created *models.Announcement
	err := s.mutate(ctx, businessID, func(b *models.Business) error {
		ann := models.Announcement{ID: "ann_" + uuid.NewString(), Message: message, Timestamp: s.now()}
		b.Announcements = append([]models.Announcement{ann}, b.Announcements...)
		created = &ann
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// BookAppointment writes a customer booking. A slot already held by a live
// appointment for the same service and start instant is rejected rather than
// double-booked.
func (s *DefaultBusinessService) BookAppointment(ctx context.Context, businessID string, appt models.Appointment) (*models.Appointment, error) {
	var created *models.Appointment
	err := s.mutate(ctx, businessID, func(b *models.Business) error {
		if appt.ServiceID != "" && b.ServiceByID(appt.ServiceID) == nil && b.ServiceByName(appt.ServiceName) == nil {
			return ErrServiceNotFound
		}
		for _, existing := range b.Appointments {
			if existing.Status == models.AppointmentCancelled {
				continue
			}
			if existing.ServiceName == appt.ServiceName && existing.StartTime.Equal(appt.StartTime) {
				return ErrSlotTaken
			}
		}
		if appt.ID == "" {
			appt.ID = "appt_" + uuid.NewString()
		}
		if appt.Status == "" {
			appt.Status = models.AppointmentConfirmed
		}
		appt.IsDemo = false
		b.Appointments = append(b.Appointments, appt)
		created = &appt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CancelAppointment flips the status of the matching appointment to
// cancelled, keeping the record. A missing appointment leaves all state
// untouched and only logs a warning.
func (s *DefaultBusinessService) CancelAppointment(ctx context.Context, appointmentID string) error {
	businesses, err := s.Businesses.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load businesses: %w", err)
	}

	found := false
	for bi := range businesses {
		for ai := range businesses[bi].Appointments {
			if businesses[bi].Appointments[ai].ID == appointmentID {
				businesses[bi].Appointments[ai].Status = models.AppointmentCancelled
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if !found {
		utils.GetLogger().Warn("cancel: appointment not found",
			zap.String("appointmentID", appointmentID))
		return ErrAppointmentNotFound
	}
	if err := s.Businesses.ReplaceAll(ctx, businesses); err != nil {
		return fmt.Errorf("failed to persist cancellation: %w", err)
	}
	return nil
}

// AppointmentsForUser collects a customer's appointments across all
// businesses by email match, newest first, with the business name folded
// into the service name for display.
func (s *DefaultBusinessService) AppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Role != models.RoleCustomer {
		return nil, nil
	}

	businesses, err := s.Businesses.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load businesses: %w", err)
	}

	var result []models.Appointment
	for _, b := range businesses {
		for _, appt := range b.Appointments {
			if appt.Customer.Email != nil && *appt.Customer.Email == user.Email {
				appt.ServiceName = fmt.Sprintf("%s at %s", appt.ServiceName, b.Name)
				result = append(result, appt)
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.After(result[j].StartTime)
	})
	return result, nil
}

// mutate runs copy-modify-replace on one business inside the collection.
func (s *DefaultBusinessService) mutate(ctx context.Context, businessID string, fn func(*models.Business) error) error {
	businesses, err := s.Businesses.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load businesses: %w", err)
	}
	for i := range businesses {
		if businesses[i].ID == businessID {
			if err := fn(&businesses[i]); err != nil {
				return err
			}
			if err := s.Businesses.ReplaceAll(ctx, businesses); err != nil {
				return fmt.Errorf("failed to persist business update: %w", err)
			}
			return nil
		}
	}
	return ErrBusinessNotFound
}
