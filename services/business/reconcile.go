package business

import (
	"context"

	"github.com/google/uuid"

	"zyppr/models"
	"zyppr/scheduling"
)

// Reconcile writes the durable side effects of a validated assistant turn.
// The gateway itself never persists; this is the single place conversation
// results become state. Identifiers are idempotent: an entity whose id is
// already present is skipped, so replaying the same validated response is
// harmless.
func (s *DefaultBusinessService) Reconcile(ctx context.Context, businessID string, resp *models.AssistantResponse) error {
	if resp == nil || resp.Response == nil || resp.Status != "success" {
		return nil
	}

	switch resp.Operation {
	case models.OpCreateAppointment:
		if len(resp.Response.Appointments) == 0 {
			return nil
		}
		return s.mutate(ctx, businessID, func(b *models.Business) error {
			for _, appt := range resp.Response.Appointments {
				if appt.ID == "" {
					appt.ID = "appt_" + uuid.NewString()
				}
				if hasAppointment(b, appt.ID) {
					continue
				}
				appt.IsDemo = false
				b.Appointments = append(b.Appointments, appt)
			}
			return nil
		})

	case models.OpCreateService:
		if len(resp.Response.Services) == 0 {
			return nil
		}
		return s.mutate(ctx, businessID, func(b *models.Business) error {
			for _, svc := range resp.Response.Services {
				if svc.ID == "" {
					svc.ID = "svc_" + uuid.NewString()
				}
				if b.ServiceByID(svc.ID) != nil {
					continue
				}
				if len(svc.WeeklySchedule) == 0 {
					svc.WeeklySchedule = scheduling.GenerateWeeklySchedule(b.Services, svc.DurationMinutes, s.Rng)
				}
				svc.IsDemo = false
				b.Services = append(b.Services, svc)
			}
			return nil
		})

	case models.OpBroadcastMessage:
		if resp.Response.BroadcastResult == nil || resp.Response.BroadcastResult.Message == "" {
			return nil
		}
		_, err := s.AddAnnouncement(ctx, businessID, resp.Response.BroadcastResult.Message)
		return err
	}

	return nil
}

func hasAppointment(b *models.Business, id string) bool {
	for _, appt := range b.Appointments {
		if appt.ID == id {
			return true
		}
	}
	return false
}
