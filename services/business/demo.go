package business

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"zyppr/models"
	"zyppr/scheduling"
)

// demoBusinessPrefix marks synthetic tenant ids so lookups can tell them
// apart from persisted ones.
const demoBusinessPrefix = "demo_biz_"

func strPtr(s string) *string { return &s }

// GenerateDemoBusinesses builds the synthetic tenants shown to a customer
// whose zipcode matches no real business. Services get generator-placed
// weekly schedules so the booking flow works end to end on demo data.
func GenerateDemoBusinesses(zipcode string, rng *rand.Rand) []models.Business {
	yogaServices := []models.Service{
		{ID: "demo_svc_1", Name: "Vinyasa Flow", Description: "A dynamic flow class linking breath to movement.", DurationMinutes: 60, Price: &models.Price{Amount: 20, Currency: "USD"}, Category: "Yoga", IsDemo: true},
		{ID: "demo_svc_2", Name: "Meditation Circle", Description: "A 30-minute guided meditation session.", DurationMinutes: 30, Price: &models.Price{Amount: 10, Currency: "USD"}, Category: "Meditation", IsDemo: true},
	}
	yogaServices[0].WeeklySchedule = scheduling.GenerateWeeklySchedule(nil, yogaServices[0].DurationMinutes, rng)
	yogaServices[1].WeeklySchedule = scheduling.GenerateWeeklySchedule(yogaServices[:1], yogaServices[1].DurationMinutes, rng)

	gymServices := []models.Service{
		{ID: "demo_svc_3", Name: "Strength Training", Description: "A full-body circuit workout.", DurationMinutes: 45, Price: &models.Price{Amount: 30, Currency: "USD"}, Category: "Fitness", IsDemo: true},
		{ID: "demo_svc_4", Name: "Personal Training", Description: "One-on-one session with a certified trainer.", DurationMinutes: 60, Price: &models.Price{Amount: 50, Currency: "USD"}, Category: "Fitness", IsDemo: true},
	}
	gymServices[0].WeeklySchedule = scheduling.GenerateWeeklySchedule(nil, gymServices[0].DurationMinutes, rng)
	gymServices[1].WeeklySchedule = scheduling.GenerateWeeklySchedule(gymServices[:1], gymServices[1].DurationMinutes, rng)

	return []models.Business{
		{
			ID:       demoBusinessPrefix + "yoga_1",
			Name:     "Serenity Now Yoga",
			Type:     models.TypeYogaStudio,
			Timezone: "America/New_York",
			Zipcode:  zipcode,
			Address:  "123 Wellness Way, Near you",
			IsDemo:   true,
			Photos: []models.Photo{
				{ID: "demo_p1", URL: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?q=80&w=2120&auto=format&fit=crop", Caption: "Our serene main hall", IsDemo: true},
				{ID: "demo_p2", URL: "https://images.unsplash.com/photo-1575052814086-0884931a20b4?q=80&w=2070&auto=format&fit=crop", Caption: "Join our community", IsDemo: true},
			},
			Announcements: []models.Announcement{},
			Services:      yogaServices,
		},
		{
			ID:       demoBusinessPrefix + "gym_1",
			Name:     "Momentum Fitness Club",
			Type:     models.TypeGymCenter,
			Timezone: "America/New_York",
			Zipcode:  zipcode,
			Address:  "456 Power St, Near you",
			IsDemo:   true,
			Photos: []models.Photo{
				{ID: "demo_p3", URL: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?q=80&w=2070&auto=format&fit=crop", Caption: "State-of-the-art equipment", IsDemo: true},
				{ID: "demo_p4", URL: "https://images.unsplash.com/photo-1599058917212-d750089bc07e?q=80&w=2069&auto=format&fit=crop", Caption: "Push your limits", IsDemo: true},
			},
			Announcements: []models.Announcement{
				{ID: "demo_a1", Message: "Grand Opening Special! 20% off all memberships this month.", Timestamp: time.Now(), IsDemo: true},
			},
			Services: gymServices,
		},
	}
}

// OwnerDemoData is the starter content seeded into a freshly signed-up
// owner's dashboard, all flagged is_demo.
type OwnerDemoData struct {
	Services      []models.Service
	Appointments  []models.Appointment
	Photos        []models.Photo
	Announcements []models.Announcement
}

// GenerateOwnerDemoData builds category-appropriate starter services,
// appointments, photos and announcements. Schedules are generated against
// each other so even the demo set honors the no-overlap invariant.
func GenerateOwnerDemoData(category models.BusinessCategory, rng *rand.Rand, now time.Time) OwnerDemoData {
	var data OwnerDemoData

	data.Announcements = append(data.Announcements, models.Announcement{
		ID:        "ann_demo_" + uuid.NewString(),
		Message:   "Welcome to your new dashboard! Don't forget to update your services and business hours.",
		Timestamp: now,
		IsDemo:    true,
	})

	if category == models.CategoryYoga || category == models.CategoryBoth {
		data.Photos = append(data.Photos,
			models.Photo{ID: "demo_p_y1", URL: "https://images.unsplash.com/photo-1506126613408-eca07ce68773?q=80&w=1999&auto=format&fit=crop", Caption: "Morning meditation session", IsDemo: true},
			models.Photo{ID: "demo_p_y2", URL: "https://images.unsplash.com/photo-1545389336-cf090694435e?q=80&w=2070&auto=format&fit=crop", Caption: "Our beautiful studio space", IsDemo: true},
		)
		yoga := []models.Service{
			{ID: "demo_svc_y1", Name: "Vinyasa Flow", Description: "A dynamic flow class linking breath to movement.", DurationMinutes: 60, Price: &models.Price{Amount: 20, Currency: "USD"}, Category: "Yoga", IsDemo: true},
			{ID: "demo_svc_y2", Name: "Restorative Yoga", Description: "Gentle poses for deep relaxation.", DurationMinutes: 75, Price: &models.Price{Amount: 25, Currency: "USD"}, Category: "Yoga", IsDemo: true},
		}
		yoga[0].WeeklySchedule = scheduling.GenerateWeeklySchedule(nil, yoga[0].DurationMinutes, rng)
		yoga[1].WeeklySchedule = scheduling.GenerateWeeklySchedule(yoga[:1], yoga[1].DurationMinutes, rng)
		data.Services = append(data.Services, yoga...)

		start := now.AddDate(0, 0, 2)
		data.Appointments = append(data.Appointments, models.Appointment{
			ID: "demo_appt_y1", ServiceID: "demo_svc_y1", ServiceName: "Vinyasa Flow",
			Customer:  models.Customer{Name: "Jane Doe", Email: strPtr("jane@demo.com")},
			StartTime: start, EndTime: start.Add(time.Hour),
			Status: models.AppointmentConfirmed, IsDemo: true,
		})
	}

	if category == models.CategoryFitness || category == models.CategoryBoth {
		data.Photos = append(data.Photos,
			models.Photo{ID: "demo_p_g1", URL: "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?q=80&w=1975&auto=format&fit=crop", Caption: "Fully equipped weight room", IsDemo: true},
			models.Photo{ID: "demo_p_g2", URL: "https://images.unsplash.com/photo-1540497077202-7c8a3999166f?q=80&w=2070&auto=format&fit=crop", Caption: "Cardio zone", IsDemo: true},
		)
		gym := []models.Service{
			{ID: "demo_svc_g1", Name: "Personal Training", Description: "One-on-one session with a certified trainer.", DurationMinutes: 60, Price: &models.Price{Amount: 50, Currency: "USD"}, Category: "Fitness", IsDemo: true},
		}
		gym[0].WeeklySchedule = scheduling.GenerateWeeklySchedule(data.Services, gym[0].DurationMinutes, rng)
		data.Services = append(data.Services, gym...)

		start := now.AddDate(0, 0, 3)
		data.Appointments = append(data.Appointments, models.Appointment{
			ID: "demo_appt_g1", ServiceID: "demo_svc_g1", ServiceName: "Personal Training",
			Customer:  models.Customer{Name: "John Smith", Email: strPtr("john@demo.com")},
			StartTime: start, EndTime: start.Add(time.Hour),
			Notes:  strPtr("Focus on strength."),
			Status: models.AppointmentConfirmed, IsDemo: true,
		})
	}

	return data
}
