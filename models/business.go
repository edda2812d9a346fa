package models

import "time"

// BusinessCategory is the owner-facing category chosen at signup.
type BusinessCategory string

const (
	CategoryYoga    BusinessCategory = "Yoga"
	CategoryFitness BusinessCategory = "Fitness"
	CategoryBoth    BusinessCategory = "Yoga & Fitness Center"
)

// BusinessType is the customer-facing tenant type derived from the category.
type BusinessType string

const (
	TypeYogaStudio BusinessType = "Yoga Studio"
	TypeGymCenter  BusinessType = "Gym Center"
	TypeBoth       BusinessType = "Yoga & Fitness Center"
)

// TypeForCategory maps an owner-chosen category to the tenant type.
func TypeForCategory(c BusinessCategory) BusinessType {
	switch c {
	case CategoryYoga:
		return TypeYogaStudio
	case CategoryFitness:
		return TypeGymCenter
	default:
		return TypeBoth
	}
}

// CategoryForType is the inverse mapping, used when summarizing a business
// for the assistant context.
func CategoryForType(t BusinessType) BusinessCategory {
	switch t {
	case TypeYogaStudio:
		return CategoryYoga
	case TypeGymCenter:
		return CategoryFitness
	default:
		return CategoryBoth
	}
}

// Photo is one gallery image of a business.
type Photo struct {
	ID      string `bson:"id" json:"id"`
	URL     string `bson:"url" json:"url"`
	Caption string `bson:"caption" json:"caption"`
	IsDemo  bool   `bson:"isDemo,omitempty" json:"is_demo,omitempty"`
}

// Announcement is a dated broadcast message shown on a business page.
type Announcement struct {
	ID        string    `bson:"id" json:"id"`
	Message   string    `bson:"message" json:"message"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IsDemo    bool      `bson:"isDemo,omitempty" json:"is_demo,omitempty"`
}

// Price is an amount in a single currency.
type Price struct {
	Amount   float64 `bson:"amount" json:"amount"`
	Currency string  `bson:"currency" json:"currency"`
}

// ScheduleEntry is one recurring weekly occurrence of a service:
// a weekday name plus a "HH:MM" time of day. The occurrence lasts the
// service's DurationMinutes.
type ScheduleEntry struct {
	Day  string `bson:"day" json:"day"`
	Time string `bson:"time" json:"time"`
}

// Service is an offering with a weekly recurring schedule. The invariant
// across all services of one business is that no two schedule occurrences
// overlap in weekly-minute space; the schedule generator enforces it by
// construction.
type Service struct {
	ID              string          `bson:"id" json:"id" validate:"omitempty"`
	Name            string          `bson:"name" json:"name" validate:"required"`
	Description     string          `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int             `bson:"durationMinutes" json:"duration_minutes" validate:"required,min=1"`
	Price           *Price          `bson:"price,omitempty" json:"price,omitempty"`
	Category        string          `bson:"category" json:"category" validate:"required"`
	Tags            []string        `bson:"tags,omitempty" json:"tags,omitempty"`
	WeeklySchedule  []ScheduleEntry `bson:"weeklySchedule,omitempty" json:"weekly_schedule,omitempty" validate:"omitempty,dive"`
	IsDemo          bool            `bson:"isDemo,omitempty" json:"is_demo,omitempty"`
}

// ProjectedSlot is a dated, concrete instance of a ScheduleEntry inside the
// lookahead horizon. Recomputed on demand; never persisted.
type ProjectedSlot struct {
	ServiceName string    `json:"service_name" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

// Business is one tenant. Demo tenants are synthetic, flagged, and never
// persisted.
type Business struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Type          BusinessType   `bson:"type" json:"type"`
	Zipcode       string         `bson:"zipcode" json:"zipcode"`
	Address       string         `bson:"address" json:"address"`
	Timezone      string         `bson:"timezone" json:"timezone"`
	Photos        []Photo        `bson:"photos" json:"pictures"`
	Announcements []Announcement `bson:"announcements" json:"announcements"`
	Services      []Service      `bson:"services,omitempty" json:"services,omitempty"`
	Appointments  []Appointment  `bson:"appointments,omitempty" json:"appointments,omitempty"`
	IsDemo        bool           `bson:"isDemo,omitempty" json:"is_demo,omitempty"`
}

// ServiceByID returns the service with the given id, if any.
func (b Business) ServiceByID(id string) *Service {
	for i := range b.Services {
		if b.Services[i].ID == id {
			return &b.Services[i]
		}
	}
	return nil
}

// ServiceByName returns the first service matching name, if any.
func (b Business) ServiceByName(name string) *Service {
	for i := range b.Services {
		if b.Services[i].Name == name {
			return &b.Services[i]
		}
	}
	return nil
}
