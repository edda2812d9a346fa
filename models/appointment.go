package models

import "time"

// AppointmentStatus is the closed lifecycle set for a booking. Cancelled
// appointments are retained, never deleted.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Customer describes who an appointment is for. Email and phone are
// nullable; at least one contact channel is expected at booking time.
type Customer struct {
	Name  string  `bson:"name" json:"name" validate:"required"`
	Email *string `bson:"email,omitempty" json:"email"`
	Phone *string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Appointment is a booking inside one business. ServiceName is kept even if
// the service is later removed, for historical display.
type Appointment struct {
	ID          string            `bson:"id" json:"id" validate:"required"`
	ServiceID   string            `bson:"serviceId,omitempty" json:"service_id,omitempty"`
	ServiceName string            `bson:"serviceName" json:"service_name" validate:"required"`
	Customer    Customer          `bson:"customer" json:"customer"`
	StartTime   time.Time         `bson:"startTime" json:"start_time" validate:"required"`
	EndTime     time.Time         `bson:"endTime" json:"end_time"`
	Notes       *string           `bson:"notes,omitempty" json:"notes"`
	Status      AppointmentStatus `bson:"status" json:"status" validate:"oneof=pending confirmed cancelled"`
	IsDemo      bool              `bson:"isDemo,omitempty" json:"is_demo,omitempty"`
}
