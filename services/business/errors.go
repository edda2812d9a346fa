package business

import "errors"

var (
	// ErrBusinessNotFound signals an unknown or stale business reference.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrServiceNotFound signals a booking against a removed service.
	ErrServiceNotFound = errors.New("service not found")
	// ErrAppointmentNotFound signals a cancel/update against a missing booking.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrSlotTaken signals a booking collision with a confirmed appointment.
	ErrSlotTaken = errors.New("the requested time is no longer available")
	// ErrPhotoNotFound signals a removal against a missing gallery photo.
	ErrPhotoNotFound = errors.New("photo not found")
)
