package models

import "time"

// This file defines the structured contract the interpretation model must
// return for one assistant turn. The single non-negotiable invariant is that
// the top-level "response" object is always present: reconciliation assumes
// raw access to it, and a missing "response" has crashed rendering before.
// Validation is enforced with validator/v10 tags at the gateway boundary.

// Assistant operations form a closed set.
const (
	OpLogin             = "LOGIN"
	OpSignup            = "SIGNUP"
	OpViewProfile       = "VIEW_PROFILE"
	OpUpdateProfile     = "UPDATE_PROFILE"
	OpResetPassword     = "RESET_PASSWORD"
	OpListBusinesses    = "LIST_BUSINESSES"
	OpListServices      = "LIST_SERVICES"
	OpCreateService     = "CREATE_SERVICE"
	OpUpdateService     = "UPDATE_SERVICE"
	OpDeleteService     = "DELETE_SERVICE"
	OpListAppointments  = "LIST_APPOINTMENTS"
	OpCreateAppointment = "CREATE_APPOINTMENT"
	OpGeneratePost      = "GENERATE_POST"
	OpBroadcastMessage  = "BROADCAST_MESSAGE"
	OpAssist            = "ASSIST"
)

// AssistantResponse is the contract-validated output of one assistant turn.
type AssistantResponse struct {
	Operation string                `json:"operation,omitempty" validate:"omitempty,oneof=LOGIN SIGNUP VIEW_PROFILE UPDATE_PROFILE RESET_PASSWORD LIST_BUSINESSES LIST_SERVICES CREATE_SERVICE UPDATE_SERVICE DELETE_SERVICE LIST_APPOINTMENTS CREATE_APPOINTMENT GENERATE_POST BROADCAST_MESSAGE ASSIST"`
	Role      string                `json:"role,omitempty" validate:"omitempty,oneof=user business_owner"`
	Status    string                `json:"status,omitempty" validate:"omitempty,oneof=success failure"`
	Business  *AssistantBusinessCtx `json:"business,omitempty"`
	Request   *AssistantRequestBag  `json:"request,omitempty"`
	Response  *AssistantResponseBag `json:"response" validate:"required"`
}

// AssistantBusinessCtx is the echoed business-context snapshot.
type AssistantBusinessCtx struct {
	ID       string           `json:"id,omitempty"`
	Name     string           `json:"name,omitempty"`
	Category BusinessCategory `json:"category,omitempty" validate:"omitempty,oneof='Yoga' 'Fitness' 'Yoga & Fitness Center'"`
	Address  string           `json:"address,omitempty"`
	Zipcode  string           `json:"zipcode,omitempty"`
	Timezone string           `json:"timezone,omitempty"`
}

// AssistantRequestBag echoes what the model understood from the user's text.
// Every member is optional; the bag itself may be null.
type AssistantRequestBag struct {
	Auth            *AuthRequest            `json:"auth,omitempty"`
	UserProfile     *ProfileRequest         `json:"user_profile,omitempty"`
	BusinessProfile *BusinessProfileRequest `json:"business_profile,omitempty"`
	Service         *ServiceRequest         `json:"service,omitempty"`
	Appointment     *AppointmentRequest     `json:"appointment,omitempty"`
	Filters         *Filters                `json:"filters,omitempty"`
	Marketing       *MarketingRequest       `json:"marketing,omitempty"`
	Broadcast       *BroadcastRequest       `json:"broadcast,omitempty"`
}

type AuthRequest struct {
	Email              string `json:"email,omitempty"`
	Password           string `json:"password,omitempty"`
	ConfirmPassword    string `json:"confirm_password,omitempty"`
	OldPassword        string `json:"old_password,omitempty"`
	NewPassword        string `json:"new_password,omitempty"`
	ConfirmNewPassword string `json:"confirm_new_password,omitempty"`
}

type ProfileRequest struct {
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Address         string `json:"address,omitempty"`
	ApartmentNumber string `json:"apartment_number,omitempty"`
	Zipcode         string `json:"zipcode,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

type BusinessProfileRequest struct {
	BusinessName string           `json:"business_name,omitempty"`
	Address      string           `json:"address,omitempty"`
	Zipcode      string           `json:"zipcode,omitempty"`
	Category     BusinessCategory `json:"category,omitempty" validate:"omitempty,oneof='Yoga' 'Fitness' 'Yoga & Fitness Center'"`
}

type ServiceRequest struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Price           *Price   `json:"price,omitempty"`
	Category        string   `json:"category,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

type AppointmentRequest struct {
	ID          string     `json:"id,omitempty"`
	ServiceID   string     `json:"service_id,omitempty"`
	ServiceName string     `json:"service_name,omitempty"`
	Customer    *Customer  `json:"customer,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Status      string     `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
}

type Filters struct {
	Zipcode  string `json:"zipcode,omitempty"`
	Category string `json:"category,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
}

type MarketingRequest struct {
	Platform    string `json:"platform,omitempty" validate:"omitempty,oneof=Instagram Facebook Twitter"`
	Tone        string `json:"tone,omitempty" validate:"omitempty,oneof=Promotional Informative Engaging"`
	Caption     string `json:"caption,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

type BroadcastRequest struct {
	Message string `json:"message,omitempty"`
	Channel string `json:"channel,omitempty" validate:"omitempty,oneof=email sms whatsapp dashboard"`
}

// AssistantResponseBag is the mandatory payload of every turn. Every member
// is individually optional; the bag itself never is.
type AssistantResponseBag struct {
	AssistantReply      string               `json:"assistant_reply,omitempty"`
	Businesses          []DiscoveredBusiness `json:"businesses,omitempty" validate:"omitempty,dive"`
	Services            []Service            `json:"services,omitempty" validate:"omitempty,dive"`
	Appointments        []Appointment        `json:"appointments,omitempty" validate:"omitempty,dive"`
	AvailableSlots      []ProjectedSlot      `json:"available_slots,omitempty" validate:"omitempty,dive"`
	UserProfile         *CustomerProfile     `json:"user_profile,omitempty"`
	Post                *MarketingPost       `json:"post,omitempty"`
	BroadcastResult     *BroadcastResult     `json:"broadcast_result,omitempty"`
	Notification        *Notification        `json:"notification,omitempty"`
	DemoBusinesses      []DemoBusiness       `json:"demo_businesses,omitempty" validate:"omitempty,dive"`
	DemoServices        []Service            `json:"demo_services,omitempty" validate:"omitempty,dive"`
	DemoAppointments    []DemoAppointment    `json:"demo_appointments,omitempty"`
	DemoPhotos          []string             `json:"demo_photos,omitempty"`
	DemoBroadcasts      []DemoBroadcast      `json:"demo_broadcasts,omitempty"`
	IsDemo              bool                 `json:"is_demo,omitempty"`
	MissingFields       []string             `json:"missing_fields,omitempty"`
	ClarifyingQuestions []string             `json:"clarifying_questions,omitempty"`
	Errors              []string             `json:"errors,omitempty"`
}

// DiscoveredBusiness is the listing shape returned for LIST_BUSINESSES.
type DiscoveredBusiness struct {
	ID           string       `json:"id,omitempty"`
	BusinessName string       `json:"business_name" validate:"required"`
	BusinessType BusinessType `json:"business_type" validate:"oneof='Yoga Studio' 'Gym Center' 'Yoga & Fitness Center'"`
	Address      string       `json:"address"`
	Zipcode      string       `json:"zipcode"`
	Photos       []string     `json:"photos,omitempty"`
	Services     []Service    `json:"services,omitempty" validate:"omitempty,dive"`
}

// DemoBusiness is a synthetic listing entry for empty-state seeding.
type DemoBusiness struct {
	BusinessName string       `json:"business_name" validate:"required"`
	BusinessType BusinessType `json:"business_type" validate:"oneof='Yoga Studio' 'Gym Center' 'Yoga & Fitness Center'"`
	Address      string       `json:"address"`
	Zipcode      string       `json:"zipcode"`
	Photos       []string     `json:"photos,omitempty"`
	Services     []Service    `json:"services,omitempty" validate:"omitempty,dive"`
}

type DemoAppointment struct {
	CustomerName string `json:"customer_name,omitempty"`
	Service      string `json:"service,omitempty"`
	StartTime    string `json:"start_time"`
}

type DemoBroadcast struct {
	Message string `json:"message"`
}

// Notification is an owner-facing signal emitted alongside state changes.
type Notification struct {
	Type     string            `json:"type,omitempty" validate:"omitempty,oneof=APPOINTMENT_CREATED SERVICE_CREATED SERVICE_UPDATED SERVICE_DELETED"`
	Channels []string          `json:"channels,omitempty" validate:"omitempty,dive,oneof=dashboard email sms whatsapp"`
	Message  string            `json:"message,omitempty"`
	Data     *NotificationData `json:"data,omitempty"`
}

type NotificationData struct {
	AppointmentID string `json:"appointment_id,omitempty"`
	ServiceID     string `json:"service_id,omitempty"`
}

// MarketingPost is the assembled social post payload.
type MarketingPost struct {
	Platform string `json:"platform,omitempty" validate:"omitempty,oneof=Instagram Facebook Twitter"`
	Caption  string `json:"caption,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type BroadcastResult struct {
	Message string `json:"message,omitempty"`
	Channel string `json:"channel,omitempty" validate:"omitempty,oneof=email sms whatsapp dashboard"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=queued sent failed"`
}

// ChatRequest is the payload coming from the frontend into /api/assistant/chat.
type ChatRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}
