package models

// Role discriminates the two account kinds. Every User carries exactly one
// profile matching its role.
type Role string

const (
	RoleCustomer      Role = "user"
	RoleBusinessOwner Role = "business_owner"
)

// CustomerProfile holds the identity a customer signs up with.
type CustomerProfile struct {
	FirstName       string `bson:"firstName" json:"first_name"`
	LastName        string `bson:"lastName" json:"last_name"`
	Address         string `bson:"address" json:"address"`
	Zipcode         string `bson:"zipcode" json:"zipcode"`
	ApartmentNumber string `bson:"apartmentNumber,omitempty" json:"apartment_number,omitempty"`
}

// BusinessProfile is the owner-side profile. Photos and announcements are
// denormalized copies of the linked Business's collections.
type BusinessProfile struct {
	BusinessName  string           `bson:"businessName" json:"business_name"`
	Address       string           `bson:"address" json:"address"`
	Zipcode       string           `bson:"zipcode" json:"zipcode"`
	Category      BusinessCategory `bson:"category" json:"category"`
	Photos        []Photo          `bson:"photos" json:"pictures"`
	Announcements []Announcement   `bson:"announcements" json:"announcements"`
}

// User is discriminated by Role: exactly one of Customer or Business is
// non-nil. A business owner additionally references its Business by ID.
type User struct {
	ID           string           `bson:"id" json:"id"`
	Email        string           `bson:"email" json:"email"`
	PasswordHash string           `bson:"passwordHash" json:"-"`
	Role         Role             `bson:"role" json:"role"`
	Customer     *CustomerProfile `bson:"customerProfile,omitempty" json:"customer_profile,omitempty"`
	Business     *BusinessProfile `bson:"businessProfile,omitempty" json:"business_profile,omitempty"`
	BusinessID   string           `bson:"businessId,omitempty" json:"business_id,omitempty"`
}

// DisplayName returns the human name for the active profile.
func (u User) DisplayName() string {
	switch u.Role {
	case RoleCustomer:
		if u.Customer != nil {
			return u.Customer.FirstName + " " + u.Customer.LastName
		}
	case RoleBusinessOwner:
		if u.Business != nil {
			return u.Business.BusinessName
		}
	}
	return u.Email
}

// Zipcode returns the locality of the active profile.
func (u User) Zipcode() string {
	switch u.Role {
	case RoleCustomer:
		if u.Customer != nil {
			return u.Customer.Zipcode
		}
	case RoleBusinessOwner:
		if u.Business != nil {
			return u.Business.Zipcode
		}
	}
	return ""
}
