package user

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"

	"zyppr/database/repository"
	"zyppr/models"
)

var (
	ErrUserNotFound       = errors.New("user not found, please check your email and role")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
)

// AuthResponse pairs the authenticated account with its bearer token.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService covers account lifecycle: registration, login, password
// reset and profile updates.
type UserService interface {
	Signup(ctx context.Context, role models.Role, data map[string]string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string, role models.Role) (*AuthResponse, error)
	Logout(ctx context.Context, tokenHash string) error
	ResetPassword(ctx context.Context, userID, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID string, profile models.CustomerProfile) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation. Sessions may be nil
// when no Redis is wired; tokens are still issued but not revocable.
type DefaultUserService struct {
	Users      repository.UserRepository
	Businesses repository.BusinessRepository
	Sessions   *redis.Client
	Rng        *rand.Rand
	Now        func() time.Time
}

func NewDefaultUserService(users repository.UserRepository, businesses repository.BusinessRepository, sessions *redis.Client) *DefaultUserService {
	return &DefaultUserService{
		Users:      users,
		Businesses: businesses,
		Sessions:   sessions,
		Rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *DefaultUserService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
