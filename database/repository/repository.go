// Package repository exposes get-all/set-all persistence over the two named
// collections, Users and Businesses. There is deliberately no partial-update
// API: every mutation reads the whole collection, transforms it, and writes
// it back. That is adequate at single-writer-per-business scale and keeps
// service code free of storage concerns.
package repository

import (
	"context"
	"errors"

	"zyppr/models"
)

// ErrNotFound is returned by the lookup helpers when no record matches.
var ErrNotFound = errors.New("record not found")

// UserRepository stores the user collection.
type UserRepository interface {
	All(ctx context.Context) ([]models.User, error)
	ReplaceAll(ctx context.Context, users []models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// BusinessRepository stores the business collection. Demo tenants are never
// persisted; implementations filter them out on write.
type BusinessRepository interface {
	All(ctx context.Context) ([]models.Business, error)
	ReplaceAll(ctx context.Context, businesses []models.Business) error
	GetByID(ctx context.Context, id string) (*models.Business, error)
}
