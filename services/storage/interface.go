package storage

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores business gallery photos and returns their public
// delivery URLs.
type StorageService interface {
	UploadPhoto(ctx context.Context, file multipart.File, businessID string) (string, error)
	DeletePhoto(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService over Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}
