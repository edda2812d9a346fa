package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"zyppr/config"
)

// NewCloudinaryStorageService initializes the Cloudinary client from the
// application config.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadPhoto uploads a gallery image into a per-business folder and
// returns its secure delivery URL.
func (s *CloudinaryStorageService) UploadPhoto(ctx context.Context, file multipart.File, businessID string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: "zyppr/" + businessID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no delivery URL returned for uploaded photo")
	}
	return result.SecureURL, nil
}

// PublicIDFromURL recovers the Cloudinary public ID from a secure delivery
// URL of the form .../<cloud>/image/upload/v<version>/<folder>/<name>.<ext>.
// Returns "" for URLs not served by Cloudinary, such as stock gallery links
// on demo tenants.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.HasSuffix(u.Host, "cloudinary.com") {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	idx := -1
	for i, p := range parts {
		if p == "upload" {
			idx = i + 1
			break
		}
	}
	if idx == -1 || idx >= len(parts) {
		return ""
	}
	if len(parts[idx]) > 1 && parts[idx][0] == 'v' {
		if _, err := strconv.Atoi(parts[idx][1:]); err == nil {
			idx++
		}
	}
	if idx >= len(parts) {
		return ""
	}
	publicID := strings.Join(parts[idx:], "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}

// DeletePhoto removes an uploaded image by its Cloudinary public ID.
func (s *CloudinaryStorageService) DeletePhoto(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
