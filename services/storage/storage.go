package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewCloudinaryStorage builds the service from a CLOUDINARY_URL-style
// credential string.
func NewCloudinaryStorage(cloudinaryURL string) (*CloudinaryStorage, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{
		cld:       cld,
		cloudName: cld.Config.Cloud.CloudName,
		apiSecret: cld.Config.Cloud.APISecret,
	}, nil
}

// UploadFile uploads a file into the given folder and returns its public ID.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for upload")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs the public URL for an image asset.
func (s *CloudinaryStorage) GetDownloadURL(ctx context.Context, publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to get asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build URL: %w", err)
	}
	return url, nil
}

// GetSecureDownloadURL generates a signed, short-lived URL for an
// authenticated resource. The signature is SHA-1 over "expires_at" and
// "public_id" concatenated with the API secret.
func (s *CloudinaryStorage) GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	secureURL := fmt.Sprintf("https://res.cloudinary.com/%s/image/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, signature, expiresAt, publicID)
	return secureURL, nil
}

func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
