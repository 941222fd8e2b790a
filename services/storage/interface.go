package storage

import (
	"context"
	"time"
)

// StorageService stores staff portraits and location photos.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
	GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
