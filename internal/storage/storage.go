package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/admission/config"
)

// ObjectStore keeps uploaded files and returns their public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

var extensions = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
}

// ObjectKey builds "<folder>/<userID>/<yyyy>/<mm>/<dd>/<uuid>.<ext>".
func ObjectKey(folder string, userID uint, contentType string, now time.Time) string {
	ext, ok := extensions[contentType]
	if !ok {
		ext = "bin"
	}
	folder = strings.Trim(path.Clean("/"+folder), "/")
	return fmt.Sprintf("%s/%d/%d/%02d/%02d/%s.%s",
		folder,
		userID,
		now.Year(),
		now.Month(),
		now.Day(),
		uuid.New().String(),
		ext,
	)
}

// NewObjectStore picks the backend named by STORAGE_DRIVER.
func NewObjectStore(cfg *config.Config) (ObjectStore, error) {
	switch cfg.Storage.Driver {
	case "s3":
		return NewS3Store(cfg.Storage)
	case "", "local":
		return NewLocalStore(cfg.Storage.UploadBase, cfg.Storage.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
