package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImageBytes is the largest upload accepted.
const MaxImageBytes = 5 << 20

// allowedImageTypes maps accepted extensions to the content type stored with the object.
var allowedImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// ImageValidationError describes why an upload was rejected.
type ImageValidationError struct {
	Reason string
}

func (e *ImageValidationError) Error() string {
	return "invalid image: " + e.Reason
}

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// ImageService accepts admin image uploads for service showcases.
type ImageService struct {
	uploader Uploader
	now      func() time.Time
}

// NewImageService creates an ImageService. A nil uploader disables uploads.
func NewImageService(uploader Uploader) *ImageService {
	return &ImageService{uploader: uploader, now: time.Now}
}

// Enabled reports whether uploads are configured.
func (s *ImageService) Enabled() bool {
	return s.uploader != nil
}

// Upload validates and stores an image, returning its public URL.
// Returns ErrUploadsDisabled without an uploader and *ImageValidationError for a bad file.
func (s *ImageService) Upload(ctx context.Context, filename string, size int64, body io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrUploadsDisabled
	}

	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return "", &ImageValidationError{Reason: "file type must be one of .png, .jpg, .jpeg, .webp"}
	}
	if size <= 0 {
		return "", &ImageValidationError{Reason: "file is empty"}
	}
	if size > MaxImageBytes {
		return "", &ImageValidationError{Reason: "file exceeds 5MB"}
	}

	key := fmt.Sprintf("services/%d_%s%s", s.now().Unix(), uuid.NewString(), ext)
	url, err := s.uploader.Upload(ctx, key, contentType, body, size)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return url, nil
}
