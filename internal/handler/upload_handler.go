package handler

import (
	"context"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Stanley42442/OptiSolveLabs/internal/service"
)

// UploadFormField is the multipart field holding the image.
const UploadFormField = "file"

// ImageServiceInterface defines the interface for admin image uploads.
type ImageServiceInterface interface {
	Upload(ctx context.Context, filename string, size int64, body io.Reader) (string, error)
}

// UploadHandler handles admin image uploads.
type UploadHandler struct {
	service ImageServiceInterface
}

// NewUploadHandler creates a new UploadHandler with the given service.
func NewUploadHandler(svc ImageServiceInterface) *UploadHandler {
	return &UploadHandler{service: svc}
}

// Upload handles POST /api/admin/uploads. The route is admin-only.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		return badRequest(c, "invalid request: file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c, err, "failed to open uploaded file")
	}
	defer func() {
		_ = f.Close()
	}()

	url, err := h.service.Upload(c.Context(), fh.Filename, fh.Size, f)
	if err != nil {
		var invalid *service.ImageValidationError
		switch {
		case errors.Is(err, service.ErrUploadsDisabled):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": service.ErrUploadsDisabled.Error()})
		case errors.As(err, &invalid):
			return badRequest(c, invalid.Error())
		default:
			return internalError(c, err, "failed to upload image")
		}
	}

	log.Info().Str("filename", fh.Filename).Int64("size", fh.Size).Str("url", url).Msg("image uploaded")
	return c.JSON(fiber.Map{"url": url})
}
