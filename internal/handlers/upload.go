package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 5 * 1024 * 1024

var (
	allowedImageType = regexp.MustCompile(`(?i)^image/(jpe?g|png|webp|gif)$`)
	filenameSpaces   = regexp.MustCompile(`\s+`)
	filenameInvalid  = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// UploadHandler stores admin-uploaded product images under the static
// uploads directory.
type UploadHandler struct {
	dir string
}

// NewUploadHandler constructs UploadHandler, creating the directory if needed.
func NewUploadHandler(dir string) *UploadHandler {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[Upload] failed to create uploads directory %s: %v", dir, err)
	}
	return &UploadHandler{dir: dir}
}

// UploadImage accepts a single multipart image up to 5MB and returns the
// public URL it will be served from.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}

	if file.Size > maxUploadBytes {
		return fiber.NewError(fiber.StatusBadRequest, "Image must be 5MB or smaller")
	}

	if !allowedImageType.MatchString(file.Header.Get("Content-Type")) {
		return fiber.NewError(fiber.StatusBadRequest, "Only images (JPEG, PNG, WebP, GIF) are allowed")
	}

	name := uploadFilename(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.dir, name)); err != nil {
		log.Printf("[Upload] failed to save %s: %v", name, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save image")
	}

	return c.JSON(fiber.Map{"url": "/uploads/" + name})
}

// uploadFilename sanitizes the client filename and stamps it for uniqueness.
func uploadFilename(original string) string {
	ext := filepath.Ext(original)
	if ext == "" {
		ext = ".jpg"
	}

	base := strings.TrimSuffix(filepath.Base(original), ext)
	base = filenameSpaces.ReplaceAllString(base, "-")
	base = filenameInvalid.ReplaceAllString(base, "")
	if base == "" {
		base = "image"
	}

	return fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)
}
