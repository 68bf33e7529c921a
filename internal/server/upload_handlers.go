package server

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // register WebP decoder

	"northgate/internal/middleware"
	"northgate/internal/models"
)

const (
	maxResumeUploadBytes = 10 * 1024 * 1024
	maxImageUploadBytes  = 5 * 1024 * 1024
)

var allowedResumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// UploadResume handles POST /api/upload/resume (multipart field "resume").
func (s *Server) UploadResume(c *fiber.Ctx) error {
	content, filename, err := readUpload(c, "resume", maxResumeUploadBytes)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedResumeExtensions[ext]; !ok {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unsupported resume format (PDF, DOC, DOCX or TXT)"))
	}

	url, err := s.storeUpload(c, filename, content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{"url": url})
}

// UploadImage handles POST /api/upload/image (multipart field "image").
func (s *Server) UploadImage(c *fiber.Ctx) error {
	content, filename, err := readUpload(c, "image", maxImageUploadBytes)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	detectedType := http.DetectContentType(content)
	if !strings.HasPrefix(detectedType, "image/") {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid image type"))
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(content)); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid image file"))
	}

	url, err := s.storeUpload(c, filename, content)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{"url": url})
}

// readUpload pulls the named multipart file into memory, enforcing the size limit.
func readUpload(c *fiber.Ctx, field string, maxBytes int64) ([]byte, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", models.NewValidationError("No file uploaded")
	}
	if file.Size > maxBytes {
		return nil, "", models.NewValidationError(
			fmt.Sprintf("File too large (max %dMB)", maxBytes/(1024*1024)))
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", models.NewValidationError("Unable to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, "", models.NewValidationError("Unable to read uploaded file")
	}
	if len(content) == 0 {
		return nil, "", models.NewValidationError("Uploaded file is empty")
	}

	return content, file.Filename, nil
}

// storeUpload persists the file and returns its public URL. In demo mode
// the bytes are dropped and a plausible URL is fabricated, matching the
// demo store's write-and-discard contract.
func (s *Server) storeUpload(c *fiber.Ctx, filename string, content []byte) (string, error) {
	if s.objects != nil {
		objectPath := s.objects.Upload(filename)
		return s.objects.PublicURL(objectPath), nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	if err := os.MkdirAll(s.config.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}
	dest := filepath.Join(s.config.UploadDir, name)
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	middleware.Logger.InfoContext(c.Context(), "File uploaded",
		"filename", filename,
		"stored_as", name,
		"size_bytes", len(content))

	return s.config.PublicBaseURL + "/uploads/" + name, nil
}
