package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func multipartRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadResumeDemoMode(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	req := multipartRequest(t, "/api/upload/resume", "resume", "My Resume.pdf", []byte("%PDF-1.4 fake"))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	url, _ := body["data"].(map[string]any)["url"].(string)
	if !strings.HasPrefix(url, "http://demo.test/uploads/demo/") {
		t.Fatalf("unexpected url %q", url)
	}
	if !strings.HasSuffix(url, "_My_Resume.pdf") {
		t.Fatalf("expected sanitized filename in url, got %q", url)
	}
}

func TestUploadResumeRejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	req := multipartRequest(t, "/api/upload/resume", "resume", "resume.exe", []byte("MZ"))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUploadResumeRequiresFile(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/upload/resume", map[string]string{}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUploadImage(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	req := multipartRequest(t, "/api/upload/image", "image", "photo.png", pngBytes(t))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	req := multipartRequest(t, "/api/upload/image", "image", "notes.png", []byte("just text pretending"))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
