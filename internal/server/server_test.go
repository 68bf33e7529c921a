package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"northgate/internal/config"
	"northgate/internal/demo"
	"northgate/internal/sheets"
)

// newTestServer builds a demo-backed server with routes registered. The
// sheets client is unconfigured so syncs are no-ops.
func newTestServer(t *testing.T) (*Server, *fiber.App, *demo.Store) {
	t.Helper()

	cfg := &config.Config{
		Port:          "0",
		Env:           "test",
		JWTSecret:     "test-secret-key",
		AdminPassword: "test-admin-password",
		PublicBaseURL: "http://demo.test",
	}

	store := demo.NewStore()
	srv := NewServerWithDeps(cfg, Deps{
		Sheets:          sheets.NewClient("", ""),
		ContactRepo:     demo.NewContactRepo(store),
		ApplicationRepo: demo.NewApplicationRepo(store),
		GetStartedRepo:  demo.NewGetStartedRepo(store),
		ResumeRepo:      demo.NewResumeRepo(store),
		NewsletterRepo:  demo.NewNewsletterRepo(store),
		BlogRepo:        demo.NewBlogRepo(store),
		JobRepo:         demo.NewJobRepo(store),
		DemoStore:       store,
		DemoAuth:        demo.NewAuth(),
		Objects:         demo.NewObjectStore(cfg.PublicBaseURL),
	})

	app := fiber.New()
	srv.SetupRoutes(app)
	return srv, app, store
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var decoded map[string]any
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

// adminToken logs in through the real endpoint and returns the Bearer header value.
func adminToken(t *testing.T, app *fiber.App) map[string]string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/login",
		map[string]string{"password": "test-admin-password"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin login failed with status %d", resp.StatusCode)
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected login response: %v", body)
	}
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatal("login response missing token")
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/health/live", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/health/ready", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", resp.StatusCode)
	}
	checks := body["checks"].(map[string]any)
	if checks["database"] != "demo" {
		t.Fatalf("expected demo database status, got %v", checks["database"])
	}
}
