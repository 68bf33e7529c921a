package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"northgate/internal/config"
	"northgate/internal/demo"
	"northgate/internal/sheets"
)

func TestDemoAuthFlow(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	// Fresh server: signed out.
	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/session", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("session: expected 200, got %d", resp.StatusCode)
	}
	if body["data"].(map[string]any)["session"] != nil {
		t.Fatalf("expected nil session, got %v", body["data"])
	}

	// Sign in before sign up fails with the guiding message.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/signin",
		map[string]string{"email": "new@example.com", "password": "password1"}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("signin before signup: expected 401, got %d", resp.StatusCode)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Fatal("expected error message")
	}

	// Sign up signs the user in.
	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/signup",
		map[string]string{"email": "new@example.com", "password": "password1"}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d (%v)", resp.StatusCode, body)
	}
	session := body["data"].(map[string]any)["session"].(map[string]any)
	user := session["user"].(map[string]any)
	if user["email"] != "new@example.com" {
		t.Fatalf("unexpected user %v", user)
	}

	// Duplicate signup conflicts and keeps the session.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/signup",
		map[string]string{"email": "new@example.com", "password": "password2"}, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate signup: expected 409, got %d", resp.StatusCode)
	}
	_, body = doJSON(t, app, http.MethodGet, "/api/auth/session", nil, nil)
	if body["data"].(map[string]any)["session"] == nil {
		t.Fatal("duplicate signup must not clear the session")
	}

	// OAuth is never available in demo mode.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/oauth", nil, nil)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("oauth: expected 501, got %d", resp.StatusCode)
	}

	// Sign out clears the session.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/signout", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signout: expected 200, got %d", resp.StatusCode)
	}
	_, body = doJSON(t, app, http.MethodGet, "/api/auth/session", nil, nil)
	if body["data"].(map[string]any)["session"] != nil {
		t.Fatal("expected signed-out session after signout")
	}

	// Password sign-in works after signup.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/signin",
		map[string]string{"email": "New@Example.com", "password": "password1"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signin: expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthEndpointsOutsideDemoMode(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Port:          "0",
		Env:           "test",
		JWTSecret:     "test-secret-key",
		AdminPassword: "test-admin-password",
		DBHost:        "db.internal", // real database configured
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
		// DemoAuth intentionally nil
	})
	app := fiber.New()
	srv.SetupRoutes(app)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/session"},
		{http.MethodPost, "/api/auth/signup"},
		{http.MethodPost, "/api/auth/signin"},
		{http.MethodPost, "/api/auth/oauth"},
		{http.MethodPost, "/api/auth/signout"},
	} {
		resp, _ := doJSON(t, app, route.method, route.path, map[string]string{}, nil)
		if resp.StatusCode != http.StatusNotImplemented {
			t.Fatalf("%s %s: expected 501, got %d", route.method, route.path, resp.StatusCode)
		}
	}
}
