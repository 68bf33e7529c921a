package server

import (
	"context"
	"net/http"
	"testing"

	"northgate/internal/models"
)

func TestAdminLogin(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/admin/login",
		map[string]string{"password": "wrong"}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/admin/login",
		map[string]string{"password": "test-admin-password"}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("correct password: expected 200, got %d", resp.StatusCode)
	}
	data := body["data"].(map[string]any)
	if data["token"] == nil || data["token"] == "" {
		t.Fatal("expected a session token")
	}
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)

	paths := []string{
		"/api/admin/contacts",
		"/api/admin/applications",
		"/api/admin/newsletter",
		"/api/admin/sync/status",
	}
	for _, path := range paths {
		resp, _ := doJSON(t, app, http.MethodGet, path, nil, nil)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s without token: expected 401, got %d", path, resp.StatusCode)
		}
	}

	resp, _ := doJSON(t, app, http.MethodGet, "/api/admin/contacts", nil,
		map[string]string{"Authorization": "Bearer not-a-jwt"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", resp.StatusCode)
	}
}

func TestAdminListContactsWithSearch(t *testing.T) {
	t.Parallel()
	srv, app, _ := newTestServer(t)
	headers := adminToken(t, app)
	ctx := context.Background()

	records := []models.Contact{
		{Name: "Ada Lovelace", Email: "ada@analytical.org", Message: "engines"},
		{Name: "Grace Hopper", Email: "grace@navy.mil", Message: "compilers"},
	}
	for i := range records {
		if err := srv.contactRepo.Create(ctx, &records[i]); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/admin/contacts", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := len(body["data"].([]any)); got != 2 {
		t.Fatalf("expected 2 contacts, got %d", got)
	}

	// Case-insensitive substring search across text fields.
	resp, body = doJSON(t, app, http.MethodGet, "/api/admin/contacts?search=LOVELACE", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	matches := body["data"].([]any)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].(map[string]any)["name"] != "Ada Lovelace" {
		t.Fatalf("unexpected match: %v", matches[0])
	}

	resp, body = doJSON(t, app, http.MethodGet, "/api/admin/contacts?search=compilers", nil, headers)
	if resp.StatusCode != http.StatusOK || len(body["data"].([]any)) != 1 {
		t.Fatal("expected message field to be searchable")
	}
}

func TestAdminApplicationsStatusFilterAndUpdate(t *testing.T) {
	t.Parallel()
	srv, app, _ := newTestServer(t)
	headers := adminToken(t, app)
	ctx := context.Background()

	pending := models.JobApplication{
		FullName: "Pending Person", Email: "p@example.com", Phone: "1",
		Position: "Engineer", Experience: "2y", Status: models.ApplicationStatusPending,
	}
	approved := models.JobApplication{
		FullName: "Approved Person", Email: "a@example.com", Phone: "1",
		Position: "Engineer", Experience: "9y", Status: models.ApplicationStatusApproved,
	}
	for _, a := range []*models.JobApplication{&pending, &approved} {
		if err := srv.applicationRepo.Create(ctx, a); err != nil {
			t.Fatalf("seed application: %v", err)
		}
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/admin/applications?status=approved", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := len(body["data"].([]any)); got != 1 {
		t.Fatalf("expected 1 approved application, got %d", got)
	}

	resp, _ = doJSON(t, app, http.MethodGet, "/api/admin/applications?status=bogus", nil, headers)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bogus status filter: expected 400, got %d", resp.StatusCode)
	}

	// The one allowed mutation: status transition.
	resp, body = doJSON(t, app, http.MethodPatch, "/api/admin/applications/1/status",
		map[string]string{"status": "reviewing"}, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", resp.StatusCode, body)
	}
	if body["data"].(map[string]any)["status"] != "reviewing" {
		t.Fatalf("expected reviewing, got %v", body["data"])
	}

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/admin/applications/1/status",
		map[string]string{"status": "archived"}, headers)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status: expected 400, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/admin/applications/999/status",
		map[string]string{"status": "approved"}, headers)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing application: expected 404, got %d", resp.StatusCode)
	}
}

func TestSyncStatusUnconfigured(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)
	headers := adminToken(t, app)

	resp, body := doJSON(t, app, http.MethodGet, "/api/admin/sync/status", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body["data"].(map[string]any)["configured"] != false {
		t.Fatalf("expected configured=false, got %v", body["data"])
	}
}
