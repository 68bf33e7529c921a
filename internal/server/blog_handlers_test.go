package server

import (
	"net/http"
	"testing"
)

func TestBlogCRUD(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)
	headers := adminToken(t, app)

	// Writes require the admin token.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/blogs", map[string]any{
		"title": "No Token", "content": "body",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: expected 401, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/blogs", map[string]any{
		"title":     "Launch Notes",
		"excerpt":   "short",
		"content":   "full body",
		"author":    "Engineering Team",
		"tags":      []string{"launch", "notes"},
		"published": false,
	}, headers)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", resp.StatusCode, body)
	}
	created := body["data"].(map[string]any)
	id := created["id"].(float64)
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	// Draft is hidden from the published listing but present in the full one.
	_, body = doJSON(t, app, http.MethodGet, "/api/blogs?published=true", nil, nil)
	if got := len(body["data"].([]any)); got != 0 {
		t.Fatalf("expected no published posts, got %d", got)
	}
	_, body = doJSON(t, app, http.MethodGet, "/api/blogs", nil, nil)
	if got := len(body["data"].([]any)); got != 1 {
		t.Fatalf("expected 1 post in full listing, got %d", got)
	}

	// Publish via update.
	resp, body = doJSON(t, app, http.MethodPut, "/api/blogs/1", map[string]any{
		"title":     "Launch Notes",
		"content":   "full body, revised",
		"published": true,
	}, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	_, body = doJSON(t, app, http.MethodGet, "/api/blogs?published=true", nil, nil)
	if got := len(body["data"].([]any)); got != 1 {
		t.Fatalf("expected 1 published post, got %d", got)
	}

	// Fetch by id.
	resp, body = doJSON(t, app, http.MethodGet, "/api/blogs/1", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}
	if body["data"].(map[string]any)["content"] != "full body, revised" {
		t.Fatalf("expected revised content, got %v", body["data"])
	}

	// Missing post and invalid id.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/blogs/42", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing post: expected 404, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodGet, "/api/blogs/zero", nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid id: expected 400, got %d", resp.StatusCode)
	}

	// Delete.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/blogs/1", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodGet, "/api/blogs/1", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted post: expected 404, got %d", resp.StatusCode)
	}
}

func TestJobCRUDAndStatus(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)
	headers := adminToken(t, app)

	resp, body := doJSON(t, app, http.MethodPost, "/api/jobs", map[string]any{
		"title":       "Platform Engineer",
		"description": "Build the platform.",
		"department":  "Engineering",
	}, headers)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", resp.StatusCode, body)
	}
	if body["data"].(map[string]any)["status"] != "active" {
		t.Fatalf("expected default active status, got %v", body["data"])
	}

	// Active listing includes it; closing removes it.
	_, body = doJSON(t, app, http.MethodGet, "/api/jobs?status=active", nil, nil)
	if got := len(body["data"].([]any)); got != 1 {
		t.Fatalf("expected 1 active job, got %d", got)
	}

	resp, body = doJSON(t, app, http.MethodPatch, "/api/jobs/1/status",
		map[string]string{"status": "closed"}, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status update: expected 200, got %d (%v)", resp.StatusCode, body)
	}

	_, body = doJSON(t, app, http.MethodGet, "/api/jobs?status=active", nil, nil)
	if got := len(body["data"].([]any)); got != 0 {
		t.Fatalf("expected no active jobs after closing, got %d", got)
	}
	_, body = doJSON(t, app, http.MethodGet, "/api/jobs", nil, nil)
	if got := len(body["data"].([]any)); got != 1 {
		t.Fatalf("expected 1 job in full listing, got %d", got)
	}

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/jobs/1/status",
		map[string]string{"status": "paused"}, headers)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid status: expected 400, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/jobs/1", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
}
