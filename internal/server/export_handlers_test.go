package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"northgate/internal/models"
)

func seedExportData(t *testing.T, srv *Server) {
	t.Helper()
	ctx := context.Background()

	contacts := []models.Contact{
		{Name: "Ada Lovelace", Email: "ada@example.com", Message: "plain"},
		{Name: "Comma, Inc.", Email: "sales@comma.example", Message: "has, commas"},
	}
	for i := range contacts {
		if err := srv.contactRepo.Create(ctx, &contacts[i]); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
	}

	if _, err := srv.newsletterRepo.Subscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("seed subscriber: %v", err)
	}
}

func download(t *testing.T, app *fiber.App, target string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, raw
}

func TestExportContactsCSV(t *testing.T) {
	t.Parallel()
	srv, app, _ := newTestServer(t)
	headers := adminToken(t, app)
	seedExportData(t, srv)

	resp, raw := download(t, app, "/api/admin/export/contacts.csv", headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, raw)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	cd := resp.Header.Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "contacts_") || !strings.Contains(cd, ".csv") {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	out := string(raw)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "id,name,email,phone,company,message,created_at" {
		t.Fatalf("unexpected header row %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(out, `"Comma, Inc."`) {
		t.Fatal("expected comma-bearing field to be quoted")
	}
	if !strings.Contains(out, "Ada Lovelace,") || strings.Contains(out, `"Ada Lovelace"`) {
		t.Fatal("expected plain field to stay unquoted")
	}
}

func TestExportEmptyTab(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)
	headers := adminToken(t, app)

	resp, _ := download(t, app, "/api/admin/export/resumes.csv", headers)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("empty csv export: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = download(t, app, "/api/admin/export/resumes.xlsx", headers)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("empty xlsx export: expected 404, got %d", resp.StatusCode)
	}
}

func TestExportUnknownTab(t *testing.T) {
	t.Parallel()
	_, app, _ := newTestServer(t)
	headers := adminToken(t, app)

	resp, _ := download(t, app, "/api/admin/export/users.csv", headers)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown tab: expected 400, got %d", resp.StatusCode)
	}
}

func TestExportAllWorkbookSkipsEmptyTabs(t *testing.T) {
	t.Parallel()
	srv, app, _ := newTestServer(t)
	headers := adminToken(t, app)
	seedExportData(t, srv)

	resp, raw := download(t, app, "/api/admin/export/all.xlsx", headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	want := []string{"Contacts", "Newsletter"}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("expected sheets %v, got %v", want, sheets)
		}
	}

	rows, err := f.GetRows("Contacts")
	if err != nil {
		t.Fatalf("read contacts sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 contact rows, got %d", len(rows))
	}
}

func TestExportSearchFilterApplies(t *testing.T) {
	t.Parallel()
	srv, app, _ := newTestServer(t)
	headers := adminToken(t, app)
	seedExportData(t, srv)

	resp, raw := download(t, app, "/api/admin/export/contacts.csv?search=lovelace", headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 filtered row, got %d lines", len(lines))
	}
}
