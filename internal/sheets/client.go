// Package sheets mirrors form submissions to an external spreadsheet webhook.
// Syncs are best-effort: the database is the source of truth, and a failed
// sync is logged and dropped without affecting the submission.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"northgate/internal/middleware"
	"northgate/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client posts form records to a spreadsheet sync webhook.
type Client struct {
	baseURL       string
	spreadsheetID string
	httpClient    *http.Client
}

// NewClient creates a sync client for the given webhook URL and spreadsheet.
// Either value may be empty, in which case the client is unconfigured and
// every sync call is a logged no-op.
func NewClient(baseURL, spreadsheetID string) *Client {
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		httpClient:    &http.Client{Timeout: defaultTimeout},
	}
}

// Configured reports whether the client has a webhook target. This is for
// status display only; sync methods already handle the unconfigured case.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.spreadsheetID != ""
}

// SpreadsheetID returns the configured spreadsheet identifier, if any.
func (c *Client) SpreadsheetID() string {
	if c == nil {
		return ""
	}
	return c.spreadsheetID
}

// SyncContact mirrors a contact submission to the spreadsheet.
func (c *Client) SyncContact(ctx context.Context, contact models.Contact) {
	c.post(ctx, "contacts", contact)
}

// SyncJobApplication mirrors a job application to the spreadsheet.
func (c *Client) SyncJobApplication(ctx context.Context, app models.JobApplication) {
	c.post(ctx, "applications", app)
}

// SyncGetStartedRequest mirrors a get-started inquiry to the spreadsheet.
func (c *Client) SyncGetStartedRequest(ctx context.Context, req models.GetStartedRequest) {
	c.post(ctx, "get-started", req)
}

// SyncResumeUpload mirrors a resume submission to the spreadsheet.
func (c *Client) SyncResumeUpload(ctx context.Context, upload models.ResumeUpload) {
	c.post(ctx, "resumes", upload)
}

// SyncNewsletterSubscription mirrors a newsletter signup to the spreadsheet.
func (c *Client) SyncNewsletterSubscription(ctx context.Context, sub models.NewsletterSubscriber) {
	c.post(ctx, "newsletter", sub)
}

// post sends the record to the webhook. Failures are counted, logged, and
// swallowed; callers never see an error and nothing is retried.
func (c *Client) post(ctx context.Context, form string, record any) {
	if !c.Configured() {
		middleware.Logger.DebugContext(ctx, "Sheet sync skipped, no webhook configured",
			"form", form)
		return
	}

	payload := map[string]any{
		"spreadsheet_id": c.spreadsheetID,
		"form":           form,
		"record":         record,
		"synced_at":      time.Now().UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		c.fail(ctx, form, fmt.Errorf("marshal sync payload: %w", err))
		return
	}

	url := c.baseURL + "/" + form
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.fail(ctx, form, fmt.Errorf("build sync request: %w", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(ctx, form, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.fail(ctx, form, fmt.Errorf("webhook returned %s", resp.Status))
		return
	}

	middleware.Logger.DebugContext(ctx, "Sheet sync completed", "form", form)
}

func (c *Client) fail(ctx context.Context, form string, err error) {
	middleware.SheetSyncFailures.WithLabelValues(form).Inc()
	middleware.Logger.WarnContext(ctx, "Sheet sync failed",
		"form", form,
		"error", err)
}
