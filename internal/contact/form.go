package contact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// FormRelay posts submissions as a url-encoded form to an external endpoint,
// e.g. a Google Apps Script web app.
type FormRelay struct {
	Endpoint string
	Client   *http.Client
}

func NewFormRelay(endpoint string, client *http.Client) *FormRelay {
	if client == nil {
		client = http.DefaultClient
	}
	return &FormRelay{Endpoint: endpoint, Client: client}
}

func (r *FormRelay) Send(ctx context.Context, s Submission) error {
	form := url.Values{
		"fullName": {s.FullName},
		"email":    {s.Email},
		"message":  {s.Message},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post contact form: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post contact form: unexpected status %d", resp.StatusCode)
	}
	return nil
}
