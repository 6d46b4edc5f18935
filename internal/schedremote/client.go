package schedremote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Client is the HTTP client for the scheduling service.
type Client struct {
	baseURL  string
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Submit sends a scheduling request and returns the accepted job ID.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	start := time.Now()

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/schedule", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observer.OnRequest(RequestEvent{Op: "submit", Err: err, Duration: time.Since(start)})
		return "", fmt.Errorf("submitting job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		err := fmt.Errorf("submitting job: unexpected status %d: %s", resp.StatusCode, readBody(resp.Body))
		c.observer.OnRequest(RequestEvent{Op: "submit", Err: err, Duration: time.Since(start)})
		return "", err
	}

	var accepted SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return "", fmt.Errorf("decoding submit response: %w", err)
	}
	if accepted.JobID == "" {
		return "", fmt.Errorf("submit response missing job id")
	}

	c.observer.OnRequest(RequestEvent{Op: "submit", JobID: accepted.JobID, Duration: time.Since(start)})
	return accepted.JobID, nil
}

// PollStatus fetches the current status of a job.
func (c *Client) PollStatus(ctx context.Context, jobID string) (JobStatus, error) {
	start := time.Now()

	u := c.baseURL + "/api/schedule/" + url.PathEscape(jobID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return JobStatus{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observer.OnRequest(RequestEvent{Op: "poll", JobID: jobID, Err: err, Duration: time.Since(start)})
		return JobStatus{}, fmt.Errorf("polling job %s: %w", jobID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("polling job %s: unexpected status %d: %s", jobID, resp.StatusCode, readBody(resp.Body))
		c.observer.OnRequest(RequestEvent{Op: "poll", JobID: jobID, Err: err, Duration: time.Since(start)})
		return JobStatus{}, err
	}

	var status JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return JobStatus{}, fmt.Errorf("decoding status for job %s: %w", jobID, err)
	}

	c.observer.OnRequest(RequestEvent{Op: "poll", JobID: jobID, Duration: time.Since(start)})
	return status, nil
}

// FetchTemplates retrieves the routing-template reference data.
func (c *Client) FetchTemplates(ctx context.Context) ([]RoutingTemplate, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/templates", nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetching templates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching templates: unexpected status %d", resp.StatusCode)
	}

	var templates []RoutingTemplate
	if err := json.NewDecoder(resp.Body).Decode(&templates); err != nil {
		return nil, fmt.Errorf("decoding templates: %w", err)
	}
	return templates, nil
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(bytes.TrimSpace(b))
}
