package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dayekim/tripmate/internal/domain"
)

// SaveResult holds the identifier assigned by the save collaborator.
type SaveResult struct {
	ID string
}

// SaveClient submits finalized schedule snapshots to the remote save
// collaborator. Failures are user-visible; the client never retries on its
// own — retry is the user's responsibility.
type SaveClient interface {
	Save(ctx context.Context, snapshot *domain.Schedule) (*SaveResult, error)
}

// httpSaveClient implements SaveClient against the tripmate REST API.
type httpSaveClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPSaveClient creates a SaveClient that POSTs snapshots to the
// configured endpoint.
func NewHTTPSaveClient(cfg Config, observer Observer) SaveClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpSaveClient{
		cfg: cfg,
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

// saveResponse is the JSON body returned by POST /schedules. The id may
// arrive as a string or a number depending on the backend.
type saveResponse struct {
	ID saveID `json:"id"`
}

// saveID accepts identifiers that arrive as either JSON strings or numbers.
type saveID string

func (s *saveID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = saveID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*s = saveID(n.String())
	return nil
}

func (c *httpSaveClient) Save(ctx context.Context, snapshot *domain.Schedule) (*SaveResult, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	result, err := c.doRequest(ctx, snapshot)
	latency := time.Since(start).Milliseconds()
	event := SaveEvent{Endpoint: c.cfg.Endpoint, LatencyMs: latency, Success: err == nil}
	if err != nil {
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnSaveComplete(event)

	return result, err
}

func (c *httpSaveClient) doRequest(ctx context.Context, snapshot *domain.Schedule) (*SaveResult, error) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/schedules", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading save response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, truncate(raw, 200))
	}

	var parsed saveResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrInvalidResponse)
	}

	return &SaveResult{ID: string(parsed.ID)}, nil
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	default:
		return "unavailable"
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
