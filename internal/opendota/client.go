package opendota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL = "https://api.opendota.com/api"
	defaultLimit   = 10
)

var (
	// ErrUnavailable indicates the provider could not be reached or answered
	// with a non-success status.
	ErrUnavailable = errors.New("opendota: provider unavailable")
	// ErrMalformed indicates the provider answered with a body that could not
	// be decoded.
	ErrMalformed = errors.New("opendota: malformed response")
)

var _ DotaClient = (*APIClient)(nil)

// NewClient creates a new OpenDota API client.
func NewClient() *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

func (c *APIClient) GetRecentMatches(ctx context.Context, playerID int64, limit int) ([]MatchSummary, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	url := fmt.Sprintf("%s/players/%d/matches?limit=%d", c.BaseURL, playerID, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("OpenDota request failed", "playerID", playerID, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var matches []MatchSummary
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return matches, nil
}
