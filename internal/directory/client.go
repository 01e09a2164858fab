// Package directory talks to the read-only remote user source. It
// returns raw person records only; departments, ratings and the rest of
// the profile are synthesized by the employee service.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hrops/hr-dashboard/internal"
)

// UserRecord is the wire shape of one remote record. Only the fields
// the dashboard consumes are decoded.
type UserRecord struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	Phone     string  `json:"phone"`
	Image     string  `json:"image"`
	Address   Address `json:"address"`
	Company   Company `json:"company"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Company struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Config struct {
	BaseURL      string
	FetchLimit   int
	FetchTimeout time.Duration
}

type Client struct {
	baseURL      string
	fetchLimit   int
	fetchTimeout time.Duration
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	limit := cfg.FetchLimit
	if limit <= 0 {
		limit = 20
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:      cfg.BaseURL,
		fetchLimit:   limit,
		fetchTimeout: timeout,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

// FetchUsers retrieves one page of user records. A failure is returned
// to the caller as-is: the employee service degrades to an empty
// collection, no retry happens here.
func (c *Client) FetchUsers(ctx context.Context) ([]UserRecord, error) {
	url := fmt.Sprintf("%s/users?limit=%d", c.baseURL, c.fetchLimit)

	reqCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, internal.NewExternalError(
			fmt.Sprintf("directory returned status %d", resp.StatusCode),
			internal.ErrCodeDirectoryFetch, nil)
	}

	var payload struct {
		Users []UserRecord `json:"users"`
		Total int          `json:"total"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	c.logger.Info("fetched user records from directory",
		"count", len(payload.Users),
		"limit", c.fetchLimit)

	return payload.Users, nil
}
