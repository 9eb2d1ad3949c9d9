package notifyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/notifyhq/notify-admin/internal/config"
)

// Service is a service record returned by the notification API. Restricted
// services are still in trial mode.
type Service struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Restricted bool   `json:"restricted"`
}

// Client calls the remote notification API. All business data lives behind
// that API; this layer only reads what the support flow needs.
type Client struct {
	baseURL    string
	clientID   string
	secret     string
	httpClient *http.Client
}

// NewClient builds a client from configuration.
func NewClient(cfg config.APIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		clientID:   cfg.ClientID,
		secret:     cfg.Secret,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type servicesResponse struct {
	Data []Service `json:"data"`
}

// ServicesForUser returns the services associated with a user account.
func (c *Client) ServicesForUser(ctx context.Context, userID string) ([]Service, error) {
	endpoint := fmt.Sprintf("%s/service?user_id=%s", c.baseURL, url.QueryEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Client-Id", c.clientID)
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("notify api returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed servicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	return parsed.Data, nil
}
