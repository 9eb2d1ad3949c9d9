// Package deskpro files support tickets with the Deskpro helpdesk over HTTP.
package deskpro

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/notifyhq/notify-admin/internal/config"
	apperrors "github.com/notifyhq/notify-admin/pkg/util"
)

// Ticket is the payload handed to the helpdesk.
type Ticket struct {
	Subject     string
	Message     string
	PersonEmail string
	PersonName  string
	Label       string
	Urgency     int
}

// Client submits tickets to the Deskpro API. Submission is a single blocking
// call with no automatic retry; any non-201 response is fatal for the request.
type Client struct {
	apiHost      string
	apiKey       string
	departmentID string
	agentTeamID  string
	httpClient   *http.Client
	logger       *zap.Logger
}

// NewClient builds a client from configuration.
func NewClient(cfg config.DeskproConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiHost:      cfg.APIHost,
		apiKey:       cfg.APIKey,
		departmentID: cfg.DepartmentID,
		agentTeamID:  cfg.AgentTeamID,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

// CreateTicket files the ticket. A 201 means accepted; any other status is
// logged with the vendor's verbatim response payload and surfaced as an
// upstream rejection.
func (c *Client) CreateTicket(ctx context.Context, ticket Ticket) error {
	form := url.Values{}
	form.Set("department_id", c.departmentID)
	form.Set("agent_team_id", c.agentTeamID)
	form.Set("subject", ticket.Subject)
	form.Set("message", ticket.Message)
	form.Set("person_email", ticket.PersonEmail)
	form.Set("person_name", ticket.PersonName)
	form.Set("label", ticket.Label)
	form.Set("urgency", strconv.Itoa(ticket.Urgency))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiHost+"/api/tickets", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-DeskPRO-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("deskpro create ticket request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", body),
		)
		return apperrors.NewUpstreamRejection("deskpro", resp.StatusCode, string(body))
	}
	return nil
}
