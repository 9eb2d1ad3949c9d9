package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/notifyhq/notify-admin/internal/api/dto"
	"github.com/notifyhq/notify-admin/internal/auth"
	"github.com/notifyhq/notify-admin/internal/deskpro"
	"github.com/notifyhq/notify-admin/internal/forms"
	"github.com/notifyhq/notify-admin/internal/notifyapi"
	"github.com/notifyhq/notify-admin/internal/observability"
	"github.com/notifyhq/notify-admin/internal/session"
	"github.com/notifyhq/notify-admin/internal/support"
	apperrors "github.com/notifyhq/notify-admin/pkg/util"
)

// TicketSubmitter files accepted tickets with the helpdesk.
type TicketSubmitter interface {
	CreateTicket(ctx context.Context, ticket deskpro.Ticket) error
}

// SupportDependencies bundles collaborators for the support handler.
type SupportDependencies struct {
	Policy   *support.Policy
	Services support.ServiceLister
	Messages session.MessageStore
	Tickets  TicketSubmitter
	Metrics  *observability.Metrics
	Logger   *zap.Logger
	BaseURL  string
	// Clock defaults to time.Now; injectable for business-hours tests.
	Clock func() time.Time
}

// SupportHandler serves the support and feedback flow: choosing a ticket
// type, the triage question, the feedback form, the out-of-hours escalation
// page, ticket submission and the thanks page.
type SupportHandler struct {
	policy   *support.Policy
	services support.ServiceLister
	messages session.MessageStore
	tickets  TicketSubmitter
	metrics  *observability.Metrics
	logger   *zap.Logger
	baseURL  string
	clock    func() time.Time
}

// NewSupportHandler constructs the handler.
func NewSupportHandler(deps SupportDependencies) *SupportHandler {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &SupportHandler{
		policy:   deps.Policy,
		services: deps.Services,
		messages: deps.Messages,
		tickets:  deps.Tickets,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		baseURL:  strings.TrimRight(deps.BaseURL, "/"),
		clock:    clock,
	}
}

// SupportPage GET /support.
func (h *SupportHandler) SupportPage(c *fiber.Ctx) error {
	return c.JSON(supportPage(nil))
}

// ChooseSupportType POST /support.
func (h *SupportHandler) ChooseSupportType(c *fiber.Ctx) error {
	ticketType, ok := support.ParseTicketType(c.FormValue("support_type"))
	if !ok {
		return c.JSON(supportPage(map[string]string{"support_type": "Select an option"}))
	}
	return c.Redirect("/support/feedback/"+string(ticketType), fiber.StatusFound)
}

// FeedbackPage GET /support/feedback/:ticket_type. The triage and escalation
// gates run before the form is shown; a message preserved across the triage
// round trip is consumed here and pre-filled into the form.
func (h *SupportHandler) FeedbackPage(c *fiber.Ctx) error {
	ticketType, ok := support.ParseTicketType(c.Params("ticket_type"))
	if !ok {
		return apperrors.NewNotFound("page", nil)
	}

	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	preserved, _, err := h.messages.Consume(c.Context(), session.IDFromContext(c))
	if err != nil {
		return apperrors.MapError(err)
	}

	req := h.ticketRequest(c, ticketType, caller, caller.name, caller.email, preserved, false)
	switch h.policy.Route(req, h.clock()) {
	case support.ShowTriagePrompt:
		if err := h.preserve(c, preserved); err != nil {
			return err
		}
		return c.Redirect("/support/triage", fiber.StatusFound)
	case support.RedirectToEscalation:
		return c.Redirect("/support/escalate", fiber.StatusFound)
	default:
		return c.JSON(h.feedbackPage(ticketType, caller, preserved, nil))
	}
}

// SubmitFeedback POST /support/feedback/:ticket_type. Gates run first so the
// feedback text survives a triage redirect; then the form is validated and
// the ticket filed.
func (h *SupportHandler) SubmitFeedback(c *fiber.Ctx) error {
	ticketType, ok := support.ParseTicketType(c.Params("ticket_type"))
	if !ok {
		return apperrors.NewNotFound("page", nil)
	}

	caller, err := h.caller(c)
	if err != nil {
		return err
	}

	preserved, _, err := h.messages.Consume(c.Context(), session.IDFromContext(c))
	if err != nil {
		return apperrors.MapError(err)
	}

	form := forms.FeedbackForm{
		Name:         strings.TrimSpace(c.FormValue("name")),
		EmailAddress: strings.TrimSpace(c.FormValue("email_address")),
		Feedback:     c.FormValue("feedback"),
	}
	if form.Feedback == "" {
		form.Feedback = preserved
	}
	if caller.authenticated {
		form.Name = caller.name
		form.EmailAddress = caller.email
	}

	req := h.ticketRequest(c, ticketType, caller, form.Name, form.EmailAddress, form.Feedback, true)
	switch h.policy.Route(req, h.clock()) {
	case support.ShowTriagePrompt:
		if err := h.preserve(c, form.Feedback); err != nil {
			return err
		}
		return c.Redirect("/support/triage", fiber.StatusFound)
	case support.RedirectToEscalation:
		return c.Redirect("/support/escalate", fiber.StatusFound)
	}

	emailRequired := ticketType == support.TicketTypeProblem && !caller.authenticated
	if errs := form.Validate(emailRequired); len(errs) > 0 {
		page := h.feedbackPage(ticketType, caller, form.Feedback, errs)
		page.Name = form.Name
		page.EmailAddress = form.EmailAddress
		return c.JSON(page)
	}

	urgency := h.policy.Urgency(req, h.clock())
	ticket := deskpro.Ticket{
		Subject:     ticketSubject(req.Name),
		Message:     h.ticketMessage(caller, req.Feedback),
		PersonEmail: req.Email,
		PersonName:  req.Name,
		Label:       string(ticketType),
		Urgency:     urgency.Code,
	}
	if err := h.tickets.CreateTicket(c.Context(), ticket); err != nil {
		return err
	}
	h.metrics.RecordTicketSubmitted(string(ticketType), urgency.Code)

	return c.Redirect(fmt.Sprintf(
		"/support/thanks?urgent=%t&anonymous=%t", urgency.Urgent, req.Anonymous(),
	), fiber.StatusFound)
}

// TriagePage GET /support/triage.
func (h *SupportHandler) TriagePage(c *fiber.Ctx) error {
	return c.JSON(triagePage(nil))
}

// TriageAnswer POST /support/triage.
func (h *SupportHandler) TriageAnswer(c *fiber.Ctx) error {
	severity := support.ParseSeverity(c.FormValue("severe"))
	if !severity.Answered() {
		return c.JSON(triagePage(map[string]string{"severe": "Select yes or no"}))
	}
	return c.Redirect("/support/feedback/problem?severe="+string(severity), fiber.StatusFound)
}

// EscalationPage GET /support/escalate. Signed-in callers are never held at
// the direct-contact page; they go straight back to the feedback form.
func (h *SupportHandler) EscalationPage(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); ok {
		return c.Redirect("/support/feedback/problem", fiber.StatusFound)
	}
	return c.JSON(dto.EscalationPageResponse{
		Title:        "Contact us",
		Instructions: "If this is an emergency affecting a live service, phone the support line so someone can help straight away.",
		FallbackPath: "/support/feedback/problem?severe=no",
	})
}

// ThanksPage GET /support/thanks.
func (h *SupportHandler) ThanksPage(c *fiber.Ctx) error {
	urgent := c.QueryBool("urgent")
	anonymous := c.QueryBool("anonymous")
	return c.JSON(dto.ThanksPageResponse{
		Message: support.ThanksMessage(urgent, anonymous),
	})
}

type supportCaller struct {
	authenticated bool
	userID        string
	name          string
	email         string
	services      []notifyapi.Service
}

func (h *SupportHandler) caller(c *fiber.Ctx) (supportCaller, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return supportCaller{}, nil
	}
	services, err := h.services.ServicesForUser(c.Context(), principal.UserID)
	if err != nil {
		return supportCaller{}, apperrors.NewInternalError(err)
	}
	return supportCaller{
		authenticated: true,
		userID:        principal.UserID,
		name:          principal.Name,
		email:         principal.Email,
		services:      services,
	}, nil
}

func (h *SupportHandler) ticketRequest(c *fiber.Ctx, ticketType support.TicketType, caller supportCaller, name, email, feedback string, submitted bool) support.TicketRequest {
	return support.TicketRequest{
		TicketType:      ticketType,
		Severity:        support.ParseSeverity(c.Query("severe")),
		Feedback:        feedback,
		Name:            name,
		Email:           email,
		IsAuthenticated: caller.authenticated,
		HasLiveServices: support.HasLiveServices(caller.services),
		Submitted:       submitted,
	}
}

func (h *SupportHandler) preserve(c *fiber.Ctx, feedback string) error {
	if feedback == "" {
		return nil
	}
	if err := h.messages.Store(c.Context(), session.IDFromContext(c), feedback); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (h *SupportHandler) feedbackPage(ticketType support.TicketType, caller supportCaller, feedback string, errs map[string]string) dto.FeedbackPageResponse {
	page := dto.FeedbackPageResponse{
		Title:        feedbackTitle(ticketType),
		TicketType:   string(ticketType),
		Feedback:     feedback,
		ShowIdentity: !caller.authenticated,
		Errors:       errs,
	}
	if caller.authenticated {
		page.ContactDetails = fmt.Sprintf("We’ll reply to %s", caller.email)
	}
	return page
}

// ticketMessage builds the helpdesk message body: environment URL, the
// caller's service dashboard when they have one, a blank line, then the
// feedback text.
func (h *SupportHandler) ticketMessage(caller supportCaller, feedback string) string {
	lines := []string{"Environment: " + h.baseURL + "/"}
	if caller.authenticated && len(caller.services) > 0 {
		svc := caller.services[0]
		lines = append(lines, fmt.Sprintf("Service %q: %s/services/%s", svc.Name, h.baseURL, svc.ID))
	}
	lines = append(lines, "", feedback)
	return strings.Join(lines, "\n")
}

func ticketSubject(name string) string {
	if name == "" {
		return "Notify feedback"
	}
	return "Notify feedback " + name
}

func feedbackTitle(ticketType support.TicketType) string {
	if ticketType == support.TicketTypeProblem {
		return "Report a problem"
	}
	return "Ask a question or give feedback"
}

func supportPage(errs map[string]string) dto.SupportPageResponse {
	return dto.SupportPageResponse{
		Title:   "Support",
		Options: []string{string(support.TicketTypeProblem), string(support.TicketTypeQuestion)},
		Errors:  errs,
	}
}

func triagePage(errs map[string]string) dto.TriagePageResponse {
	return dto.TriagePageResponse{
		Question: "Is it an emergency?",
		Options:  []string{string(support.SeverityYes), string(support.SeverityNo)},
		Errors:   errs,
	}
}
