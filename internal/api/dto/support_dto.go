package dto

// SupportPageResponse is the choose-ticket-type page.
type SupportPageResponse struct {
	Title   string            `json:"title"`
	Options []string          `json:"options"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// FeedbackPageResponse is the feedback form page, pre-filled with any
// preserved message and annotated with field errors on re-render.
type FeedbackPageResponse struct {
	Title          string            `json:"title"`
	TicketType     string            `json:"ticket_type"`
	Feedback       string            `json:"feedback"`
	Name           string            `json:"name,omitempty"`
	EmailAddress   string            `json:"email_address,omitempty"`
	ShowIdentity   bool              `json:"show_identity_fields"`
	ContactDetails string            `json:"contact_details,omitempty"`
	Errors         map[string]string `json:"errors,omitempty"`
}

// TriagePageResponse asks the severity question.
type TriagePageResponse struct {
	Question string            `json:"question"`
	Options  []string          `json:"options"`
	Errors   map[string]string `json:"errors,omitempty"`
}

// EscalationPageResponse is the out-of-hours direct-contact page.
type EscalationPageResponse struct {
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	FallbackPath string `json:"fallback_path"`
}

// ThanksPageResponse confirms submission with the response-time promise.
type ThanksPageResponse struct {
	Message string `json:"message"`
}
