package support

import "time"

// TicketType distinguishes the two kinds of support request.
type TicketType string

const (
	TicketTypeProblem  TicketType = "problem"
	TicketTypeQuestion TicketType = "question"
)

// ParseTicketType validates a ticket type from a route parameter.
func ParseTicketType(value string) (TicketType, bool) {
	switch TicketType(value) {
	case TicketTypeProblem, TicketTypeQuestion:
		return TicketType(value), true
	}
	return "", false
}

// Severity is the answer to the triage question. Anything other than an
// explicit yes or no (absent, empty string, or a mangled value) degrades to
// unanswered so the caller is asked again rather than rejected.
type Severity string

const (
	SeverityYes        Severity = "yes"
	SeverityNo         Severity = "no"
	SeverityUnanswered Severity = ""
)

// ParseSeverity normalizes a raw query value to a Severity.
func ParseSeverity(value string) Severity {
	switch Severity(value) {
	case SeverityYes, SeverityNo:
		return Severity(value)
	}
	return SeverityUnanswered
}

// Answered reports whether the triage question has a usable answer.
func (s Severity) Answered() bool {
	return s == SeverityYes || s == SeverityNo
}

// TicketRequest is the request-scoped view of an incoming support request.
// Constructed per HTTP request and never mutated after construction.
type TicketRequest struct {
	TicketType TicketType
	Severity   Severity
	Feedback   string
	// Name and Email identify the submitter: session identity for signed-in
	// callers, form input otherwise. Both may be empty.
	Name            string
	Email           string
	IsAuthenticated bool
	// HasLiveServices is only meaningful when IsAuthenticated is true.
	HasLiveServices bool
	// Submitted is true when the request carries a bound form ready to file.
	Submitted bool
}

// Anonymous reports whether the submitter left no reply address. The thanks
// page promises a reply only when there is somewhere to send one.
func (r TicketRequest) Anonymous() bool {
	return r.Email == ""
}

// Urgency codes sent to the helpdesk.
const (
	UrgencyCodeUrgent   = 10
	UrgencyCodeStandard = 1
)

// UrgencyDecision classifies a request for the downstream helpdesk.
type UrgencyDecision struct {
	Urgent bool
	Code   int
}

// Outcome is the terminal result of routing a TicketRequest.
type Outcome int

const (
	// ShowFeedbackForm renders the ordinary feedback form.
	ShowFeedbackForm Outcome = iota
	// ShowTriagePrompt asks the severity question before accepting a problem.
	ShowTriagePrompt
	// RedirectToEscalation sends the caller to the direct-contact page.
	RedirectToEscalation
	// SubmitTicket accepts the request and files it with the helpdesk.
	SubmitTicket
)

// Policy decides how a support request is handled: triage prompt, plain form,
// escalation, or submission, plus the urgency classification of accepted
// tickets.
type Policy struct {
	hours *BusinessHours
}

// NewPolicy constructs the routing policy over a business-hours window.
func NewPolicy(hours *BusinessHours) *Policy {
	return &Policy{hours: hours}
}

// InBusinessHours reports whether the instant is inside the staffed window.
func (p *Policy) InBusinessHours(now time.Time) bool {
	return p.hours.Contains(now)
}

// NeedsTriage reports whether the caller must answer the severity question
// first. Inside business hours everything is urgent anyway, so triage is only
// asked out of hours. Accounts whose only services are still in trial mode
// skip triage: a single trial service does not establish platform trust.
func (p *Policy) NeedsTriage(req TicketRequest, now time.Time) bool {
	return req.TicketType == TicketTypeProblem &&
		!req.Severity.Answered() &&
		(!req.IsAuthenticated || req.HasLiveServices) &&
		!p.hours.Contains(now)
}

// NeedsEscalation reports whether the caller must use the direct-contact
// channel instead of filing a ticket. Only unauthenticated callers reporting
// a severe problem out of hours are escalated; authenticated callers always
// get the ordinary form.
func (p *Policy) NeedsEscalation(req TicketRequest, now time.Time) bool {
	return req.TicketType == TicketTypeProblem &&
		req.Severity == SeverityYes &&
		!req.IsAuthenticated &&
		!p.hours.Contains(now)
}

// Urgency classifies the request. In hours everything is urgent. Out of hours
// only severe problems are; questions never are, whatever their severity.
func (p *Policy) Urgency(req TicketRequest, now time.Time) UrgencyDecision {
	urgent := p.hours.Contains(now) ||
		(req.TicketType == TicketTypeProblem && req.Severity == SeverityYes)
	code := UrgencyCodeStandard
	if urgent {
		code = UrgencyCodeUrgent
	}
	return UrgencyDecision{Urgent: urgent, Code: code}
}

// Route applies the triage and escalation gates in order and picks the
// terminal outcome for the request.
func (p *Policy) Route(req TicketRequest, now time.Time) Outcome {
	if p.NeedsTriage(req, now) {
		return ShowTriagePrompt
	}
	if p.NeedsEscalation(req, now) {
		return RedirectToEscalation
	}
	if req.Submitted {
		return SubmitTicket
	}
	return ShowFeedbackForm
}

// ThanksMessage returns the fixed post-submission message for the
// (urgent, anonymous) combination.
func ThanksMessage(urgent, anonymous bool) string {
	switch {
	case urgent && !anonymous:
		return "We’ll get back to you within 30 minutes."
	case !urgent && !anonymous:
		return "We’ll get back to you by the next working day."
	case urgent && anonymous:
		return "We’ll look into it within 30 minutes."
	default:
		return "We’ll look into it by the next working day."
	}
}
