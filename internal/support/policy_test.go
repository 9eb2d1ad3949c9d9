package support

import (
	"testing"
	"time"

	"github.com/notifyhq/notify-admin/internal/notifyapi"
)

// weekdayPolicy runs a UTC window with no holidays; the returned times sit
// inside and outside it on the same Wednesday.
func weekdayPolicy() (*Policy, time.Time, time.Time) {
	policy := NewPolicy(NewBusinessHours(time.UTC, nil))
	inHours := time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	outOfHours := time.Date(2026, time.January, 7, 20, 0, 0, 0, time.UTC)
	return policy, inHours, outOfHours
}

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		raw  string
		want Severity
	}{
		{"yes", SeverityYes},
		{"no", SeverityNo},
		{"", SeverityUnanswered},
		// A mangled value degrades to unanswered rather than being rejected.
		{"gripe", SeverityUnanswered},
		{"YES", SeverityUnanswered},
	}
	for _, tc := range cases {
		if got := ParseSeverity(tc.raw); got != tc.want {
			t.Errorf("ParseSeverity(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestUrgency(t *testing.T) {
	policy, inHours, outOfHours := weekdayPolicy()

	cases := []struct {
		name       string
		ticketType TicketType
		severity   Severity
		now        time.Time
		wantUrgent bool
		wantCode   int
	}{
		// In business hours everything is urgent.
		{"problem severe in hours", TicketTypeProblem, SeverityYes, inHours, true, 10},
		{"question severe in hours", TicketTypeQuestion, SeverityYes, inHours, true, 10},
		{"problem not severe in hours", TicketTypeProblem, SeverityNo, inHours, true, 10},
		{"question not severe in hours", TicketTypeQuestion, SeverityNo, inHours, true, 10},

		// Out of hours, non-emergencies are never urgent.
		{"problem not severe out of hours", TicketTypeProblem, SeverityNo, outOfHours, false, 1},
		{"question not severe out of hours", TicketTypeQuestion, SeverityNo, outOfHours, false, 1},

		// Out of hours, only severe problems are urgent.
		{"problem severe out of hours", TicketTypeProblem, SeverityYes, outOfHours, true, 10},
		{"question severe out of hours", TicketTypeQuestion, SeverityYes, outOfHours, false, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := policy.Urgency(TicketRequest{
				TicketType: tc.ticketType,
				Severity:   tc.severity,
			}, tc.now)
			if decision.Urgent != tc.wantUrgent || decision.Code != tc.wantCode {
				t.Errorf("Urgency = {%v %d}, want {%v %d}",
					decision.Urgent, decision.Code, tc.wantUrgent, tc.wantCode)
			}
		})
	}
}

func TestUrgencyIgnoresAuthenticationState(t *testing.T) {
	policy, inHours, _ := weekdayPolicy()
	for _, authenticated := range []bool{true, false} {
		decision := policy.Urgency(TicketRequest{
			TicketType:      TicketTypeProblem,
			Severity:        SeverityYes,
			IsAuthenticated: authenticated,
		}, inHours)
		if !decision.Urgent || decision.Code != 10 {
			t.Errorf("authenticated=%v: got {%v %d}, want urgent code 10",
				authenticated, decision.Urgent, decision.Code)
		}
	}
}

func TestNeedsTriage(t *testing.T) {
	policy, inHours, outOfHours := weekdayPolicy()

	cases := []struct {
		name string
		req  TicketRequest
		now  time.Time
		want bool
	}{
		{
			"anonymous callers always triage out of hours",
			TicketRequest{TicketType: TicketTypeProblem},
			outOfHours, true,
		},
		{
			"trial-only accounts never triage",
			TicketRequest{TicketType: TicketTypeProblem, IsAuthenticated: true, HasLiveServices: false},
			outOfHours, false,
		},
		{
			"no triage in hours",
			TicketRequest{TicketType: TicketTypeProblem, IsAuthenticated: true, HasLiveServices: true},
			inHours, false,
		},
		{
			"questions never triage",
			TicketRequest{TicketType: TicketTypeQuestion, IsAuthenticated: true, HasLiveServices: true},
			outOfHours, false,
		},
		{
			"live accounts triage out of hours",
			TicketRequest{TicketType: TicketTypeProblem, IsAuthenticated: true, HasLiveServices: true},
			outOfHours, true,
		},
		{
			"answered severity skips triage",
			TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityNo, IsAuthenticated: true, HasLiveServices: true},
			outOfHours, false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.NeedsTriage(tc.req, tc.now); got != tc.want {
				t.Errorf("NeedsTriage = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNeedsEscalation(t *testing.T) {
	policy, inHours, outOfHours := weekdayPolicy()

	cases := []struct {
		name string
		req  TicketRequest
		now  time.Time
		want bool
	}{
		{
			"anonymous severe problem out of hours",
			TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityYes},
			outOfHours, true,
		},
		{
			"authenticated callers are never escalated",
			TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityYes, IsAuthenticated: true},
			outOfHours, false,
		},
		{
			"in hours nobody is escalated",
			TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityYes},
			inHours, false,
		},
		{
			"not severe is not escalated",
			TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityNo},
			outOfHours, false,
		},
		{
			"questions are never escalated",
			TicketRequest{TicketType: TicketTypeQuestion, Severity: SeverityYes},
			outOfHours, false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.NeedsEscalation(tc.req, tc.now); got != tc.want {
				t.Errorf("NeedsEscalation = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRouteOrdering(t *testing.T) {
	policy, inHours, outOfHours := weekdayPolicy()

	// Triage wins over everything when severity is unanswered.
	req := TicketRequest{TicketType: TicketTypeProblem, Submitted: true}
	if got := policy.Route(req, outOfHours); got != ShowTriagePrompt {
		t.Errorf("Route = %v, want ShowTriagePrompt", got)
	}

	// An anonymous severe problem out of hours escalates, even on submit.
	req = TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityYes, Submitted: true}
	if got := policy.Route(req, outOfHours); got != RedirectToEscalation {
		t.Errorf("Route = %v, want RedirectToEscalation", got)
	}

	// With the gates clear, a submission is accepted and a plain view shown.
	req = TicketRequest{TicketType: TicketTypeProblem, Severity: SeverityYes, Submitted: true}
	if got := policy.Route(req, inHours); got != SubmitTicket {
		t.Errorf("Route = %v, want SubmitTicket", got)
	}
	req.Submitted = false
	if got := policy.Route(req, inHours); got != ShowFeedbackForm {
		t.Errorf("Route = %v, want ShowFeedbackForm", got)
	}
}

func TestHasLiveServices(t *testing.T) {
	live := notifyapi.Service{ID: "a", Name: "a", Restricted: false}
	trial := notifyapi.Service{ID: "b", Name: "b", Restricted: true}

	cases := []struct {
		name     string
		services []notifyapi.Service
		want     bool
	}{
		{"two live services", []notifyapi.Service{live, live}, true},
		{"no services", nil, false},
		// Exactly one live service counts as none.
		{"one live service", []notifyapi.Service{live}, false},
		{"one live plus trials", []notifyapi.Service{live, trial, trial}, false},
		{"two live plus trial", []notifyapi.Service{live, trial, live}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasLiveServices(tc.services); got != tc.want {
				t.Errorf("HasLiveServices = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAnonymous(t *testing.T) {
	if !(TicketRequest{}).Anonymous() {
		t.Error("expected a request without an email address to be anonymous")
	}
	if (TicketRequest{Email: "someone@example.gov.uk"}).Anonymous() {
		t.Error("expected a request with an email address not to be anonymous")
	}
}

func TestThanksMessage(t *testing.T) {
	cases := []struct {
		urgent    bool
		anonymous bool
		want      string
	}{
		{true, false, "We’ll get back to you within 30 minutes."},
		{false, false, "We’ll get back to you by the next working day."},
		{true, true, "We’ll look into it within 30 minutes."},
		{false, true, "We’ll look into it by the next working day."},
	}
	for _, tc := range cases {
		if got := ThanksMessage(tc.urgent, tc.anonymous); got != tc.want {
			t.Errorf("ThanksMessage(%v, %v) = %q, want %q", tc.urgent, tc.anonymous, got, tc.want)
		}
	}
}
