// Package forms binds and validates the support form input. Validation runs
// at the form boundary; failures re-render the form and never reach the
// routing policy.
package forms

import (
	"regexp"
	"strings"

	"github.com/notifyhq/notify-admin/internal/validators"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FeedbackForm carries the support form fields for an anonymous caller.
// Signed-in callers have name and email filled from their session identity.
type FeedbackForm struct {
	Name         string
	EmailAddress string
	Feedback     string
}

type required struct {
	message string
}

func (r required) Validate(value string) error {
	if strings.TrimSpace(value) == "" {
		return validators.NewValidationError(r.message)
	}
	return nil
}

type emailFormat struct{}

func (emailFormat) Validate(value string) error {
	if value != "" && !emailPattern.MatchString(value) {
		return validators.NewValidationError("Enter a valid email address")
	}
	return nil
}

// Validate runs each field's validator chain and returns inline messages
// keyed by field name. Email is only mandatory for problem reports from
// anonymous callers, who would otherwise be unreachable.
func (f *FeedbackForm) Validate(emailRequired bool) map[string]string {
	errs := make(map[string]string)

	feedbackChain := validators.Chain{required{message: "Can’t be empty"}}
	if err := feedbackChain.Validate(f.Feedback); err != nil {
		errs["feedback"] = err.Error()
	}

	emailChain := validators.Chain{emailFormat{}}
	if emailRequired {
		emailChain = validators.Chain{required{message: "Enter your email address"}, emailFormat{}}
	}
	if err := emailChain.Validate(f.EmailAddress); err != nil {
		errs["email_address"] = err.Error()
	}

	return errs
}
