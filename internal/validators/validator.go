// Package validators holds the field-level predicate checks run during form
// binding, before any remote call is made. Each validator is pure: it either
// passes or returns a *ValidationError carrying the inline message for the
// form-rendering layer.
package validators

// Validator checks a single field value.
type Validator interface {
	Validate(value string) error
}

// ValidationError is a recoverable field-level failure. It is handled at the
// form boundary and never propagates further.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a field failure with the given inline message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Chain is an ordered sequence of validators attached to one field.
type Chain []Validator

// Validate runs the chain in order and stops at the first failure.
func (c Chain) Validate(value string) error {
	for _, v := range c {
		if err := v.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll runs every validator and collects all failures, for forms that
// annotate a field with more than one message.
func (c Chain) ValidateAll(value string) []error {
	var errs []error
	for _, v := range c {
		if err := v.Validate(value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
