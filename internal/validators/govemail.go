package validators

import (
	"regexp"
	"strings"
)

var govDomainPattern = regexp.MustCompile(
	`@([a-zA-Z0-9.-]+\.)?(gov\.uk|mod\.uk|nhs\.uk|nhs\.net|police\.uk)$`,
)

// GovEmail requires the address to sit on a government domain.
type GovEmail struct {
	message string
}

// NewGovEmail constructs the validator with its standard message.
func NewGovEmail() *GovEmail {
	return &GovEmail{message: "Enter a government email address."}
}

// Validate fails when the lowercased address does not match the allow-pattern.
func (g *GovEmail) Validate(value string) error {
	if !govDomainPattern.MatchString(strings.ToLower(value)) {
		return NewValidationError(g.message)
	}
	return nil
}
