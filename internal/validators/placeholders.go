package validators

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\(\(([^()]+)\)\)`)

// Placeholders extracts the personalisation tokens from template content,
// without the surrounding double brackets.
func Placeholders(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// NoCommasInPlaceholders rejects template content whose placeholder tokens
// contain a comma. Commas would break the personalisation spreadsheet columns.
type NoCommasInPlaceholders struct {
	message string
}

// NewNoCommasInPlaceholders constructs the validator.
func NewNoCommasInPlaceholders() *NoCommasInPlaceholders {
	return &NoCommasInPlaceholders{message: "You can’t have commas in your fields"}
}

// Validate fails when any `((placeholder))` token contains a comma. Content
// with no tokens always passes.
func (n *NoCommasInPlaceholders) Validate(content string) error {
	if strings.Contains(strings.Join(Placeholders(content), ""), ",") {
		return NewValidationError(n.message)
	}
	return nil
}
