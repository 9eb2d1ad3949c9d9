package validators

import (
	_ "embed"
	"strings"
)

//go:embed data/blacklisted_passwords.txt
var blacklistedPasswordData string

// Blacklist rejects values present in a fixed denylist of known-compromised
// passwords. The denylist is injected at construction and never mutated.
type Blacklist struct {
	denied  map[string]struct{}
	message string
}

// NewBlacklist builds the validator over an explicit denylist.
func NewBlacklist(denylist []string) *Blacklist {
	denied := make(map[string]struct{}, len(denylist))
	for _, entry := range denylist {
		denied[entry] = struct{}{}
	}
	return &Blacklist{denied: denied, message: "Password is blacklisted."}
}

// DefaultBlacklist loads the denylist packaged with the service.
func DefaultBlacklist() *Blacklist {
	var denylist []string
	for _, line := range strings.Split(blacklistedPasswordData, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			denylist = append(denylist, line)
		}
	}
	return NewBlacklist(denylist)
}

// Validate fails on denylist membership.
func (b *Blacklist) Validate(value string) error {
	if _, found := b.denied[value]; found {
		return NewValidationError(b.message)
	}
	return nil
}
