package validators

import (
	"fmt"
	"sort"
	"strings"
)

// GSM 03.38 basic character set plus the extension table. Messages made of
// these render correctly on every SMS-capable handset.
const (
	gsmBasicCharacters     = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑܧ¿abcdefghijklmnopqrstuvwxyzäöñüà"
	gsmExtensionCharacters = "^{}\\[~]|€"
)

// Smart punctuation the sending pipeline downgrades to a GSM equivalent
// before dispatch, so it counts as compatible here.
const downgradeableCharacters = "‘’“”–— "

var gsmCompatible = buildGSMSet()

func buildGSMSet() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range gsmBasicCharacters + gsmExtensionCharacters + downgradeableCharacters {
		set[r] = struct{}{}
	}
	return set
}

// NonGSMCharacters returns the characters in content that cannot be sent in a
// text message, deduplicated and sorted.
func NonGSMCharacters(content string) []string {
	seen := make(map[rune]struct{})
	for _, r := range content {
		if _, ok := gsmCompatible[r]; !ok {
			seen[r] = struct{}{}
		}
	}
	offending := make([]string, 0, len(seen))
	for r := range seen {
		offending = append(offending, string(r))
	}
	sort.Strings(offending)
	return offending
}

// GSMCharacters rejects message content containing characters outside the
// GSM 03.38-compatible set.
type GSMCharacters struct{}

// NewGSMCharacters constructs the validator.
func NewGSMCharacters() *GSMCharacters {
	return &GSMCharacters{}
}

// Validate fails when any character cannot be rendered, listing the offending
// characters in the message.
func (g *GSMCharacters) Validate(value string) error {
	offending := NonGSMCharacters(value)
	if len(offending) == 0 {
		return nil
	}
	pronoun := "It"
	if len(offending) > 1 {
		pronoun = "They"
	}
	return NewValidationError(fmt.Sprintf(
		"You can’t use %s in text messages. %s won’t show up properly on everyone’s phones.",
		formattedList(offending, "or"),
		pronoun,
	))
}

// formattedList joins items as "a, b or c".
func formattedList(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conjunction + " " + items[len(items)-1]
}
