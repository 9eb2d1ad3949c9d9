package validators

import "testing"

func TestGSMCharactersPasses(t *testing.T) {
	v := NewGSMCharacters()
	for _, content := range []string{
		"",
		"Your appointment is at 09:30 on Monday.",
		"Reply YES or NO",
		"£100 @ 50% [terms apply]",
		"newlines\nare fine",
		"curly quotes are downgraded: ‘like’ and “this”",
	} {
		if err := v.Validate(content); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", content, err)
		}
	}
}

func TestGSMCharactersSingular(t *testing.T) {
	v := NewGSMCharacters()
	err := v.Validate("hello ✉")
	if err == nil {
		t.Fatal("expected failure for non-GSM character")
	}
	want := "You can’t use ✉ in text messages. It won’t show up properly on everyone’s phones."
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestGSMCharactersPluralSortedDeduplicated(t *testing.T) {
	v := NewGSMCharacters()
	// Offending characters repeated and out of order: listed once each, sorted.
	err := v.Validate("✉ before ☎ and ✉ again")
	if err == nil {
		t.Fatal("expected failure for non-GSM characters")
	}
	want := "You can’t use ☎ or ✉ in text messages. They won’t show up properly on everyone’s phones."
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestNonGSMCharacters(t *testing.T) {
	got := NonGSMCharacters("Ω is fine, ひ and あ are not, あ twice")
	if len(got) != 2 || got[0] != "あ" || got[1] != "ひ" {
		t.Errorf("NonGSMCharacters = %v, want [あ ひ]", got)
	}
}

func TestFormattedList(t *testing.T) {
	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a or b"},
		{[]string{"a", "b", "c"}, "a, b or c"},
	}
	for _, tc := range cases {
		if got := formattedList(tc.items, "or"); got != tc.want {
			t.Errorf("formattedList(%v) = %q, want %q", tc.items, got, tc.want)
		}
	}
}
