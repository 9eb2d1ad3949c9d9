package support

import (
	"testing"
	"time"
)

func londonHours(t *testing.T) *BusinessHours {
	t.Helper()
	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	calendar, err := NewCalendar([]string{"2016-01-01"})
	if err != nil {
		t.Fatalf("build calendar: %v", err)
	}
	return NewBusinessHours(location, calendar)
}

func TestBusinessHoursBoundaries(t *testing.T) {
	hours := londonHours(t)

	cases := []struct {
		name string
		when string
		want bool
	}{
		// Opening boundary in summer (BST) and winter (GMT).
		{"summer just before open", "2016-06-06 09:29:59+0100", false},
		{"winter just before open", "2016-12-12 09:29:59+0000", false},
		{"summer at open", "2016-06-06 09:30:00+0100", true},
		{"winter at open", "2016-12-12 09:30:00+0000", true},

		{"middle of the day", "2016-12-12 12:00:00+0000", true},

		// Closing boundary: inclusive below, exclusive at close.
		{"just before close", "2016-12-12 17:29:59+0000", true},
		{"at close", "2016-12-12 17:30:00+0000", false},

		{"saturday", "2016-12-10 12:00:00+0000", false},
		{"sunday", "2016-12-11 12:00:00+0000", false},
		{"bank holiday", "2016-01-01 12:00:00+0000", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			when, err := time.Parse("2006-01-02 15:04:05-0700", tc.when)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.when, err)
			}
			if got := hours.Contains(when); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", tc.when, got, tc.want)
			}
		})
	}
}

func TestBusinessHoursTracksUTCInstant(t *testing.T) {
	hours := londonHours(t)

	// 08:45 UTC on a summer Monday is 09:45 London time, inside the window.
	when := time.Date(2016, time.June, 6, 8, 45, 0, 0, time.UTC)
	if !hours.Contains(when) {
		t.Errorf("expected 08:45 UTC in June to be inside the BST window")
	}

	// The same clock reading in winter is 08:45 local, before opening.
	when = time.Date(2016, time.December, 12, 8, 45, 0, 0, time.UTC)
	if hours.Contains(when) {
		t.Errorf("expected 08:45 UTC in December to be outside the GMT window")
	}
}

func TestCalendarRejectsMalformedDates(t *testing.T) {
	if _, err := NewCalendar([]string{"not-a-date"}); err == nil {
		t.Fatal("expected error for malformed holiday date")
	}
}
