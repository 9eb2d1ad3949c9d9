package support

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const dateLayout = "2006-01-02"

// Calendar is a fixed set of bank-holiday dates, loaded once and immutable.
type Calendar struct {
	holidays map[string]struct{}
}

// NewCalendar builds a calendar from date strings in YYYY-MM-DD form.
func NewCalendar(dates []string) (*Calendar, error) {
	holidays := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", d, err)
		}
		holidays[d] = struct{}{}
	}
	return &Calendar{holidays: holidays}, nil
}

// IsBankHoliday reports whether the local civil date is a designated holiday.
func (c *Calendar) IsBankHoliday(local time.Time) bool {
	_, ok := c.holidays[local.Format(dateLayout)]
	return ok
}

type hoursFile struct {
	Timezone  string `yaml:"timezone"`
	WorkHours struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"work_hours"`
	Holidays []string `yaml:"holidays"`
}

// LoadBusinessHours reads the support-hours calendar file and builds the
// business-hours window it describes.
func LoadBusinessHours(path string) (*BusinessHours, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open support hours file: %w", err)
	}
	defer f.Close()

	var doc hoursFile
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse support hours file: %w", err)
	}

	location, err := time.LoadLocation(doc.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", doc.Timezone, err)
	}

	openMinute, err := parseClock(doc.WorkHours.Start, defaultOpenMinute)
	if err != nil {
		return nil, err
	}
	closeMinute, err := parseClock(doc.WorkHours.End, defaultCloseMinute)
	if err != nil {
		return nil, err
	}

	calendar, err := NewCalendar(doc.Holidays)
	if err != nil {
		return nil, err
	}

	return NewBusinessHoursWindow(location, openMinute, closeMinute, calendar), nil
}

func parseClock(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
