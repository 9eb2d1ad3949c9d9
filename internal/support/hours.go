package support

import (
	"time"
)

const (
	defaultOpenMinute  = 9*60 + 30
	defaultCloseMinute = 17*60 + 30
)

// HolidayCalendar reports whether a local civil date is a designated bank holiday.
type HolidayCalendar interface {
	IsBankHoliday(local time.Time) bool
}

// BusinessHours is the support-staffed window: weekday local civil time between
// open (inclusive) and close (exclusive), bank holidays excluded.
type BusinessHours struct {
	location    *time.Location
	openMinute  int
	closeMinute int
	calendar    HolidayCalendar
}

// NewBusinessHours builds the default 09:30-17:30 window in the given location.
func NewBusinessHours(location *time.Location, calendar HolidayCalendar) *BusinessHours {
	return &BusinessHours{
		location:    location,
		openMinute:  defaultOpenMinute,
		closeMinute: defaultCloseMinute,
		calendar:    calendar,
	}
}

// NewBusinessHoursWindow builds a window with explicit open and close clock
// times, expressed as minutes since local midnight.
func NewBusinessHoursWindow(location *time.Location, openMinute, closeMinute int, calendar HolidayCalendar) *BusinessHours {
	return &BusinessHours{
		location:    location,
		openMinute:  openMinute,
		closeMinute: closeMinute,
		calendar:    calendar,
	}
}

// Contains reports whether the instant falls inside business hours. The
// conversion to local civil time makes the window track daylight-saving
// offset changes.
func (b *BusinessHours) Contains(t time.Time) bool {
	local := t.In(b.location)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if b.calendar != nil && b.calendar.IsBankHoliday(local) {
		return false
	}
	minute := local.Hour()*60 + local.Minute()
	return minute >= b.openMinute && minute < b.closeMinute
}
