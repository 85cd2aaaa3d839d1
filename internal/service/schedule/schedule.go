// Package schedule computes cadence-based meeting recommendations.
//
// All functions are pure and take an explicit "now" so tests are
// deterministic. Calendar-day comparisons are always performed on UTC
// dates with the time of day zeroed out; a meeting 23 hours away across a
// midnight boundary is "in 1 day", not "today".
package schedule

import (
	"fmt"
	"time"
)

// DefaultIntervalDays is the cadence applied when a member's configured
// interval is missing or not positive.
const DefaultIntervalDays = 14

// NextRecommendedDate returns lastMeeting + interval, or nil when the member
// has never met (there is nothing to base a recommendation on).
func NextRecommendedDate(lastMeeting *time.Time, intervalDays int) *time.Time {
	if lastMeeting == nil {
		return nil
	}
	next := lastMeeting.UTC().AddDate(0, 0, normalizeInterval(intervalDays))
	return &next
}

// IsOverdue reports whether the next recommended meeting is due.
// A member that never met is always overdue. The boundary is inclusive:
// when the recommended date falls on today's calendar day the meeting is
// already overdue.
func IsOverdue(lastMeeting *time.Time, intervalDays int, now time.Time) bool {
	next := NextRecommendedDate(lastMeeting, intervalDays)
	if next == nil {
		return true
	}
	return !DayOf(now).Before(DayOf(*next))
}

// IsScheduledThisWeek reports whether the next recommended meeting falls
// within the next seven calendar days, excluding anything already overdue.
// A member that never met yields false: an unscheduled member is not
// "this week", it is "whenever".
func IsScheduledThisWeek(lastMeeting *time.Time, intervalDays int, now time.Time) bool {
	next := NextRecommendedDate(lastMeeting, intervalDays)
	if next == nil {
		return false
	}
	if IsOverdue(lastMeeting, intervalDays, now) {
		return false
	}
	return DayOf(*next).Before(DayOf(now).AddDate(0, 0, 7))
}

// FormatNextRecommendedDate renders a human-readable label for the next
// recommended date: "unset", "today", "N days overdue", or "in N days".
func FormatNextRecommendedDate(next *time.Time, now time.Time) string {
	if next == nil {
		return "unset"
	}

	days := DaysBetween(now, *next)
	switch {
	case days == 0:
		return "today"
	case days < 0:
		return fmt.Sprintf("%s overdue", pluralDays(-days))
	default:
		return fmt.Sprintf("in %s", pluralDays(days))
	}
}

// DaysSince returns the number of whole calendar days from the last meeting
// to now (0 for the same day).
func DaysSince(lastMeeting, now time.Time) int {
	return DaysBetween(lastMeeting, now)
}

// DaysBetween returns the calendar-day difference to − from, computed on
// UTC dates with time of day zeroed.
func DaysBetween(from, to time.Time) int {
	return int(DayOf(to).Sub(DayOf(from)).Hours() / 24)
}

// DayOf truncates an instant to midnight of its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeInterval(d int) int {
	if d <= 0 {
		return DefaultIntervalDays
	}
	return d
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
