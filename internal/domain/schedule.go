package domain

import (
	"fmt"
	"time"
)

// ScheduleRules holds the owner's booking rules: daily working window,
// weekday allow-set, fixed slot duration, minimum lead time and an
// optional buffer applied around busy intervals.
//
// Derived from configuration once at startup and read-only afterwards.
// All predicates are pure: the caller supplies "now", so both the
// availability (read) path and the booking-validation (write) path
// evaluate the exact same rules.
type ScheduleRules struct {
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int

	Weekdays map[time.Weekday]bool

	SlotDuration time.Duration
	MinLeadTime  time.Duration
	Buffer       time.Duration

	Location *time.Location
}

// Validate checks that the rules are internally consistent.
func (r ScheduleRules) Validate() error {
	if r.Location == nil {
		return fmt.Errorf("schedule rules: location is required")
	}
	if r.SlotDuration <= 0 {
		return fmt.Errorf("schedule rules: slot duration must be positive")
	}
	if r.MinLeadTime < 0 {
		return fmt.Errorf("schedule rules: min lead time must not be negative")
	}
	if r.Buffer < 0 {
		return fmt.Errorf("schedule rules: buffer must not be negative")
	}
	open := r.OpenHour*60 + r.OpenMinute
	close := r.CloseHour*60 + r.CloseMinute
	if open >= close {
		return fmt.Errorf("schedule rules: open time %02d:%02d must be before close time %02d:%02d",
			r.OpenHour, r.OpenMinute, r.CloseHour, r.CloseMinute)
	}
	if len(r.Weekdays) == 0 {
		return fmt.Errorf("schedule rules: at least one weekday must be allowed")
	}
	return nil
}

// IsWeekdayAllowed reports whether booking is permitted on the weekday.
func (r ScheduleRules) IsWeekdayAllowed(d time.Weekday) bool {
	return r.Weekdays[d]
}

// WorkingWindowFor returns the [open, close) bounds of the working window
// on the given date, evaluated in the configured location.
func (r ScheduleRules) WorkingWindowFor(date time.Time) (open, close time.Time) {
	local := date.In(r.Location)
	y, m, d := local.Date()
	open = time.Date(y, m, d, r.OpenHour, r.OpenMinute, 0, 0, r.Location)
	close = time.Date(y, m, d, r.CloseHour, r.CloseMinute, 0, 0, r.Location)
	return open, close
}

// IsLeadTimeSatisfied reports whether the slot start is at least
// MinLeadTime ahead of now.
func (r ScheduleRules) IsLeadTimeSatisfied(slotStart, now time.Time) bool {
	return !slotStart.Before(now.Add(r.MinLeadTime))
}

// IsWithinWorkingWindow reports whether the slot falls on an allowed
// weekday and lies entirely inside that day's working window. Evaluated
// in the configured location regardless of the offsets the slot
// timestamps carry.
func (r ScheduleRules) IsWithinWorkingWindow(slot TimeSlot) bool {
	start := slot.Start.In(r.Location)
	if !r.IsWeekdayAllowed(start.Weekday()) {
		return false
	}
	open, close := r.WorkingWindowFor(start)
	return !slot.Start.Before(open) && !slot.End.After(close)
}

// HasCorrectDuration reports whether the slot length equals the
// configured slot duration exactly. No tolerance.
func (r ScheduleRules) HasCorrectDuration(slot TimeSlot) bool {
	return slot.Duration() == r.SlotDuration
}

// SlotsForDay generates every slot boundary of the given date: from the
// working window's open time to its close time, stepping by the slot
// duration. Slots are contiguous (no gaps, no overlap) and a window that
// does not divide evenly yields no trailing partial slot.
//
// A date whose weekday is not allowed yields an empty list.
func (r ScheduleRules) SlotsForDay(date time.Time) []TimeSlot {
	local := date.In(r.Location)
	if !r.IsWeekdayAllowed(local.Weekday()) {
		return []TimeSlot{}
	}

	open, close := r.WorkingWindowFor(local)

	slots := make([]TimeSlot, 0, close.Sub(open)/r.SlotDuration)
	for start := open; !start.Add(r.SlotDuration).After(close); start = start.Add(r.SlotDuration) {
		slots = append(slots, NewTimeSlot(start, r.SlotDuration))
	}
	return slots
}
