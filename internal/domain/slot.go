package domain

import "time"

// TimeSlot represents a half-open bookable interval [Start, End).
// Immutable value type; a valid slot always has End - Start equal to
// the configured slot duration.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// NewTimeSlot builds a slot of the given duration starting at start.
func NewTimeSlot(start time.Time, duration time.Duration) TimeSlot {
	return TimeSlot{Start: start, End: start.Add(duration)}
}

// Duration returns the length of the slot.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Equal reports whether both slots denote the same instant pair.
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// Overlaps reports whether the slot overlaps the busy interval.
// Both intervals are half-open, so a slot that merely touches a busy
// interval's boundary (s.End == b.Start or s.Start == b.End) does NOT
// overlap and stays bookable.
func (s TimeSlot) Overlaps(b BusyInterval) bool {
	return s.Start.Before(b.End) && s.End.After(b.Start)
}

// OverlapsAny reports whether the slot overlaps any of the busy intervals.
func (s TimeSlot) OverlapsAny(busy []BusyInterval) bool {
	for _, b := range busy {
		if s.Overlaps(b) {
			return true
		}
	}
	return false
}

// BusyInterval represents an opaque obstruction [Start, End) reported by
// the external calendar. Intervals may overlap each other and are never
// mutated by this service.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Padded returns the interval extended by buffer on both sides.
// With a zero buffer the interval is returned unchanged.
func (b BusyInterval) Padded(buffer time.Duration) BusyInterval {
	if buffer <= 0 {
		return b
	}
	return BusyInterval{Start: b.Start.Add(-buffer), End: b.End.Add(buffer)}
}

// PadBusyIntervals applies Padded to every interval in the list.
func PadBusyIntervals(busy []BusyInterval, buffer time.Duration) []BusyInterval {
	if buffer <= 0 {
		return busy
	}
	padded := make([]BusyInterval, len(busy))
	for i, b := range busy {
		padded[i] = b.Padded(buffer)
	}
	return padded
}
