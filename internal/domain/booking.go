package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a confirmed coffee-chat booking.
// Created exactly once per successful booking and never mutated afterwards.
type Booking struct {
	ID            int64
	GoogleEventID *string
	AttendeeName  string
	AttendeeEmail string
	StartTime     time.Time // stored in UTC
	EndTime       time.Time // stored in UTC
	Notes         *string
	Status        BookingStatus
	CreatedAt     time.Time
}

// Slot returns the booking's time interval as a TimeSlot value.
func (b *Booking) Slot() TimeSlot {
	return TimeSlot{Start: b.StartTime, End: b.EndTime}
}
