package models

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// BookingResponse модель бронирования для чтения
type BookingResponse struct {
	ID            int64
	GoogleEventID *string
	AttendeeName  string
	AttendeeEmail string
	StartTime     time.Time
	EndTime       time.Time
	Notes         *string
	Status        string
	CreatedAt     time.Time
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		GoogleEventID: b.GoogleEventID,
		AttendeeName:  b.AttendeeName,
		AttendeeEmail: b.AttendeeEmail,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Notes:         b.Notes,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}
