package get_booking

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	GoogleEventID *string `json:"google_event_id,omitempty"`
	AttendeeName  string  `json:"attendee_name"`
	AttendeeEmail string  `json:"attendee_email"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP response
func FromServiceResponse(b *models.BookingResponse, loc *time.Location) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		GoogleEventID: b.GoogleEventID,
		AttendeeName:  b.AttendeeName,
		AttendeeEmail: b.AttendeeEmail,
		StartTime:     b.StartTime.In(loc).Format(time.RFC3339),
		EndTime:       b.EndTime.In(loc).Format(time.RFC3339),
		Notes:         b.Notes,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339),
	}
}
