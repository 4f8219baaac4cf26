package list_bookings

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/service/bookings/models"
)

// BookingsListResponse HTTP response model
type BookingsListResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// BookingItem модель бронирования в списке
type BookingItem struct {
	ID            int64   `json:"id"`
	AttendeeName  string  `json:"attendee_name"`
	AttendeeEmail string  `json:"attendee_email"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
}

// FromServiceResponse конвертирует модели сервиса в HTTP response
func FromServiceResponse(bookings []*models.BookingResponse, loc *time.Location) *BookingsListResponse {
	items := make([]BookingItem, len(bookings))
	for i, b := range bookings {
		items[i] = BookingItem{
			ID:            b.ID,
			AttendeeName:  b.AttendeeName,
			AttendeeEmail: b.AttendeeEmail,
			StartTime:     b.StartTime.In(loc).Format(time.RFC3339),
			EndTime:       b.EndTime.In(loc).Format(time.RFC3339),
			Notes:         b.Notes,
			Status:        b.Status,
		}
	}

	return &BookingsListResponse{
		Bookings: items,
		Total:    len(items),
	}
}
