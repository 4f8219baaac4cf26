package create_booking

import (
	"fmt"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
	createBooking "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/usecase/create_booking"
)

// Формат времени без смещения, принимаемый как время в настроенной таймзоне
const localTimeFormat = "2006-01-02T15:04:05"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AttendeeName  string  `json:"attendee_name"`
	AttendeeEmail string  `json:"attendee_email"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Notes         *string `json:"notes,omitempty"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Времена принимаются в RFC3339; время без смещения интерпретируется
// в настроенной таймзоне.
func (r *CreateBookingRequest) ToUseCaseRequest(loc *time.Location) (*createBooking.Request, error) {
	start, err := parseTime(r.StartTime, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start_time: %w", err)
	}

	end, err := parseTime(r.EndTime, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid end_time: %w", err)
	}

	return &createBooking.Request{
		AttendeeName:  r.AttendeeName,
		AttendeeEmail: r.AttendeeEmail,
		Slot:          domain.TimeSlot{Start: start, End: end},
		Notes:         r.Notes,
	}, nil
}

func parseTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localTimeFormat, value, loc)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, loc *time.Location) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		GoogleEventID: resp.GoogleEventID,
		AttendeeName:  resp.AttendeeName,
		AttendeeEmail: resp.AttendeeEmail,
		StartTime:     resp.Slot.Start.In(loc).Format(time.RFC3339),
		EndTime:       resp.Slot.End.In(loc).Format(time.RFC3339),
		Notes:         resp.Notes,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
