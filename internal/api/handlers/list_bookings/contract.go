package list_bookings

import (
	"context"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/service/bookings/models"
)

type BookingsService interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
