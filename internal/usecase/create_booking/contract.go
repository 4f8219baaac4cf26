package create_booking

import (
	"context"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CalendarClient интерфейс клиента календаря владельца
type CalendarClient interface {
	// ListBusyIntervals возвращает занятые интервалы на указанную дату
	ListBusyIntervals(ctx context.Context, date time.Time) ([]domain.BusyInterval, error)
	// CreateEvent создает событие для слота и приглашает участника
	CreateEvent(ctx context.Context, slot domain.TimeSlot, attendeeName, attendeeEmail string, notes *string) (string, error)
	// DeleteEvent удаляет событие (компенсация при откате)
	DeleteEvent(ctx context.Context, eventID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
