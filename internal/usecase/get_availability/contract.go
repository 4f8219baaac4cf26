package get_availability

import (
	"context"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// CalendarClient интерфейс клиента календаря владельца
type CalendarClient interface {
	// ListBusyIntervals возвращает занятые интервалы на указанную дату
	ListBusyIntervals(ctx context.Context, date time.Time) ([]domain.BusyInterval, error)
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
