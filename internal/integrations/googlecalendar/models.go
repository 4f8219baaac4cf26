package googlecalendar

import "time"

// Config настройки клиента Google Calendar
type Config struct {
	CalendarID   string
	ClientID     string
	ClientSecret string
	RefreshToken string
	Timeout      time.Duration
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver счетчик вызовов Calendar API
type MetricsObserver interface {
	ObserveCalendarCall(operation, result string)
}
