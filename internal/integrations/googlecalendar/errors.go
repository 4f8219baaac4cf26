package googlecalendar

import "errors"

var (
	// ErrUnavailable возвращается при недоступности Calendar API
	// (сетевые ошибки, таймауты, 5xx от Google)
	ErrUnavailable = errors.New("googlecalendar client: calendar unavailable")

	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("googlecalendar client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("googlecalendar client: internal error")
)
