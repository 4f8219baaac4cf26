package get_availability

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом.
// Дата "сегодня" допустима: слоты на нее отфильтрует правило lead time.
func validateDate(date, now time.Time, loc *time.Location) error {
	if isDateInPast(date, now, loc) {
		return ErrDateInPast
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня в настроенной
// таймзоне
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	d := date.In(loc)
	n := now.In(loc)
	dateOnly := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	nowOnly := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return dateOnly.Before(nowOnly)
}
