package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// validateRequestShape проверяет форму запроса (имя, email, заметки, слот)
// до применения бизнес-правил
func validateRequestShape(req *Request) error {
	name := strings.TrimSpace(req.AttendeeName)
	if name == "" {
		return fmt.Errorf("%w: attendee name is required", ErrInvalidRequest)
	}
	if len(name) > domain.MaxAttendeeNameLength {
		return fmt.Errorf("%w: attendee name is too long (max %d characters)",
			ErrInvalidRequest, domain.MaxAttendeeNameLength)
	}

	if err := validateEmail(req.AttendeeEmail); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d characters)",
			ErrInvalidRequest, domain.MaxNotesLength)
	}

	if req.Slot.Start.IsZero() || req.Slot.End.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalidRequest)
	}

	return nil
}

// validateEmail проверяет синтаксис email адреса.
// Адрес должен быть "голым" (user@host), без display name.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: attendee email is required", ErrInvalidRequest)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid attendee email %q", ErrInvalidRequest, email)
	}

	return nil
}

// validateSlotRules повторно применяет бизнес-правила к запрошенному слоту.
// Порядок проверок фиксирован: длительность -> рабочее окно -> lead time.
// Используются те же предикаты domain.ScheduleRules, что и при расчете
// доступности, чтобы read и write пути не могли разойтись.
func validateSlotRules(slot domain.TimeSlot, now time.Time, rules domain.ScheduleRules) error {
	if !rules.HasCorrectDuration(slot) {
		return fmt.Errorf("%w: slot must be exactly %d minutes",
			ErrDurationMismatch, int(rules.SlotDuration.Minutes()))
	}

	if !rules.IsWithinWorkingWindow(slot) {
		return fmt.Errorf("%w: bookings are accepted %02d:%02d-%02d:%02d on allowed weekdays",
			ErrOutsideWorkingWindow, rules.OpenHour, rules.OpenMinute, rules.CloseHour, rules.CloseMinute)
	}

	if !rules.IsLeadTimeSatisfied(slot.Start, now) {
		return fmt.Errorf("%w: must book at least %d hours in advance",
			ErrInsufficientLeadTime, int(rules.MinLeadTime.Hours()))
	}

	return nil
}

// checkSlotFree проверяет слот на пересечение с занятыми интервалами,
// полученными из календаря непосредственно перед бронированием
func checkSlotFree(slot domain.TimeSlot, busy []domain.BusyInterval, rules domain.ScheduleRules) error {
	obstructions := domain.PadBusyIntervals(busy, rules.Buffer)
	if slot.OverlapsAny(obstructions) {
		return ErrSlotUnavailable
	}
	return nil
}
