package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
	bookingRepo "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/infra/storage/booking"
	calendarClient "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/integrations/googlecalendar"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/pkg/ptr"
)

// UseCase use case для создания бронирования.
//
// Порядок операций: валидация -> создание события в календаре -> запись
// в БД. Такой порядок минимизирует окно, в котором событие существует без
// записи, и гарантирует, что запись не существует без события. При ошибке
// записи выполняется компенсация - попытка удалить созданное событие.
type UseCase struct {
	bookingRepo  BookingRepository
	calendar     CalendarClient
	rules        domain.ScheduleRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendar CalendarClient,
	rules domain.ScheduleRules,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendar:     calendar,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: attendee=%s, slot=%s - %s",
		req.AttendeeEmail, req.Slot.Start.Format(timeLogFormat), req.Slot.End.Format(timeLogFormat))

	// 1. Проверяем форму запроса (имя, email, заметки)
	if err := validateRequestShape(req); err != nil {
		uc.logger.Warn("CreateBooking: request shape validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Повторно применяем бизнес-правила к слоту
	// (длительность -> рабочее окно -> lead time)
	if err := validateSlotRules(req.Slot, now, uc.rules); err != nil {
		uc.logger.Warn("CreateBooking: slot rules validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем СВЕЖИЕ занятые интервалы. Нельзя переиспользовать данные
	// более раннего запроса доступности: слот мог стать занятым между
	// показом списка и бронированием.
	busy, err := uc.calendar.ListBusyIntervals(ctx, req.Slot.Start)
	if err != nil {
		if errors.Is(err, calendarClient.ErrUnavailable) {
			uc.logger.Error("CreateBooking: calendar unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to list busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to list busy intervals: %v", ErrInternal, err)
	}

	// 5. Проверяем, что слот все еще свободен
	if err := checkSlotFree(req.Slot, busy, uc.rules); err != nil {
		uc.logger.Warn("CreateBooking: slot %s no longer available",
			req.Slot.Start.Format(timeLogFormat))
		return nil, err
	}

	// 6. Создаем событие в календаре владельца. При ошибке бронирование
	// прерывается без каких-либо внешне наблюдаемых изменений.
	// Повторять вслепую нельзя - риск дублирования событий.
	eventID, err := uc.calendar.CreateEvent(ctx, req.Slot, req.AttendeeName, req.AttendeeEmail, req.Notes)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create calendar event: %v", err)
		return nil, fmt.Errorf("%w: failed to create event: %v", ErrCalendarUnavailable, err)
	}

	uc.logger.Info("CreateBooking: calendar event created, event_id=%s", eventID)

	// 7. Сохраняем бронирование. Уникальный индекс по (start_time, end_time)
	// отсекает конкурентное бронирование того же слота.
	booking := &domain.Booking{
		GoogleEventID: ptr.Ptr(eventID),
		AttendeeName:  req.AttendeeName,
		AttendeeEmail: req.AttendeeEmail,
		StartTime:     req.Slot.Start.UTC(),
		EndTime:       req.Slot.End.UTC(),
		Notes:         req.Notes,
		Status:        domain.StatusConfirmed,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		// Запись не удалась - событие в календаре осталось сиротой.
		// Пытаемся его удалить (best-effort).
		uc.rollbackEvent(eventID)

		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s taken by concurrent booking",
				req.Slot.Start.Format(timeLogFormat))
			return nil, ErrSlotTaken
		}

		uc.logger.Error("CreateBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d confirmed for %s", created.ID, created.AttendeeEmail)

	return &Response{
		ID:            created.ID,
		GoogleEventID: created.GoogleEventID,
		AttendeeName:  created.AttendeeName,
		AttendeeEmail: created.AttendeeEmail,
		Slot:          domain.TimeSlot{Start: created.StartTime, End: created.EndTime},
		Notes:         created.Notes,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}

// rollbackEvent удаляет событие календаря после неудачной записи в БД.
// Используется отдельный контекст: контекст запроса к этому моменту мог
// быть отменен, а компенсацию нужно попытаться выполнить в любом случае.
// Неудаленное событие - рассинхронизация, требующая ручного вмешательства,
// поэтому логируется на уровне ERROR.
func (uc *UseCase) rollbackEvent(eventID string) {
	if err := uc.calendar.DeleteEvent(context.Background(), eventID); err != nil {
		uc.logger.Error("CreateBooking: INCONSISTENCY - failed to roll back calendar event event_id=%s, manual cleanup required: %v",
			eventID, err)
		return
	}
	uc.logger.Info("CreateBooking: rolled back calendar event event_id=%s", eventID)
}

const timeLogFormat = "2006-01-02T15:04:05Z07:00"
