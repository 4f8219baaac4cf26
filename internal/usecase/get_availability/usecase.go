package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
	calendarClient "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/integrations/googlecalendar"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	calendar     CalendarClient
	rules        domain.ScheduleRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar CalendarClient, rules domain.ScheduleRules, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		rules:        rules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, now, uc.rules.Location); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем занятые интервалы из календаря владельца
	busy, err := uc.calendar.ListBusyIntervals(ctx, req.Date)
	if err != nil {
		if errors.Is(err, calendarClient.ErrUnavailable) {
			uc.logger.Error("GetAvailability: calendar unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
		}
		uc.logger.Error("GetAvailability: failed to list busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to list busy intervals: %v", ErrInternal, err)
	}

	// 5. Вычисляем доступные слоты
	slots := computeAvailableSlots(req.Date, busy, uc.rules, now)

	uc.logger.Info("GetAvailability: %d slots available on %s (%d busy intervals)",
		len(slots), req.Date.Format(domain.DateFormat), len(busy))

	return &Response{
		Date:     req.Date,
		Timezone: uc.rules.Location.String(),
		Slots:    slots,
	}, nil
}
