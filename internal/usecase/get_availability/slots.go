package get_availability

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// computeAvailableSlots вычисляет доступные слоты на дату.
//
// Алгоритм:
//  1. Генерируем все слоты рабочего окна дня (пустой список, если день
//     недели не разрешен правилами - это не ошибка).
//  2. Отбрасываем слоты, нарушающие минимальное время до бронирования.
//  3. Отбрасываем слоты, пересекающиеся хотя бы с одним занятым
//     интервалом. Пересечение проверяется строгими неравенствами:
//     слот, граничащий с занятым интервалом, остается доступным.
//
// Функция чистая: все состояние (занятые интервалы, текущее время)
// передается вызывающим, повторный вызов с теми же входами дает тот же
// результат.
func computeAvailableSlots(
	date time.Time,
	busy []domain.BusyInterval,
	rules domain.ScheduleRules,
	now time.Time,
) []domain.TimeSlot {
	obstructions := domain.PadBusyIntervals(busy, rules.Buffer)

	allSlots := rules.SlotsForDay(date)

	available := make([]domain.TimeSlot, 0, len(allSlots))
	for _, slot := range allSlots {
		if !rules.IsLeadTimeSatisfied(slot.Start, now) {
			continue
		}
		if slot.OverlapsAny(obstructions) {
			continue
		}
		available = append(available, slot)
	}

	return available
}
