package get_availability

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата (полночь в настроенной таймзоне)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date     time.Time         // Дата, на которую запрашивались слоты
	Timezone string            // Таймзона, в которой считались правила
	Slots    []domain.TimeSlot // Доступные слоты в хронологическом порядке
}
