package get_availability

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
	getAvailability "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string          `json:"date"`
	Timezone string          `json:"timezone"`
	Slots    []AvailableSlot `json:"available_slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Времена отдаются в настроенной таймзоне с явным смещением.
func FromUseCaseResponse(resp *getAvailability.Response, loc *time.Location) *AvailabilityResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.Start.In(loc).Format(time.RFC3339),
			EndTime:   slot.End.In(loc).Format(time.RFC3339),
		}
	}

	return &AvailabilityResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Timezone: resp.Timezone,
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Дата интерпретируется как полночь в настроенной таймзоне.
func ToUseCaseRequest(dateStr string, loc *time.Location) (*getAvailability.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{Date: date}, nil
}
