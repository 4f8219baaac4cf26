package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers"
	getAvailability "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/usecase/get_availability"
)

const (
	msgMissingDate         = "date query parameter is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast          = "date is in the past"
	msgCalendarUnavailable = "calendar service is temporarily unavailable"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /api/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /api/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /api/availability - Invalid input: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrDateInPast):
			h.logger.Warn("GET /api/availability - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrCalendarUnavailable):
			h.logger.Error("GET /api/availability - Calendar unavailable: date=%s, error=%v", dateStr, err)
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /api/availability - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, h.location)

	h.logger.Info("GET /api/availability - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
