package list_bookings

import (
	"net/http"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

const (
	msgMissingRange = "from and to query parameters are required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "from must be before to"
)

type Handler struct {
	service  BookingsService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingsService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/bookings
// Query params: from, to (required, YYYY-MM-DD). Возвращает бронирования,
// начинающиеся в полуинтервале [from, to+1d) в настроенной таймзоне.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /api/bookings - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.ParseInLocation(domain.DateFormat, fromStr, h.location)
	if err != nil {
		h.logger.Warn("GET /api/bookings - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.ParseInLocation(domain.DateFormat, toStr, h.location)
	if err != nil {
		h.logger.Warn("GET /api/bookings - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Дата to включается целиком
	to = to.AddDate(0, 0, 1)

	if !from.Before(to) {
		h.logger.Warn("GET /api/bookings - Invalid range: from=%s, to=%s", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.ListByDateRange(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /api/bookings - Failed to list bookings: from=%s, to=%s, error=%v",
			fromStr, toStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromServiceResponse(result, h.location)

	h.logger.Info("GET /api/bookings - Bookings retrieved successfully: from=%s, to=%s, count=%d",
		fromStr, toStr, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
