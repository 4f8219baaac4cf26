package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/api/handlers"
	createBooking "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/usecase/create_booking"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/pkg/metrics"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidTime          = "invalid time format, expected RFC3339 or YYYY-MM-DDTHH:MM:SS"
	msgInvalidRequest       = "invalid booking request"
	msgDurationMismatch     = "slot duration does not match the configured meeting length"
	msgOutsideWorkingWindow = "slot is outside working hours"
	msgInsufficientLeadTime = "slot does not satisfy the minimum lead time"
	msgSlotUnavailable      = "slot is no longer available"
	msgSlotTaken            = "slot was just booked by someone else"
	msgCalendarUnavailable  = "calendar service is temporarily unavailable"
	msgStorageUnavailable   = "service is temporarily unavailable"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	metrics  *metrics.Metrics
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, metrics *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /api/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidRequest):
			h.logger.Warn("POST /api/bookings - Invalid request: email=%s, error=%v", req.AttendeeEmail, err)
			h.metrics.ObserveBooking("rejected")
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrDurationMismatch):
			h.logger.Warn("POST /api/bookings - Duration mismatch: email=%s, start=%s", req.AttendeeEmail, req.StartTime)
			h.metrics.ObserveBooking("rejected")
			handlers.RespondBadRequest(w, msgDurationMismatch)

		case errors.Is(err, createBooking.ErrOutsideWorkingWindow):
			h.logger.Warn("POST /api/bookings - Outside working window: email=%s, start=%s", req.AttendeeEmail, req.StartTime)
			h.metrics.ObserveBooking("rejected")
			handlers.RespondBadRequest(w, msgOutsideWorkingWindow)

		case errors.Is(err, createBooking.ErrInsufficientLeadTime):
			h.logger.Warn("POST /api/bookings - Insufficient lead time: email=%s, start=%s", req.AttendeeEmail, req.StartTime)
			h.metrics.ObserveBooking("rejected")
			handlers.RespondBadRequest(w, msgInsufficientLeadTime)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /api/bookings - Slot unavailable: email=%s, start=%s", req.AttendeeEmail, req.StartTime)
			h.metrics.ObserveBooking("rejected")
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /api/bookings - Slot taken concurrently: email=%s, start=%s", req.AttendeeEmail, req.StartTime)
			h.metrics.ObserveBooking("conflict")
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /api/bookings - Calendar unavailable: email=%s, error=%v", req.AttendeeEmail, err)
			h.metrics.ObserveBooking("error")
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		case errors.Is(err, createBooking.ErrStorageUnavailable):
			h.logger.Error("POST /api/bookings - Storage unavailable: email=%s, error=%v", req.AttendeeEmail, err)
			h.metrics.ObserveBooking("error")
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("POST /api/bookings - Failed to create booking: email=%s, error=%v", req.AttendeeEmail, err)
			h.metrics.ObserveBooking("error")
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, h.location)

	h.logger.Info("POST /api/bookings - Booking created successfully: booking_id=%d, email=%s",
		result.ID, result.AttendeeEmail)
	h.metrics.ObserveBooking("confirmed")
	handlers.RespondJSON(w, http.StatusCreated, response)
}
