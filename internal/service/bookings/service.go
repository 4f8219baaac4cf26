package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/infra/storage/booking"
	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByDateRange получает бронирования, начинающиеся в интервале [from, to)
func (s *Service) ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.BookingResponse, error) {
	s.logger.Info("ListByDateRange: from=%s, to=%s",
		from.Format(time.RFC3339), to.Format(time.RFC3339))

	bookings, err := s.bookingRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListByDateRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDateRange - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = models.FromDomainBooking(b)
	}
	return result, nil
}
