package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
	bookingRepo "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/infra/storage/booking"
	calendarClient "github.com/4ppleSA0CE/coffee-chat-scheduler/internal/integrations/googlecalendar"
)

type fakeRepo struct {
	createErr error

	created *domain.Booking
	calls   int
}

func (f *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

type fakeCalendar struct {
	busy      []domain.BusyInterval
	listErr   error
	createErr error
	deleteErr error

	createdEventID string
	listCalls      int
	createCalls    int
	deletedEvents  []string
}

func (f *fakeCalendar) ListBusyIntervals(_ context.Context, _ time.Time) ([]domain.BusyInterval, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.busy, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, _ domain.TimeSlot, _, _ string, _ *string) (string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdEventID = "evt-123"
	return f.createdEventID, nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	f.deletedEvents = append(f.deletedEvents, eventID)
	return f.deleteErr
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, cal *fakeCalendar) *UseCase {
	uc := NewUseCase(repo, cal, testRules(), nopLogger{})
	uc.timeProvider = &fakeClock{now: farInAdvance}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{}
	uc := newTestUseCase(repo, cal)

	resp, err := uc.Execute(context.Background(), validTestRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	require.NotNil(t, resp.GoogleEventID)
	assert.Equal(t, "evt-123", *resp.GoogleEventID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, cal.listCalls, "busy intervals must be re-fetched at booking time")
	assert.Equal(t, 1, cal.createCalls)
	assert.Empty(t, cal.deletedEvents)

	// В хранилище уходят UTC-времена
	require.NotNil(t, repo.created)
	assert.Equal(t, time.UTC, repo.created.StartTime.Location())
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestUseCase_Execute_InvalidShape(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{}
	uc := newTestUseCase(repo, cal)

	req := validTestRequest()
	req.AttendeeEmail = "broken"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, cal.listCalls)
	assert.Zero(t, repo.calls)
}

func TestUseCase_Execute_SlotBecameBusy(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{
		busy: []domain.BusyInterval{
			{Start: wednesday.Add(10 * time.Hour), End: wednesday.Add(10*time.Hour + 30*time.Minute)},
		},
	}
	uc := newTestUseCase(repo, cal)

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	// Событие не создавалось, запись не делалась
	assert.Zero(t, cal.createCalls)
	assert.Zero(t, repo.calls)
}

func TestUseCase_Execute_CalendarListFails(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{listErr: calendarClient.ErrUnavailable}
	uc := newTestUseCase(repo, cal)

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Zero(t, cal.createCalls)
	assert.Zero(t, repo.calls)
}

func TestUseCase_Execute_CalendarCreateFails(t *testing.T) {
	repo := &fakeRepo{}
	cal := &fakeCalendar{createErr: calendarClient.ErrUnavailable}
	uc := newTestUseCase(repo, cal)

	_, err := uc.Execute(context.Background(), validTestRequest())

	// Бронирование прерывается без записи в БД и без повторных попыток
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
	assert.Equal(t, 1, cal.createCalls)
	assert.Zero(t, repo.calls)
	assert.Empty(t, cal.deletedEvents)
}

func TestUseCase_Execute_ConcurrentConflictRollsBackEvent(t *testing.T) {
	repo := &fakeRepo{createErr: bookingRepo.ErrSlotTaken}
	cal := &fakeCalendar{}
	uc := newTestUseCase(repo, cal)

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	// Созданное событие удалено компенсацией
	require.Len(t, cal.deletedEvents, 1)
	assert.Equal(t, "evt-123", cal.deletedEvents[0])
}

func TestUseCase_Execute_PersistFailureRollsBackEvent(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection reset")}
	cal := &fakeCalendar{}
	uc := newTestUseCase(repo, cal)

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	require.Len(t, cal.deletedEvents, 1)
	assert.Equal(t, "evt-123", cal.deletedEvents[0])
}

func TestUseCase_Execute_RollbackFailureStillReturnsConflict(t *testing.T) {
	// Компенсация не удалась: ошибка логируется, но клиенту все равно
	// возвращается исходный конфликт
	repo := &fakeRepo{createErr: bookingRepo.ErrSlotTaken}
	cal := &fakeCalendar{deleteErr: calendarClient.ErrUnavailable}
	uc := newTestUseCase(repo, cal)

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, cal.deletedEvents, 1)
}
