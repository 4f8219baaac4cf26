package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// Client клиент для работы с Google Calendar API.
// Авторизация через refresh token владельца календаря (OAuth offline access),
// access token обновляется автоматически через oauth2.TokenSource.
type Client struct {
	srv        *calendar.Service
	calendarID string
	timeout    time.Duration
	location   *time.Location
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает клиента Calendar API с авторизацией по refresh token.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(ctx context.Context, cfg Config, location *time.Location, log Logger, metrics MetricsObserver) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("%w: google oauth credentials are not configured", ErrInternal)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	srv, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &Client{
		srv:        srv,
		calendarID: calendarID,
		timeout:    cfg.Timeout,
		location:   location,
		log:        log,
		metrics:    metrics,
	}, nil
}

func (c *Client) observe(operation, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveCalendarCall(operation, result)
}

// ListBusyIntervals возвращает занятые интервалы календаря на указанную дату.
// События на весь день превращаются в занятость с 00:00 до 00:00 следующего
// дня в настроенной таймзоне. Отмененные события пропускаются.
func (c *Client) ListBusyIntervals(ctx context.Context, date time.Time) ([]domain.BusyInterval, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	local := date.In(c.location)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := c.srv.Events.List(c.calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(dayStart.UTC().Format(time.RFC3339)).
		TimeMax(dayEnd.UTC().Format(time.RFC3339)).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		c.observe("list_events", "error")
		return nil, c.wrapAPIError("ListBusyIntervals", err)
	}
	c.observe("list_events", "success")

	busy := make([]domain.BusyInterval, 0, len(events.Items))
	for _, event := range events.Items {
		if event.Status == "cancelled" {
			continue
		}

		interval, ok := c.eventToBusyInterval(event)
		if !ok {
			c.log.Warn("ListBusyIntervals: skipping event id=%s with unparseable times", event.Id)
			continue
		}
		busy = append(busy, interval)
	}

	return busy, nil
}

// CreateEvent создает событие в календаре для указанного слота и приглашает
// участника. Возвращает ID созданного события.
func (c *Client) CreateEvent(ctx context.Context, slot domain.TimeSlot, attendeeName, attendeeEmail string, notes *string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	description := fmt.Sprintf("Coffee chat booked by %s (%s).", attendeeName, attendeeEmail)
	if notes != nil && *notes != "" {
		description += "\n\nNotes: " + *notes
	}

	event := &calendar.Event{
		Summary:     fmt.Sprintf("Coffee Chat: %s", attendeeName),
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: slot.Start.In(c.location).Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: slot.End.In(c.location).Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		Attendees: []*calendar.EventAttendee{
			{Email: attendeeEmail, DisplayName: attendeeName},
		},
	}

	created, err := c.srv.Events.Insert(c.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		c.observe("insert_event", "error")
		return "", c.wrapAPIError("CreateEvent", err)
	}
	c.observe("insert_event", "success")

	return created.Id, nil
}

// DeleteEvent удаляет событие из календаря (компенсация при откате
// бронирования). Уже удаленное событие не считается ошибкой.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err := c.srv.Events.Delete(c.calendarID, eventID).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			c.log.Info("DeleteEvent: event id=%s already gone", eventID)
			c.observe("delete_event", "success")
			return nil
		}
		c.observe("delete_event", "error")
		return c.wrapAPIError("DeleteEvent", err)
	}
	c.observe("delete_event", "success")

	return nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// eventToBusyInterval конвертирует событие календаря в занятый интервал.
// События с dateTime парсятся как RFC3339, события на весь день (date)
// интерпретируются в настроенной таймзоне.
func (c *Client) eventToBusyInterval(event *calendar.Event) (domain.BusyInterval, bool) {
	if event.Start == nil || event.End == nil {
		return domain.BusyInterval{}, false
	}

	if event.Start.DateTime != "" && event.End.DateTime != "" {
		start, err := time.Parse(time.RFC3339, event.Start.DateTime)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		end, err := time.Parse(time.RFC3339, event.End.DateTime)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		return domain.BusyInterval{Start: start, End: end}, true
	}

	if event.Start.Date != "" && event.End.Date != "" {
		start, err := time.ParseInLocation(domain.DateFormat, event.Start.Date, c.location)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		end, err := time.ParseInLocation(domain.DateFormat, event.End.Date, c.location)
		if err != nil {
			return domain.BusyInterval{}, false
		}
		return domain.BusyInterval{Start: start, End: end}, true
	}

	return domain.BusyInterval{}, false
}

func (c *Client) wrapAPIError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		c.log.Error("%s: calendar API timeout: %v", op, err)
		return fmt.Errorf("%w: %s: timeout: %v", ErrUnavailable, op, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrEventNotFound, op)
		}
		c.log.Error("%s: calendar API error code=%d: %v", op, apiErr.Code, err)
		return fmt.Errorf("%w: %s: code=%d: %v", ErrUnavailable, op, apiErr.Code, err)
	}

	c.log.Error("%s: calendar API error: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}
