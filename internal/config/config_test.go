package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, domain.DefaultTimezone, cfg.Booking.Timezone)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, cfg.Booking.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultMinLeadTimeHours, cfg.Booking.MinLeadTimeHours)
	assert.Equal(t, "primary", cfg.Google.CalendarID)
}

func TestLoad_OverridesAndEnvSecrets(t *testing.T) {
	path := writeConfig(t, `
[booking]
timezone = "UTC"
slot_duration_minutes = 45
weekdays = ["Mon", "Wed"]

[database]
password = "from-file"
`)

	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh-token")
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Equal(t, 45, cfg.Booking.SlotDurationMinutes)
	assert.Equal(t, "client-id", cfg.Google.ClientID)
	assert.Equal(t, "refresh-token", cfg.Google.RefreshToken)
	// Пароль из окружения важнее файла
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestBookingConfig_ScheduleRules(t *testing.T) {
	b := BookingConfig{
		Timezone:            "America/Toronto",
		OpenTime:            "09:00",
		CloseTime:           "18:00",
		Weekdays:            []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		SlotDurationMinutes: 30,
		MinLeadTimeHours:    24,
		BufferMinutes:       15,
	}

	rules, err := b.ScheduleRules()
	require.NoError(t, err)

	assert.Equal(t, 9, rules.OpenHour)
	assert.Equal(t, 0, rules.OpenMinute)
	assert.Equal(t, 18, rules.CloseHour)
	assert.Equal(t, 30*time.Minute, rules.SlotDuration)
	assert.Equal(t, 24*time.Hour, rules.MinLeadTime)
	assert.Equal(t, 15*time.Minute, rules.Buffer)
	assert.Equal(t, "America/Toronto", rules.Location.String())

	assert.True(t, rules.IsWeekdayAllowed(time.Monday))
	assert.False(t, rules.IsWeekdayAllowed(time.Saturday))
}

func TestBookingConfig_ScheduleRules_Errors(t *testing.T) {
	valid := BookingConfig{
		Timezone:            "UTC",
		OpenTime:            "09:00",
		CloseTime:           "18:00",
		Weekdays:            []string{"Mon"},
		SlotDurationMinutes: 30,
	}

	badTZ := valid
	badTZ.Timezone = "Mars/Olympus"
	_, err := badTZ.ScheduleRules()
	assert.Error(t, err)

	badClock := valid
	badClock.OpenTime = "9am"
	_, err = badClock.ScheduleRules()
	assert.Error(t, err)

	badWeekday := valid
	badWeekday.Weekdays = []string{"Funday"}
	_, err = badWeekday.ScheduleRules()
	assert.Error(t, err)

	inverted := valid
	inverted.OpenTime = "18:00"
	inverted.CloseTime = "09:00"
	_, err = inverted.ScheduleRules()
	assert.Error(t, err)
}

func TestParseWeekdays_CaseInsensitive(t *testing.T) {
	days, err := parseWeekdays([]string{"monday", "TUE", " Wed "})
	require.NoError(t, err)

	assert.True(t, days[time.Monday])
	assert.True(t, days[time.Tuesday])
	assert.True(t, days[time.Wednesday])
	assert.Len(t, days, 3)
}
