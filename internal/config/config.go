package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты Google OAuth берутся из окружения (.env), а не из файла.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Google   GoogleConfig   `toml:"google"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig бизнес-правила бронирования
type BookingConfig struct {
	Timezone            string   `toml:"timezone"`
	OpenTime            string   `toml:"open_time"`  // "09:00"
	CloseTime           string   `toml:"close_time"` // "18:00"
	Weekdays            []string `toml:"weekdays"`   // ["Mon", ..., "Fri"]
	SlotDurationMinutes int      `toml:"slot_duration_minutes"`
	MinLeadTimeHours    int      `toml:"min_lead_time_hours"`
	BufferMinutes       int      `toml:"buffer_minutes"`
}

// GoogleConfig настройки Google Calendar.
// Креды OAuth всегда читаются из окружения.
type GoogleConfig struct {
	CalendarID     string `toml:"calendar_id"`
	RequestTimeout int    `toml:"request_timeout"` // seconds

	ClientID     string `toml:"-"`
	ClientSecret string `toml:"-"`
	RedirectURI  string `toml:"-"`
	RefreshToken string `toml:"-"`
}

// CORSConfig настройки CORS для фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла и дополняет её секретами
// из переменных окружения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	cfg.Google.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	cfg.Google.RedirectURI = os.Getenv("GOOGLE_REDIRECT_URI")
	cfg.Google.RefreshToken = os.Getenv("GOOGLE_REFRESH_TOKEN")

	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "coffee-chat-scheduler",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			Timezone:            domain.DefaultTimezone,
			OpenTime:            domain.DefaultOpenTime,
			CloseTime:           domain.DefaultCloseTime,
			Weekdays:            []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			MinLeadTimeHours:    domain.DefaultMinLeadTimeHours,
			BufferMinutes:       domain.DefaultBufferMinutes,
		},
		Google: GoogleConfig{
			CalendarID:     "primary",
			RequestTimeout: 10,
		},
	}
}

// ScheduleRules собирает доменные правила бронирования из конфигурации
func (b BookingConfig) ScheduleRules() (domain.ScheduleRules, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return domain.ScheduleRules{}, fmt.Errorf("config: load timezone %q: %w", b.Timezone, err)
	}

	openHour, openMinute, err := parseClock(b.OpenTime)
	if err != nil {
		return domain.ScheduleRules{}, fmt.Errorf("config: open_time: %w", err)
	}

	closeHour, closeMinute, err := parseClock(b.CloseTime)
	if err != nil {
		return domain.ScheduleRules{}, fmt.Errorf("config: close_time: %w", err)
	}

	weekdays, err := parseWeekdays(b.Weekdays)
	if err != nil {
		return domain.ScheduleRules{}, err
	}

	rules := domain.ScheduleRules{
		OpenHour:     openHour,
		OpenMinute:   openMinute,
		CloseHour:    closeHour,
		CloseMinute:  closeMinute,
		Weekdays:     weekdays,
		SlotDuration: time.Duration(b.SlotDurationMinutes) * time.Minute,
		MinLeadTime:  time.Duration(b.MinLeadTimeHours) * time.Hour,
		Buffer:       time.Duration(b.BufferMinutes) * time.Minute,
		Location:     loc,
	}

	if err := rules.Validate(); err != nil {
		return domain.ScheduleRules{}, err
	}

	return rules, nil
}

func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(domain.TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return t.Hour(), t.Minute(), nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

func parseWeekdays(names []string) (map[time.Weekday]bool, error) {
	weekdays := make(map[time.Weekday]bool, len(names))
	for _, name := range names {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("config: unknown weekday %q", name)
		}
		weekdays[day] = true
	}
	return weekdays, nil
}
