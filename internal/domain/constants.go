package domain

// Default business rules.
// Working hours and weekdays can be overridden in config.toml,
// slot duration is fixed per deployment.
const (
	DefaultSlotDurationMinutes = 30
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "18:00"
	DefaultMinLeadTimeHours    = 24
	DefaultBufferMinutes       = 0
	DefaultTimezone            = "America/Toronto"
)

// Business validation constants
const (
	MaxAttendeeNameLength = 200
	MaxNotesLength        = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
