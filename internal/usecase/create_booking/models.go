package create_booking

import (
	"time"

	"github.com/4ppleSA0CE/coffee-chat-scheduler/internal/domain"
)

// Request модель запроса на создание бронирования.
// Живет только в рамках одного вызова Execute.
type Request struct {
	AttendeeName  string          // Имя участника
	AttendeeEmail string          // Email участника
	Slot          domain.TimeSlot // Запрошенный слот
	Notes         *string         // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	GoogleEventID *string
	AttendeeName  string
	AttendeeEmail string
	Slot          domain.TimeSlot
	Notes         *string
	Status        string
	CreatedAt     time.Time
}
