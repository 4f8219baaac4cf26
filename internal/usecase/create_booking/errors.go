package create_booking

import "errors"

var (
	// ErrInvalidRequest возвращается при некорректной форме запроса
	// (пустое имя, невалидный email, нулевой слот)
	ErrInvalidRequest = errors.New("create_booking: invalid request")

	// ErrDurationMismatch возвращается, когда длительность слота не равна
	// настроенной длительности
	ErrDurationMismatch = errors.New("create_booking: slot duration mismatch")

	// ErrOutsideWorkingWindow возвращается, когда слот выходит за рабочее
	// окно или приходится на запрещенный день недели
	ErrOutsideWorkingWindow = errors.New("create_booking: slot is outside working hours")

	// ErrInsufficientLeadTime возвращается, когда до начала слота осталось
	// меньше минимального времени
	ErrInsufficientLeadTime = errors.New("create_booking: insufficient lead time")

	// ErrSlotUnavailable возвращается, когда слот пересекается с занятым
	// интервалом календаря (проверяется по свежим данным в момент бронирования)
	ErrSlotUnavailable = errors.New("create_booking: slot is no longer available")

	// ErrCalendarUnavailable возвращается при недоступности календаря
	ErrCalendarUnavailable = errors.New("create_booking: calendar unavailable")

	// ErrSlotTaken возвращается, когда конкурентное бронирование успело
	// занять тот же слот (конфликт уникальности в БД)
	ErrSlotTaken = errors.New("create_booking: slot was just taken by another booking")

	// ErrStorageUnavailable возвращается при ошибках сохранения бронирования
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
