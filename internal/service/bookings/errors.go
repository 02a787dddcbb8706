package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись бронирования не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrLineNotFound возвращается, когда в записи нет строки с таким bookingId
	ErrLineNotFound = errors.New("booking line not found")

	// ErrLineCancelled возвращается при действии над отмененной строкой
	ErrLineCancelled = errors.New("booking line is cancelled")

	// ErrTicketUnavailable возвращается, когда поставщик не выдал ссылку на билет
	ErrTicketUnavailable = errors.New("ticket is not available")

	// ErrTicketNotOffered возвращается для строки без ссылки и без признака downloadRequired
	ErrTicketNotOffered = errors.New("ticket download is not offered for this line")

	// ErrCancelRejected возвращается, когда поставщик отклонил отмену
	ErrCancelRejected = errors.New("cancellation rejected by vendor")

	// ErrVendorUnavailable возвращается, когда поставщик недоступен
	ErrVendorUnavailable = errors.New("vendor unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
