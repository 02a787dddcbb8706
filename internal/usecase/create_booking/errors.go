package create_booking

import "errors"

var (
	// ErrOptionNotFound возвращается, когда опции больше нет в живых ценах
	ErrOptionNotFound = errors.New("create_booking: option not found")

	// ErrTransferNotFound возвращается, когда трансфера больше нет в опции
	ErrTransferNotFound = errors.New("create_booking: transfer not found")

	// ErrNotAvailable возвращается, когда опция, трансфер или места недоступны
	ErrNotAvailable = errors.New("create_booking: selection is not available")

	// ErrSlotRequired возвращается, когда тур требует слот, а он не выбран
	ErrSlotRequired = errors.New("create_booking: time slot is required")

	// ErrSlotNotAvailable возвращается, когда выбранный слот недоступен
	ErrSlotNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrVendorUnavailable возвращается при сбое обращения к поставщику
	ErrVendorUnavailable = errors.New("create_booking: vendor unavailable")

	// ErrBookingRejected возвращается, когда поставщик не подтвердил бронирование
	ErrBookingRejected = errors.New("create_booking: booking rejected by vendor")

	// ErrInvalidDate возвращается при некорректной дате поездки
	ErrInvalidDate = errors.New("create_booking: invalid travel date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")
)
