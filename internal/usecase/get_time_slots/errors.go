package get_time_slots

import "errors"

var (
	// ErrVendorUnavailable возвращается, когда поставщик не вернул слоты
	ErrVendorUnavailable = errors.New("get_time_slots: vendor unavailable")

	// ErrInvalidDate возвращается при некорректной дате поездки
	ErrInvalidDate = errors.New("get_time_slots: invalid travel date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")
)
