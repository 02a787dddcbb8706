package raynaservice

import "errors"

var (
	// ErrUnavailable возвращается, когда поставщик недоступен (ошибка транспорта)
	ErrUnavailable = errors.New("raynaservice client: vendor unreachable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("raynaservice client: internal error")

	// ErrInvalidResponse возвращается при ответе, который не удалось разобрать
	ErrInvalidResponse = errors.New("raynaservice client: invalid response")

	// ErrVendorStatus возвращается, когда поставщик ответил неуспешным статусом
	ErrVendorStatus = errors.New("raynaservice client: non-success vendor status")

	// ErrEmptyResult возвращается, когда поставщик вернул пустой результат
	ErrEmptyResult = errors.New("raynaservice client: empty result")
)
