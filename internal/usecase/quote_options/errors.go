package quote_options

import "errors"

var (
	// ErrOptionNotFound возвращается, когда выбранной опции нет среди опций тура
	ErrOptionNotFound = errors.New("quote_options: option not found")

	// ErrTransferNotFound возвращается, когда выбранного трансфера нет в опции
	ErrTransferNotFound = errors.New("quote_options: transfer not found")

	// ErrInvalidDate возвращается при некорректной дате поездки
	ErrInvalidDate = errors.New("quote_options: invalid travel date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_options: invalid input data")
)
