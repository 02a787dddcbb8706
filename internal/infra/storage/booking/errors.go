package booking

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись бронирования не найдена
	ErrRecordNotFound = errors.New("booking.repository: record not found")

	// ErrLineNotCancellable возвращается, когда строка не найдена или уже отменена
	ErrLineNotCancellable = errors.New("booking.repository: line not found or already cancelled")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("booking.repository: failed to encode record")

	// ErrDecode возвращается при ошибке разбора сохраненной записи
	ErrDecode = errors.New("booking.repository: failed to decode record")

	// ErrConflict возвращается, когда запись изменилась во время обновления
	ErrConflict = errors.New("booking.repository: concurrent modification")
)
