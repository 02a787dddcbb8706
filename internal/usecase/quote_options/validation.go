package quote_options

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

// validateRequest валидирует входные данные и возвращает дату поездки
func validateRequest(req *Request, now time.Time) (time.Time, error) {
	if req.Tour.TourID <= 0 {
		return time.Time{}, fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	if req.Tour.ContractID <= 0 {
		return time.Time{}, fmt.Errorf("%w: contractId must be positive", ErrInvalidInput)
	}

	if err := req.Pax.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateFormat, req.TravelDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.TravelDate)
	}

	if isDateInPast(date, now) {
		return time.Time{}, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.TravelDate)
	}

	return date, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
