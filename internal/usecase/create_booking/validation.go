package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

// validateRequest валидирует входные данные до обращения к поставщику
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.AgentID) == "" {
		return fmt.Errorf("%w: agentId is required", ErrInvalidInput)
	}

	if req.Tour.TourID <= 0 {
		return fmt.Errorf("%w: tourId must be positive", ErrInvalidInput)
	}

	if !req.Sample && req.Tour.ContractID <= 0 {
		return fmt.Errorf("%w: contractId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Tour.Name) == "" {
		return fmt.Errorf("%w: tourName is required", ErrInvalidInput)
	}

	if req.OptionID <= 0 {
		return fmt.Errorf("%w: optionId must be positive", ErrInvalidInput)
	}

	if req.TransferID <= 0 {
		return fmt.Errorf("%w: transferId must be positive", ErrInvalidInput)
	}

	if err := req.Pax.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateTraveler(req.Traveler); err != nil {
		return err
	}

	date, err := parseDate(req.TravelDate)
	if err != nil {
		return fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.TravelDate)
	}

	if isDateInPast(date, now) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.TravelDate)
	}

	// Тестовые опции не имеют слотов у поставщика
	if !req.Sample && req.Tour.IsSlot && req.TimeSlotID == "" {
		return ErrSlotRequired
	}

	return nil
}

// validateTraveler проверяет, что все обязательные поля пассажира заполнены
func validateTraveler(t Traveler) error {
	required := []struct {
		name  string
		value string
	}{
		{"prefix", t.Prefix},
		{"firstName", t.FirstName},
		{"lastName", t.LastName},
		{"email", t.Email},
		{"mobile", t.Mobile},
		{"nationality", t.Nationality},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if !strings.Contains(t.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// parseDate разбирает дату поездки в формате YYYY-MM-DD
func parseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}
