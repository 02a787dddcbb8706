package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPax возвращается при некорректном количестве пассажиров
	ErrInvalidPax = errors.New("domain: invalid passenger counts")
)

// Pax is the passenger count of one pending selection
type Pax struct {
	Adults   int
	Children int
	Infants  int
}

// Validate checks adults >= 1 and non-negative children/infants
func (p Pax) Validate() error {
	if p.Adults < MinAdults {
		return fmt.Errorf("%w: at least %d adult required", ErrInvalidPax, MinAdults)
	}
	if p.Children < 0 || p.Infants < 0 {
		return fmt.Errorf("%w: children and infants must not be negative", ErrInvalidPax)
	}
	return nil
}

// Total returns the number of travellers
func (p Pax) Total() int {
	return p.Adults + p.Children + p.Infants
}
