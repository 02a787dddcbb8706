package domain

import (
	"errors"
	"time"
)

var (
	// ErrLineNotFound возвращается, когда строка бронирования не найдена
	ErrLineNotFound = errors.New("domain: booking line not found")

	// ErrLineCancelled возвращается при действии над уже отмененной строкой
	ErrLineCancelled = errors.New("domain: booking line already cancelled")
)

// LineStatus represents the status of one booked service line
type LineStatus string

const (
	// LineStatusPending exists only while the vendor call is in flight, it is never persisted
	LineStatusPending   LineStatus = "Pending"
	LineStatusConfirmed LineStatus = "Confirmed"
	LineStatusCancelled LineStatus = "Cancelled"
)

// BookingLine is the vendor confirmation of one service line
type BookingLine struct {
	BookingID        int64  `json:"bookingId"`
	ConfirmationNo   string `json:"confirmationNo"`
	Status           string `json:"status"`
	ServiceUniqueID  string `json:"serviceUniqueId"`
	ServiceType      string `json:"servicetype,omitempty"`
	DownloadRequired bool   `json:"downloadRequired"`
	TicketURL        string `json:"ticketURL,omitempty"`
}

// IsCancelled returns true once the line reached the terminal state
func (l BookingLine) IsCancelled() bool {
	return LineStatus(l.Status) == LineStatusCancelled
}

// BookingResult is the vendor booking confirmation
type BookingResult struct {
	ReferenceNo string        `json:"referenceNo"`
	TicketURL   string        `json:"ticketURL,omitempty"`
	Details     []BookingLine `json:"details"`
}

// BookingRecord is the denormalized, persisted copy of a successful booking.
// Records are append-only; only a line status may change, and only to Cancelled.
type BookingRecord struct {
	AgentID   string        `json:"agentId"`
	TourName  string        `json:"tourName"`
	TourDate  string        `json:"tourDate"`
	StartTime string        `json:"startTime"`
	UniqueNo  int64         `json:"uniqueNo"`
	BookedAt  time.Time     `json:"bookingDate"`
	Result    BookingResult `json:"result"`
}

// ReferenceNo is the join key for ticket retrieval and cancellation
func (r *BookingRecord) ReferenceNo() string {
	return r.Result.ReferenceNo
}

// FindLine returns the line with the given vendor booking id
func (r *BookingRecord) FindLine(bookingID int64) (BookingLine, bool) {
	for _, l := range r.Result.Details {
		if l.BookingID == bookingID {
			return l, true
		}
	}
	return BookingLine{}, false
}

// DirectTicketURL returns a ticket URL already known for the line (line first, then record)
func (r *BookingRecord) DirectTicketURL(line BookingLine) string {
	if line.TicketURL != "" {
		return line.TicketURL
	}
	return r.Result.TicketURL
}

// CanDownloadTicket returns true when a ticket action is exposed for the line
func (r *BookingRecord) CanDownloadTicket(line BookingLine) bool {
	if line.IsCancelled() {
		return false
	}
	return r.DirectTicketURL(line) != "" || line.DownloadRequired
}

// CanCancel returns true when a cancel action is exposed for the line
func (r *BookingRecord) CanCancel(line BookingLine) bool {
	return !line.IsCancelled()
}

// CancelLine sets the status of the matching line to Cancelled in place.
// Nothing else in the record changes.
func (r *BookingRecord) CancelLine(bookingID int64) error {
	for i := range r.Result.Details {
		if r.Result.Details[i].BookingID != bookingID {
			continue
		}
		if r.Result.Details[i].IsCancelled() {
			return ErrLineCancelled
		}
		r.Result.Details[i].Status = string(LineStatusCancelled)
		return nil
	}
	return ErrLineNotFound
}
