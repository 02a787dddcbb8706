package models

import (
	"time"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

// Request модели

// CancelLineRequest запрос на отмену строки бронирования
type CancelLineRequest struct {
	AgentID            string
	ReferenceNo        string
	BookingID          int64
	CancellationReason string
}

// LineRequest адресует одну строку бронирования агента
type LineRequest struct {
	AgentID     string
	ReferenceNo string
	BookingID   int64
}

// Response модели

// BookingLineResponse строка бронирования с доступными действиями
type BookingLineResponse struct {
	BookingID         int64  `json:"bookingId"`
	ConfirmationNo    string `json:"confirmationNo"`
	Status            string `json:"status"`
	ServiceUniqueID   string `json:"serviceUniqueId"`
	ServiceType       string `json:"servicetype,omitempty"`
	DownloadRequired  bool   `json:"downloadRequired"`
	TicketURL         string `json:"ticketURL,omitempty"`
	CanDownloadTicket bool   `json:"canDownloadTicket"`
	CanCancel         bool   `json:"canCancel"`
}

// BookingResultResponse результат поставщика в том виде, в каком он сохранен
type BookingResultResponse struct {
	ReferenceNo string                `json:"referenceNo"`
	TicketURL   string                `json:"ticketURL,omitempty"`
	Details     []BookingLineResponse `json:"details"`
}

// BookingResponse сохраненная запись бронирования
type BookingResponse struct {
	TourName    string                `json:"tourName"`
	TourDate    string                `json:"tourDate"`
	StartTime   string                `json:"startTime"`
	UniqueNo    int64                 `json:"uniqueNo"`
	BookingDate time.Time             `json:"bookingDate"`
	Result      BookingResultResponse `json:"result"`
}

// BookingListResponse история бронирований агента, новые первыми
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// TicketResponse ссылка на билет
type TicketResponse struct {
	ReferenceNo string `json:"referenceNo"`
	BookingID   int64  `json:"bookingId"`
	URL         string `json:"url"`
	// Direct true, если ссылка уже была в записи и поставщик не вызывался
	Direct bool `json:"direct"`
}

// CancelResponse результат отмены строки
type CancelResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// FromDomainRecord конвертирует доменную запись в response
func FromDomainRecord(record domain.BookingRecord) BookingResponse {
	lines := make([]BookingLineResponse, 0, len(record.Result.Details))
	for _, l := range record.Result.Details {
		lines = append(lines, BookingLineResponse{
			BookingID:         l.BookingID,
			ConfirmationNo:    l.ConfirmationNo,
			Status:            l.Status,
			ServiceUniqueID:   l.ServiceUniqueID,
			ServiceType:       l.ServiceType,
			DownloadRequired:  l.DownloadRequired,
			TicketURL:         l.TicketURL,
			CanDownloadTicket: record.CanDownloadTicket(l),
			CanCancel:         record.CanCancel(l),
		})
	}

	return BookingResponse{
		TourName:    record.TourName,
		TourDate:    record.TourDate,
		StartTime:   record.StartTime,
		UniqueNo:    record.UniqueNo,
		BookingDate: record.BookedAt,
		Result: BookingResultResponse{
			ReferenceNo: record.Result.ReferenceNo,
			TicketURL:   record.Result.TicketURL,
			Details:     lines,
		},
	}
}

// FromDomainRecordList конвертирует историю в response
func FromDomainRecordList(records []domain.BookingRecord) *BookingListResponse {
	out := make([]BookingResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromDomainRecord(r))
	}
	return &BookingListResponse{
		Bookings: out,
		Total:    len(out),
	}
}
