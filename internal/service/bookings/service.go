package bookings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourGateway/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

const (
	msgCancelFailed = "Cancellation failed"
	msgTicketFailed = "Ticket is not available yet"
	msgCancelled    = "Booking line cancelled"
)

// Service сервис жизненного цикла бронирований: история, билеты, отмена, ваучеры
type Service struct {
	bookingRepo BookingRepository
	vendor      VendorClient
	vouchers    VoucherRenderer
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	vendor VendorClient,
	vouchers VoucherRenderer,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		vendor:      vendor,
		vouchers:    vouchers,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает историю агента, новые записи первыми
func (s *Service) List(ctx context.Context, agentID string) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for agent=%s", agentID)

	records, err := s.bookingRepo.List(ctx, agentID)
	if err != nil {
		s.logger.Error("List: repository error for agent=%s: %v", agentID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for agent=%s", len(records), agentID)
	return models.FromDomainRecordList(records), nil
}

// Get возвращает одну запись по номеру брони
func (s *Service) Get(ctx context.Context, agentID, referenceNo string) (*models.BookingResponse, error) {
	record, err := s.getRecord(ctx, "Get", agentID, referenceNo)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainRecord(*record)
	return &resp, nil
}

// GetTicket возвращает ссылку на билет строки.
// Известная ссылка возвращается без обращения к поставщику; неудача не повторяется.
func (s *Service) GetTicket(ctx context.Context, req models.LineRequest) (*models.TicketResponse, error) {
	s.logger.Info("GetTicket: agent=%s, reference=%s, booking_id=%d", req.AgentID, req.ReferenceNo, req.BookingID)

	record, line, err := s.getLine(ctx, "GetTicket", req.AgentID, req.ReferenceNo, req.BookingID)
	if err != nil {
		return nil, err
	}

	if url := record.DirectTicketURL(line); url != "" {
		return &models.TicketResponse{
			ReferenceNo: req.ReferenceNo,
			BookingID:   req.BookingID,
			URL:         url,
			Direct:      true,
		}, nil
	}

	if !record.CanDownloadTicket(line) {
		s.logger.Warn("GetTicket: ticket not offered for reference=%s, booking_id=%d", req.ReferenceNo, req.BookingID)
		return nil, fmt.Errorf("%w: booking_id=%d", ErrTicketNotOffered, req.BookingID)
	}

	resp, err := s.vendor.GetBookedTickets(ctx, raynaservice.TicketsRequest{
		UniqNO:      record.UniqueNo,
		ReferenceNo: record.ReferenceNo(),
		BookedOption: []raynaservice.BookedOption{
			{ServiceUniqueID: line.ServiceUniqueID, BookingID: line.BookingID},
		},
	})
	if err != nil {
		s.logger.Error("GetTicket: vendor error for reference=%s, booking_id=%d: %v", req.ReferenceNo, req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrVendorUnavailable, err)
	}

	if resp.StatusCode != domain.VendorSuccessStatus || resp.URL == "" {
		msg := resp.Error
		if msg == "" {
			msg = msgTicketFailed
		}
		s.logger.Warn("GetTicket: no ticket for reference=%s, booking_id=%d, status=%d", req.ReferenceNo, req.BookingID, resp.StatusCode)
		return nil, fmt.Errorf("%w: %s", ErrTicketUnavailable, msg)
	}

	return &models.TicketResponse{
		ReferenceNo: req.ReferenceNo,
		BookingID:   req.BookingID,
		URL:         resp.URL,
	}, nil
}

// Cancel отменяет строку у поставщика.
// Только при result.status == 1 статус строки в истории меняется на Cancelled.
func (s *Service) Cancel(ctx context.Context, req models.CancelLineRequest) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: agent=%s, reference=%s, booking_id=%d", req.AgentID, req.ReferenceNo, req.BookingID)

	reason := strings.TrimSpace(req.CancellationReason)
	if reason == "" {
		reason = domain.DefaultCancellationReason
	}
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is longer than %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	record, line, err := s.getLine(ctx, "Cancel", req.AgentID, req.ReferenceNo, req.BookingID)
	if err != nil {
		return nil, err
	}

	res, err := s.vendor.CancelBooking(ctx, raynaservice.CancelRequest{
		BookingID:          strconv.FormatInt(line.BookingID, 10),
		ReferenceNo:        record.ReferenceNo(),
		CancellationReason: reason,
	})
	if err != nil {
		s.logger.Error("Cancel: vendor error for reference=%s, booking_id=%d: %v", req.ReferenceNo, req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrVendorUnavailable, err)
	}

	if res.Status != domain.CancelSuccessStatus {
		msg := res.Message
		if msg == "" {
			msg = msgCancelFailed
		}
		s.logger.Warn("Cancel: vendor rejected reference=%s, booking_id=%d: %s", req.ReferenceNo, req.BookingID, msg)
		return nil, fmt.Errorf("%w: %s", ErrCancelRejected, msg)
	}

	if err := s.bookingRepo.CancelLine(ctx, req.AgentID, req.ReferenceNo, req.BookingID); err != nil {
		// Поставщик уже отменил строку; история разошлась с поставщиком
		s.logger.Error("Cancel: vendor cancelled but history update failed for reference=%s, booking_id=%d: %v",
			req.ReferenceNo, req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	s.metrics.IncBookingCancelled()

	if err := record.CancelLine(req.BookingID); err != nil {
		return nil, fmt.Errorf("%w: Cancel - %v", ErrInternal, err)
	}

	msg := res.Message
	if msg == "" {
		msg = msgCancelled
	}

	s.logger.Info("Cancel: cancelled reference=%s, booking_id=%d", req.ReferenceNo, req.BookingID)
	return &models.CancelResponse{
		Message: msg,
		Booking: models.FromDomainRecord(*record),
	}, nil
}

// Voucher формирует PDF-ваучер записи
func (s *Service) Voucher(ctx context.Context, agentID, referenceNo string) ([]byte, error) {
	record, err := s.getRecord(ctx, "Voucher", agentID, referenceNo)
	if err != nil {
		return nil, err
	}

	pdf, err := s.vouchers.Render(*record)
	if err != nil {
		s.logger.Error("Voucher: render failed for reference=%s: %v", referenceNo, err)
		return nil, fmt.Errorf("%w: Voucher - render: %v", ErrInternal, err)
	}
	return pdf, nil
}

func (s *Service) getRecord(ctx context.Context, op, agentID, referenceNo string) (*domain.BookingRecord, error) {
	record, err := s.bookingRepo.GetByReference(ctx, agentID, referenceNo)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrRecordNotFound) {
			s.logger.Warn("%s: reference=%s not found for agent=%s", op, referenceNo, agentID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for reference=%s: %v", op, referenceNo, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return record, nil
}

// getLine находит строку и отклоняет действия над отмененной строкой
func (s *Service) getLine(ctx context.Context, op, agentID, referenceNo string, bookingID int64) (*domain.BookingRecord, domain.BookingLine, error) {
	record, err := s.getRecord(ctx, op, agentID, referenceNo)
	if err != nil {
		return nil, domain.BookingLine{}, err
	}

	line, ok := record.FindLine(bookingID)
	if !ok {
		return nil, domain.BookingLine{}, ErrLineNotFound
	}
	if line.IsCancelled() {
		s.logger.Warn("%s: line booking_id=%d of reference=%s is cancelled", op, bookingID, referenceNo)
		return nil, domain.BookingLine{}, ErrLineCancelled
	}
	return record, line, nil
}
