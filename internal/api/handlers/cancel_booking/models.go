package cancel_booking

import "github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"

// CancelBookingRequest HTTP request model. Тело необязательно.
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(agentID, referenceNo string, bookingID int64) models.CancelLineRequest {
	return models.CancelLineRequest{
		AgentID:            agentID,
		ReferenceNo:        referenceNo,
		BookingID:          bookingID,
		CancellationReason: r.CancellationReason,
	}
}
