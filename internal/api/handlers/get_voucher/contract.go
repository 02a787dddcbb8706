package get_voucher

import "context"

type BookingService interface {
	Voucher(ctx context.Context, agentID, referenceNo string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
