package vendor_proxy

import (
	"context"

	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

type VendorClient interface {
	Forward(ctx context.Context, method, path string, body []byte) (*raynaservice.RawResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
