package quote_options

import (
	"context"

	quoteOptions "github.com/m04kA/SMC-TourGateway/internal/usecase/quote_options"
)

type QuoteOptionsUseCase interface {
	Execute(ctx context.Context, req *quoteOptions.Request) (*quoteOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
