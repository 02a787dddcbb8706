package quote_options

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	quoteOptions "github.com/m04kA/SMC-TourGateway/internal/usecase/quote_options"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *quoteOptions.Request) (*quoteOptions.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quoteOptions.Response), args.Error(1)
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *quoteOptions.Request) bool {
		return req.Tour.TourID == 101 && req.Pax.Adults == 2 && req.Pax.Children == 1 && req.OptionID == nil
	})).Return(&quoteOptions.Response{
		TourID:     101,
		TravelDate: "2030-05-01",
		Pax:        domain.Pax{Adults: 2, Children: 1},
		Options: []quoteOptions.Option{{
			OptionID:   1,
			Name:       "Standard",
			Selectable: true,
			Transfers: []quoteOptions.Transfer{{
				TransferID: 41865,
				Name:       "Without Transfers",
				Quote:      domain.Quote{Prices: domain.Prices{Adult: 150, Child: 100}, Total: 400},
				Selectable: true,
			}},
		}},
		SelectedOptionID:   1,
		SelectedTransferID: 41865,
		Selected:           &domain.Quote{Total: 400},
	}, nil)

	w := httptest.NewRecorder()
	body := `{"tourId":101,"contractId":300,"travelDate":"2030-05-01","adults":2,"children":1,"infants":0}`
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Options, 1)
	assert.Equal(t, 400.0, resp.Options[0].Transfers[0].Quote.Total)
	require.NotNil(t, resp.Selected)
	assert.Equal(t, 400.0, resp.Selected.Total)
	assert.False(t, resp.Sample)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid date", fmt.Errorf("%w: in the past", quoteOptions.ErrInvalidDate), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: adults", quoteOptions.ErrInvalidInput), http.StatusBadRequest},
		{"option not found", quoteOptions.ErrOptionNotFound, http.StatusNotFound},
		{"transfer not found", quoteOptions.ErrTransferNotFound, http.StatusNotFound},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{"tourId":1}`)))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &mockUseCase{}

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
