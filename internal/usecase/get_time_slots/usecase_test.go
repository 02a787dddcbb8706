package get_time_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

type mockVendor struct {
	mock.Mock
}

func (m *mockVendor) GetTimeSlots(ctx context.Context, in raynaservice.TimeSlotsRequest) ([]domain.TimeSlot, error) {
	args := m.Called(ctx, in)
	slots, _ := args.Get(0).([]domain.TimeSlot)
	return slots, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(vendor VendorClient) *UseCase {
	uc := NewUseCase(vendor, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func baseRequest() *Request {
	return &Request{
		TourID:     42,
		ContractID: 300,
		OptionID:   10,
		TransferID: 41865,
		TravelDate: "2026-03-01",
		Pax:        domain.Pax{Adults: 2, Children: 1},
	}
}

func TestExecute_States(t *testing.T) {
	slots := []domain.TimeSlot{
		{SlotID: "S1", Time: "09:00", Available: 0},
		{SlotID: "S2", Time: "11:00", Available: 3},
		{SlotID: "S3", Time: "13:00", Available: 20},
	}

	tests := []struct {
		name     string
		slots    []domain.TimeSlot
		selected string
		want     domain.SlotState
		canBook  bool
	}{
		{name: "no slots", slots: []domain.TimeSlot{}, want: domain.SlotNoneAvailable},
		{name: "only sold out slots", slots: slots[:1], want: domain.SlotNoneAvailable},
		{name: "awaiting selection", slots: slots, want: domain.SlotAwaitingSelection},
		{name: "sold out slot selected", slots: slots, selected: "S1", want: domain.SlotAwaitingSelection},
		{name: "ready", slots: slots, selected: "S2", want: domain.SlotReady, canBook: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendor := &mockVendor{}
			vendor.On("GetTimeSlots", mock.Anything, raynaservice.TimeSlotsRequest{
				TourID:       42,
				TourOptionID: 10,
				TravelDate:   "2026/03/01",
				TransferID:   41865,
				Adult:        2,
				Child:        1,
				ContractID:   300,
			}).Return(tt.slots, nil)

			req := baseRequest()
			req.SelectedSlotID = tt.selected

			resp, err := newUseCase(vendor).Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.State)
			assert.Equal(t, tt.canBook, resp.CanBook)
		})
	}
}

func TestExecute_SlotFlags(t *testing.T) {
	vendor := &mockVendor{}
	vendor.On("GetTimeSlots", mock.Anything, mock.Anything).Return([]domain.TimeSlot{
		{SlotID: "S1", Time: "09:00", Available: 0},
		{SlotID: "S2", Time: "11:00", Available: 3, DynamicPrice: true, AdultPrice: 99},
	}, nil)

	req := baseRequest()
	req.SelectedSlotID = "S2"
	resp, err := newUseCase(vendor).Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.False(t, resp.Slots[0].Selectable)
	assert.True(t, resp.Slots[1].Selectable)
	assert.True(t, resp.Slots[1].LowStock)
	assert.True(t, resp.Slots[1].Selected)
	assert.True(t, resp.Slots[1].DynamicPrice)
}

func TestExecute_VendorError(t *testing.T) {
	vendor := &mockVendor{}
	vendor.On("GetTimeSlots", mock.Anything, mock.Anything).Return(nil, raynaservice.ErrUnavailable)

	_, err := newUseCase(vendor).Execute(context.Background(), baseRequest())
	assert.ErrorIs(t, err, ErrVendorUnavailable)
}

func TestExecute_Validation(t *testing.T) {
	vendor := &mockVendor{}
	req := baseRequest()
	req.TransferID = 0

	_, err := newUseCase(vendor).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	vendor.AssertNotCalled(t, "GetTimeSlots", mock.Anything, mock.Anything)
}
