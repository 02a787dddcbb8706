package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name   string
		pax    Pax
		prices Prices
		want   float64
	}{
		{
			name:   "dubai standard ticket",
			pax:    Pax{Adults: 2, Children: 1, Infants: 0},
			prices: Prices{Adult: 145, Child: 110, Infant: 0},
			want:   400,
		},
		{
			name:   "adult only",
			pax:    Pax{Adults: 1},
			prices: Prices{Adult: 99.5, Child: 50, Infant: 10},
			want:   99.5,
		},
		{
			name:   "all categories",
			pax:    Pax{Adults: 3, Children: 2, Infants: 1},
			prices: Prices{Adult: 100, Child: 60, Infant: 15},
			want:   435,
		},
		{
			name:   "free tour",
			pax:    Pax{Adults: 4, Children: 4, Infants: 4},
			prices: Prices{},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Total(tt.pax, tt.prices), 1e-9)
		})
	}
}

func TestTotal_MonotonicInEachCategory(t *testing.T) {
	prices := Prices{Adult: 145, Child: 110, Infant: 12.5}

	for a := 1; a <= 5; a++ {
		for c := 0; c <= 5; c++ {
			for i := 0; i <= 5; i++ {
				base := Total(Pax{Adults: a, Children: c, Infants: i}, prices)
				assert.GreaterOrEqual(t, Total(Pax{Adults: a + 1, Children: c, Infants: i}, prices), base)
				assert.GreaterOrEqual(t, Total(Pax{Adults: a, Children: c + 1, Infants: i}, prices), base)
				assert.GreaterOrEqual(t, Total(Pax{Adults: a, Children: c, Infants: i + 1}, prices), base)
			}
		}
	}
}

func TestResolveTransfer(t *testing.T) {
	option := TourOption{
		OptionID: 10,
		Transfers: []Transfer{
			{TransferID: 1, AdultPrice: 145, ChildPrice: 110},
			{TransferID: 2, AdultPrice: 210, ChildPrice: 170},
		},
	}

	t.Run("defaults to first transfer", func(t *testing.T) {
		tr, err := ResolveTransfer(option, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), tr.TransferID)
	})

	t.Run("explicit selection wins", func(t *testing.T) {
		id := int64(2)
		tr, err := ResolveTransfer(option, &id)
		require.NoError(t, err)
		assert.Equal(t, int64(2), tr.TransferID)
	})

	t.Run("unknown transfer", func(t *testing.T) {
		id := int64(99)
		_, err := ResolveTransfer(option, &id)
		assert.ErrorIs(t, err, ErrTransferNotFound)
	})

	t.Run("no transfers", func(t *testing.T) {
		_, err := ResolveTransfer(TourOption{OptionID: 1}, nil)
		assert.ErrorIs(t, err, ErrNoTransfers)
	})
}

func TestNewQuote_SwitchingTransferUsesNewPrices(t *testing.T) {
	option := TourOption{
		OptionID: 10,
		Transfers: []Transfer{
			{TransferID: 1, AdultPrice: 145, ChildPrice: 110, StartTime: "09:00"},
			{TransferID: 2, AdultPrice: 210, ChildPrice: 170, StartTime: "08:00"},
		},
	}
	pax := Pax{Adults: 2, Children: 1}
	tour := Tour{TourID: 5}

	first, err := ResolveTransfer(option, nil)
	require.NoError(t, err)
	q1 := NewQuote(tour, first, pax)
	assert.Equal(t, Prices{Adult: 145, Child: 110}, q1.Prices)
	assert.InDelta(t, 400, q1.Total, 1e-9)

	id := int64(2)
	second, err := ResolveTransfer(option, &id)
	require.NoError(t, err)
	q2 := NewQuote(tour, second, pax)
	assert.Equal(t, Prices{Adult: 210, Child: 170}, q2.Prices)
	assert.InDelta(t, 590, q2.Total, 1e-9)
	assert.Equal(t, "08:00", q2.StartTime)
}

func TestNewQuote_SubtotalsAndStartTime(t *testing.T) {
	tr := Transfer{TransferID: 1, AdultPrice: 100, ChildPrice: 50, InfantPrice: 10, DepartureTime: "07:30"}

	q := NewQuote(Tour{}, tr, Pax{Adults: 2, Children: 3, Infants: 1})
	assert.InDelta(t, 200, q.AdultSubtotal, 1e-9)
	assert.InDelta(t, 150, q.ChildSubtotal, 1e-9)
	assert.InDelta(t, 10, q.InfantSubtotal, 1e-9)
	assert.InDelta(t, 360, q.Total, 1e-9)
	assert.False(t, q.RequiresSlot)
	assert.Equal(t, "07:30", q.StartTime)

	slotQuote := NewQuote(Tour{IsSlot: true}, tr, Pax{Adults: 1})
	assert.True(t, slotQuote.RequiresSlot)
	assert.Empty(t, slotQuote.StartTime)
}

func TestNewSlotQuote_DynamicPriceOverrides(t *testing.T) {
	tr := Transfer{AdultPrice: 100, ChildPrice: 50, InfantPrice: 5}
	pax := Pax{Adults: 1, Children: 1, Infants: 1}

	static := NewSlotQuote(tr, TimeSlot{SlotID: "a", Time: "10:00", AdultPrice: 130, ChildPrice: 90}, pax)
	assert.InDelta(t, 155, static.Total, 1e-9)
	assert.Equal(t, "10:00", static.StartTime)

	dynamic := NewSlotQuote(tr, TimeSlot{SlotID: "b", Time: "12:00", AdultPrice: 130, ChildPrice: 90, DynamicPrice: true}, pax)
	assert.InDelta(t, 225, dynamic.Total, 1e-9)
}

func TestFormatServiceTotal(t *testing.T) {
	assert.Equal(t, "400.000000", FormatServiceTotal(400))
	assert.Equal(t, "145.500000", FormatServiceTotal(145.5))
	assert.Equal(t, "0.000000", FormatServiceTotal(0))
}

func TestSlotReadiness(t *testing.T) {
	slots := []TimeSlot{
		{SlotID: "s1", Available: 0},
		{SlotID: "s2", Available: 3},
	}

	assert.Equal(t, SlotNotRequired, SlotReadiness(false, nil, ""))
	assert.Equal(t, SlotNoneAvailable, SlotReadiness(true, nil, ""))
	assert.Equal(t, SlotNoneAvailable, SlotReadiness(true, slots[:1], "s1"))
	assert.Equal(t, SlotAwaitingSelection, SlotReadiness(true, slots, ""))
	assert.Equal(t, SlotAwaitingSelection, SlotReadiness(true, slots, "s1"))
	assert.Equal(t, SlotAwaitingSelection, SlotReadiness(true, slots, "unknown"))
	assert.Equal(t, SlotReady, SlotReadiness(true, slots, "s2"))

	assert.True(t, SlotNotRequired.CanBook())
	assert.True(t, SlotReady.CanBook())
	assert.False(t, SlotAwaitingSelection.CanBook())
	assert.False(t, SlotNoneAvailable.CanBook())
}

func TestTransferAvailability(t *testing.T) {
	zero, low, plenty := 0, 3, 20

	assert.True(t, Transfer{}.IsSelectable())
	assert.False(t, Transfer{Unavailable: true}.IsSelectable())
	assert.False(t, Transfer{SeatsAvailable: &zero}.IsSelectable())
	assert.True(t, Transfer{SeatsAvailable: &low}.IsSelectable())

	assert.True(t, Transfer{SeatsAvailable: &low}.IsLowStock())
	assert.False(t, Transfer{SeatsAvailable: &plenty}.IsLowStock())
	assert.False(t, Transfer{SeatsAvailable: &zero}.IsLowStock())
	assert.False(t, Transfer{}.IsLowStock())
}

func TestSampleOptions(t *testing.T) {
	opts := SampleOptions(Tour{TourID: 77})
	require.Len(t, opts, 3)

	for _, o := range opts {
		assert.True(t, o.Sample)
		assert.Equal(t, int64(77), o.TourID)
	}
	assert.True(t, opts[0].IsSelectable())
	assert.True(t, opts[1].IsSelectable())
	assert.True(t, opts[1].Transfers[0].IsLowStock())
	assert.False(t, opts[2].IsSelectable())

	q := NewQuote(Tour{}, opts[0].Transfers[0], Pax{Adults: 2, Children: 1})
	assert.InDelta(t, 400, q.Total, 1e-9)
}

func TestPaxValidate(t *testing.T) {
	assert.NoError(t, Pax{Adults: 1}.Validate())
	assert.ErrorIs(t, Pax{Adults: 0}.Validate(), ErrInvalidPax)
	assert.ErrorIs(t, Pax{Adults: 1, Children: -1}.Validate(), ErrInvalidPax)
	assert.ErrorIs(t, Pax{Adults: 1, Infants: -1}.Validate(), ErrInvalidPax)
	assert.Equal(t, 6, Pax{Adults: 1, Children: 2, Infants: 3}.Total())
}
