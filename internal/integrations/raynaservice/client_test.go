package raynaservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) ObserveVendor(path, outcome string, _ float64) {
	m.outcomes = append(m.outcomes, path+":"+outcome)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *recordingMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := &recordingMetrics{}
	return NewClient(srv.URL, "secret-token", 5*time.Second, nopLogger{}, m), m
}

func TestForward_AddsBearerAndRelaysBody(t *testing.T) {
	client, metrics := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, PathCities, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"CountryId":13063}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"statuscode":418}`))
	})

	resp, err := client.Forward(context.Background(), http.MethodPost, PathCities, []byte(`{"CountryId":13063}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, `{"statuscode":418}`, string(resp.Body))
	assert.Equal(t, []string{PathCities + ":" + outcomeVendorError}, metrics.outcomes)
}

func TestForward_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "t", time.Second, nopLogger{}, nil)
	_, err := client.Forward(context.Background(), http.MethodGet, PathCountries, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetTourOptions_GroupsTransfersByOption(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in TourOptionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "2026/03/01", in.TravelDate)

		_, _ = w.Write([]byte(`{
			"StatusCode": 200,
			"Result": [
				{"tourOptionId": 10, "transferId": 41865, "transferName": "Without Transfers", "adultPrice": 100, "childPrice": 80, "startTime": "10:00"},
				{"tourOptionId": 10, "transferId": 41843, "transferName": "Sharing Transfers", "adultPrice": 150, "childPrice": 110, "isAvailable": false},
				{"tourOptionId": 11, "transferId": 41865, "adultPrice": 300, "seatAvailable": 3}
			]
		}`))
	})

	options, err := client.GetTourOptions(context.Background(), TourOptionsRequest{TourID: 7, TravelDate: "2026/03/01", NoOfAdult: 2})
	require.NoError(t, err)
	require.Len(t, options, 2)

	assert.Equal(t, int64(10), options[0].OptionID)
	require.Len(t, options[0].Transfers, 2)
	assert.Equal(t, int64(41865), options[0].Transfers[0].TransferID)
	assert.True(t, options[0].Transfers[1].Unavailable)

	assert.Equal(t, "Option 11", options[1].Name)
	require.NotNil(t, options[1].Transfers[0].SeatsAvailable)
	assert.Equal(t, 3, *options[1].Transfers[0].SeatsAvailable)
}

func TestGetTourOptions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "vendor 500 without json", status: http.StatusInternalServerError, body: "oops", wantErr: ErrVendorStatus},
		{name: "non-success envelope", status: http.StatusOK, body: `{"statuscode": 400, "error": "bad date"}`, wantErr: ErrVendorStatus},
		{name: "empty result", status: http.StatusOK, body: `{"statuscode": 200, "result": []}`, wantErr: ErrEmptyResult},
		{name: "malformed body", status: http.StatusOK, body: `not json`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetTourOptions(context.Background(), TourOptionsRequest{TourID: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetTimeSlots(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"statuscode": "200", "result": [
			{"tourOptionId": 10, "timeSlotId": "S1", "timeSlot": "09:00", "available": 12, "adultPrice": 120, "childPrice": 90, "isDynamicPrice": true}
		]}`))
	})

	slots, err := client.GetTimeSlots(context.Background(), TimeSlotsRequest{TourID: 1, TourOptionID: 10})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "S1", slots[0].SlotID)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.True(t, slots[0].DynamicPrice)
}

func TestCheckAvailability(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"statuscode": 200, "result": {"Status": 0, "Message": "Sold out"}}`))
	})

	res, err := client.CheckAvailability(context.Background(), AvailabilityRequest{TourID: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Status)
	assert.Equal(t, "Sold out", res.Message)
}

func TestCreateBooking_DecodesResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Contains(t, in, "TourDetails")
		assert.Contains(t, in, "passengers")

		_, _ = w.Write([]byte(`{"statuscode": 200, "result": {
			"referenceNo": "R-1",
			"details": [{"status": "Confirmed", "bookingId": 555, "serviceUniqueId": "123456", "confirmationNo": "C1"}]
		}}`))
	})

	resp, err := client.CreateBooking(context.Background(), BookingRequest{UniqueNo: 100001})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.NotNil(t, resp.Result)

	result := ToBookingResult(resp.Result)
	assert.Equal(t, "R-1", result.ReferenceNo)
	require.Len(t, result.Details, 1)
	assert.Equal(t, int64(555), result.Details[0].BookingID)
}

func TestGetBookedTickets_URLLookupOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "top level url", body: `{"statuscode":200,"url":"https://a","ticketURL":"https://b"}`, want: "https://a"},
		{name: "top level ticketURL", body: `{"statuscode":200,"ticketURL":"https://b"}`, want: "https://b"},
		{name: "result array", body: `{"statuscode":200,"result":[{"ticketURL":"https://c"},{"ticketURL":"https://d"}]}`, want: "https://c"},
		{name: "result object", body: `{"StatusCode":200,"Result":{"TicketURL":"https://e"}}`, want: "https://e"},
		{name: "none", body: `{"statuscode":200,"result":[]}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.GetBookedTickets(context.Background(), TicketsRequest{ReferenceNo: "R-1"})
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, tt.want, resp.URL)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in CancelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "555", in.BookingID)
		assert.Equal(t, "Customer request", in.CancellationReason)

		_, _ = w.Write([]byte(`{"statuscode":200,"result":{"status":1,"message":"Cancelled"}}`))
	})

	res, err := client.CancelBooking(context.Background(), CancelRequest{
		BookingID:          "555",
		ReferenceNo:        "R-1",
		CancellationReason: "Customer request",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Status)
}

func TestCancelBooking_NoResultCarriesVendorMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"statuscode":400,"error":"Booking already cancelled"}`))
	})

	res, err := client.CancelBooking(context.Background(), CancelRequest{BookingID: "1"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Status)
	assert.Equal(t, "Booking already cancelled", res.Message)
}
