package raynaservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

const (
	outcomeOK          = "ok"
	outcomeVendorError = "vendor_error"
	outcomeUnreachable = "unreachable"
)

// Client клиент API поставщика туров
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента поставщика.
// metrics может быть nil.
func NewClient(baseURL, token string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// Forward отправляет тело запроса поставщику без изменений и возвращает ответ как есть.
// Ошибка возвращается только при сбое транспорта.
func (c *Client) Forward(ctx context.Context, method, path string, body []byte) (*RawResponse, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(path, outcomeUnreachable, started)
		c.log.Error("Vendor request failed: path=%s, error=%v", path, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(path, outcomeUnreachable, started)
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrUnavailable, err)
	}

	outcome := outcomeOK
	if resp.StatusCode >= http.StatusBadRequest {
		outcome = outcomeVendorError
		c.log.Warn("Vendor responded with HTTP %d: path=%s", resp.StatusCode, path)
	}
	c.observe(path, outcome, started)

	return &RawResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// GetTourOptions получает живые цены опций тура, сгруппированные по опциям
func (c *Client) GetTourOptions(ctx context.Context, in TourOptionsRequest) ([]domain.TourOption, error) {
	env, err := c.call(ctx, PathTourOptions, in)
	if err != nil {
		return nil, err
	}
	if err := requireSuccess(env); err != nil {
		return nil, err
	}

	var rows []TourOptionPrice
	if env.HasResult() {
		if err := json.Unmarshal(env.Result, &rows); err != nil {
			return nil, fmt.Errorf("%w: failed to decode tour options: %v", ErrInvalidResponse, err)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: tour_id=%d", ErrEmptyResult, in.TourID)
	}

	return toDomainOptions(in.TourID, rows), nil
}

// GetTimeSlots получает временные слоты для опции и трансфера
func (c *Client) GetTimeSlots(ctx context.Context, in TimeSlotsRequest) ([]domain.TimeSlot, error) {
	env, err := c.call(ctx, PathTimeSlots, in)
	if err != nil {
		return nil, err
	}
	if err := requireSuccess(env); err != nil {
		return nil, err
	}

	var slots []TimeSlot
	if env.HasResult() {
		if err := json.Unmarshal(env.Result, &slots); err != nil {
			return nil, fmt.Errorf("%w: failed to decode time slots: %v", ErrInvalidResponse, err)
		}
	}

	return toDomainSlots(slots), nil
}

// CheckAvailability проверяет наличие мест для seat-туров
func (c *Client) CheckAvailability(ctx context.Context, in AvailabilityRequest) (*StatusResult, error) {
	env, err := c.call(ctx, PathAvailability, in)
	if err != nil {
		return nil, err
	}
	if err := requireSuccess(env); err != nil {
		return nil, err
	}
	if !env.HasResult() {
		return nil, fmt.Errorf("%w: availability tour_id=%d", ErrEmptyResult, in.TourID)
	}

	return decodeStatusResult(env.Result)
}

// CreateBooking отправляет бронирование.
// Неуспешный статус поставщика не является ошибкой: решение принимает вызывающий код.
func (c *Client) CreateBooking(ctx context.Context, in BookingRequest) (*BookingResponse, error) {
	env, err := c.call(ctx, PathBookings, in)
	if err != nil {
		return nil, err
	}

	out := &BookingResponse{
		StatusCode: env.StatusCode,
		Error:      env.ErrorText(),
	}
	if env.HasResult() {
		var result BookingResult
		if err := json.Unmarshal(env.Result, &result); err != nil {
			return nil, fmt.Errorf("%w: failed to decode booking result: %v", ErrInvalidResponse, err)
		}
		out.Result = &result
	}

	return out, nil
}

// GetBookedTickets запрашивает ссылку на билет.
// Ссылка ищется в url, ticketURL, затем в result.
func (c *Client) GetBookedTickets(ctx context.Context, in TicketsRequest) (*TicketsResponse, error) {
	env, err := c.call(ctx, PathBookedTickets, in)
	if err != nil {
		return nil, err
	}

	return &TicketsResponse{
		StatusCode: env.StatusCode,
		URL:        firstTicketURL(env),
		Error:      env.ErrorText(),
	}, nil
}

// CancelBooking отменяет строку бронирования. Успех определяет result.status.
func (c *Client) CancelBooking(ctx context.Context, in CancelRequest) (*StatusResult, error) {
	env, err := c.call(ctx, PathCancelBooking, in)
	if err != nil {
		return nil, err
	}

	if !env.HasResult() {
		return &StatusResult{Message: env.ErrorText()}, nil
	}

	res, err := decodeStatusResult(env.Result)
	if err != nil {
		return nil, err
	}
	if res.Message == "" {
		res.Message = env.ErrorText()
	}
	return res, nil
}

// call сериализует payload, отправляет его и разбирает конверт ответа
func (c *Client) call(ctx context.Context, path string, payload interface{}) (*Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	resp, err := c.Forward(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	env, err := ParseEnvelope(resp.Body)
	if err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: HTTP %d on %s", ErrVendorStatus, resp.StatusCode, path)
		}
		return nil, err
	}

	if env.StatusCode == 0 {
		env.StatusCode = resp.StatusCode
	}
	return env, nil
}

func (c *Client) observe(path, outcome string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveVendor(path, outcome, time.Since(started).Seconds())
}

func requireSuccess(env *Envelope) error {
	if env.StatusCode != domain.VendorSuccessStatus {
		return fmt.Errorf("%w: status=%d, error=%s", ErrVendorStatus, env.StatusCode, env.ErrorText())
	}
	return nil
}
