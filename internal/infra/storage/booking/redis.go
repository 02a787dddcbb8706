package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

const cancelMaxAttempts = 3

// RedisRepository хранит историю агента одним списком JSON-записей.
// Новые записи добавляются в голову списка (LPUSH).
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository создает репозиторий. prefix задает имя ключа, например rayna_bookings.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

// Key возвращает ключ списка агента
func (r *RedisRepository) Key(agentID string) string {
	return r.prefix + ":" + agentID
}

// Append добавляет запись в начало истории
func (r *RedisRepository) Append(ctx context.Context, agentID string, record domain.BookingRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: Append: %v", ErrEncode, err)
	}

	if err := r.client.LPush(ctx, r.Key(agentID), data).Err(); err != nil {
		return fmt.Errorf("%w: Append - LPUSH: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает историю агента. Отсутствующий ключ означает пустую историю.
func (r *RedisRepository) List(ctx context.Context, agentID string) ([]domain.BookingRecord, error) {
	items, err := r.client.LRange(ctx, r.Key(agentID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: List - LRANGE: %v", ErrExecQuery, err)
	}
	return decodeRecords(items)
}

// GetByReference возвращает самую свежую запись с данным номером брони
func (r *RedisRepository) GetByReference(ctx context.Context, agentID, referenceNo string) (*domain.BookingRecord, error) {
	records, err := r.List(ctx, agentID)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ReferenceNo() == referenceNo {
			return &records[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

// CancelLine меняет статус строки на месте (WATCH + LSET).
// При конкурентной записи операция повторяется.
func (r *RedisRepository) CancelLine(ctx context.Context, agentID, referenceNo string, bookingID int64) error {
	key := r.Key(agentID)

	update := func(tx *redis.Tx) error {
		items, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("%w: CancelLine - LRANGE: %v", ErrExecQuery, err)
		}

		index, record, err := findRecord(items, referenceNo)
		if err != nil {
			return err
		}
		if err := record.CancelLine(bookingID); err != nil {
			return fmt.Errorf("%w: %v", ErrLineNotCancellable, err)
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("%w: CancelLine: %v", ErrEncode, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LSet(ctx, key, int64(index), data)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < cancelMaxAttempts; attempt++ {
		err := r.client.Watch(ctx, update, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrConflict
}

func findRecord(items []string, referenceNo string) (int, *domain.BookingRecord, error) {
	for i, item := range items {
		var record domain.BookingRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if record.ReferenceNo() == referenceNo {
			return i, &record, nil
		}
	}
	return 0, nil, ErrRecordNotFound
}

func decodeRecords(items []string) ([]domain.BookingRecord, error) {
	records := make([]domain.BookingRecord, 0, len(items))
	for _, item := range items {
		var record domain.BookingRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		records = append(records, record)
	}
	return records, nil
}
