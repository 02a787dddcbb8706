package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TourGateway/internal/config"
	"github.com/m04kA/SMC-TourGateway/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourGateway/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourGateway/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourGateway/pkg/logger"
	"github.com/m04kA/SMC-TourGateway/pkg/txmanager"
)

// bookingStore история бронирований агентов (Redis или PostgreSQL)
type bookingStore interface {
	Append(ctx context.Context, agentID string, record domain.BookingRecord) error
	List(ctx context.Context, agentID string) ([]domain.BookingRecord, error)
	GetByReference(ctx context.Context, agentID, referenceNo string) (*domain.BookingRecord, error)
	CancelLine(ctx context.Context, agentID, referenceNo string, bookingID int64) error
}

// openBookingStore подключается к выбранному хранилищу.
// Возвращаемая функция закрывает соединение.
func openBookingStore(ctx context.Context, cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) (bookingStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if reg != nil {
			dbmetrics.RegisterPoolCollector(db, cfg.Database.DBName, reg)
			log.Info("Database pool metrics registered")
		}

		repo := bookingRepo.NewRepository(db, txmanager.NewTransactionManager(db))
		return repo, func() { _ = db.Close() }, nil

	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d, key=%s)", cfg.Redis.Addr, cfg.Redis.DB, cfg.Storage.Key)

		repo := bookingRepo.NewRedisRepository(client, cfg.Storage.Key)
		return repo, func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
