package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourGateway/pkg/psqlbuilder"
)

const (
	recordsTable = "booking_records"
	linesTable   = "booking_record_lines"
)

var recordColumns = []string{
	"id",
	"agent_id",
	"reference_no",
	"ticket_url",
	"tour_name",
	"tour_date",
	"start_time",
	"unique_no",
	"booked_at",
}

var lineColumns = []string{
	"record_id",
	"booking_id",
	"confirmation_no",
	"status",
	"service_unique_id",
	"service_type",
	"download_required",
	"ticket_url",
}

// Repository хранилище истории бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
	tx TxManager
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, tx TxManager) *Repository {
	return &Repository{db: db, tx: tx}
}

// Append сохраняет запись со строками в одной транзакции.
// Порядок выдачи (новые первыми) обеспечивается сортировкой по id.
func (r *Repository) Append(ctx context.Context, agentID string, record domain.BookingRecord) error {
	err := r.tx.Do(ctx, func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, r.db)

		query, args, err := psqlbuilder.Insert(recordsTable).
			Columns(recordColumns[1:]...).
			Values(
				agentID,
				record.Result.ReferenceNo,
				record.Result.TicketURL,
				record.TourName,
				record.TourDate,
				record.StartTime,
				record.UniqueNo,
				record.BookedAt,
			).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: Append - build insert record query: %v", ErrBuildQuery, err)
		}

		var recordID int64
		if err := executor.QueryRowContext(ctx, query, args...).Scan(&recordID); err != nil {
			return fmt.Errorf("%w: Append - insert record: %v", ErrExecQuery, err)
		}

		if len(record.Result.Details) == 0 {
			return nil
		}

		insert := psqlbuilder.Insert(linesTable).Columns(append(lineColumns, "position")...)
		for i, line := range record.Result.Details {
			insert = insert.Values(
				recordID,
				line.BookingID,
				line.ConfirmationNo,
				line.Status,
				line.ServiceUniqueID,
				line.ServiceType,
				line.DownloadRequired,
				line.TicketURL,
				i,
			)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Append - build insert lines query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Append - insert lines: %v", ErrExecQuery, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransaction, err)
	}
	return nil
}

// List возвращает историю агента, новые записи первыми
func (r *Repository) List(ctx context.Context, agentID string) ([]domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From(recordsTable).
		Where(squirrel.Eq{"agent_id": agentID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	records, ids, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	if err := r.attachLines(ctx, executor, records, ids); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByReference возвращает самую свежую запись агента с данным номером брони
func (r *Repository) GetByReference(ctx context.Context, agentID, referenceNo string) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recordColumns...).
		From(recordsTable).
		Where(squirrel.Eq{"agent_id": agentID, "reference_no": referenceNo}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReference - execute query: %v", ErrExecQuery, err)
	}
	records, ids, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}

	if err := r.attachLines(ctx, executor, records, ids); err != nil {
		return nil, err
	}
	return &records[0], nil
}

// CancelLine переводит строку в статус Cancelled одним UPDATE.
// Меняется только самая свежая запись с данным номером брони, остальные поля не меняются.
func (r *Repository) CancelLine(ctx context.Context, agentID, referenceNo string, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(linesTable).
		Set("status", string(domain.LineStatusCancelled)).
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.NotEq{"status": string(domain.LineStatusCancelled)}).
		Where(squirrel.Expr(
			"record_id = (SELECT id FROM "+recordsTable+" WHERE agent_id = ? AND reference_no = ? ORDER BY id DESC LIMIT 1)",
			agentID, referenceNo,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CancelLine - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelLine - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelLine - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrLineNotCancellable
	}

	return nil
}

// attachLines загружает строки одним запросом и раскладывает их по записям
func (r *Repository) attachLines(ctx context.Context, executor DBExecutor, records []domain.BookingRecord, ids []int64) error {
	query, args, err := psqlbuilder.Select(lineColumns...).
		From(linesTable).
		Where(squirrel.Eq{"record_id": ids}).
		OrderBy("record_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	position := make(map[int64]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	for rows.Next() {
		var (
			recordID  int64
			line      domain.BookingLine
			ticketURL sql.NullString
		)
		err := rows.Scan(
			&recordID,
			&line.BookingID,
			&line.ConfirmationNo,
			&line.Status,
			&line.ServiceUniqueID,
			&line.ServiceType,
			&line.DownloadRequired,
			&ticketURL,
		)
		if err != nil {
			return fmt.Errorf("%w: attachLines - scan row: %v", ErrScanRow, err)
		}
		line.TicketURL = ticketURL.String

		i, ok := position[recordID]
		if !ok {
			continue
		}
		records[i].Result.Details = append(records[i].Result.Details, line)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachLines - rows error: %v", ErrScanRow, err)
	}
	return nil
}

// scanRecords сканирует записи и возвращает их id в том же порядке
func scanRecords(rows *sql.Rows) ([]domain.BookingRecord, []int64, error) {
	defer rows.Close()

	records := make([]domain.BookingRecord, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var (
			id        int64
			record    domain.BookingRecord
			ticketURL sql.NullString
		)
		err := rows.Scan(
			&id,
			&record.AgentID,
			&record.Result.ReferenceNo,
			&ticketURL,
			&record.TourName,
			&record.TourDate,
			&record.StartTime,
			&record.UniqueNo,
			&record.BookedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}
		record.Result.TicketURL = ticketURL.String
		record.Result.Details = make([]domain.BookingLine, 0)

		records = append(records, record)
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}
	return records, ids, nil
}
