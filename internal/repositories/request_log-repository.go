package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sales-request-system/internal/entities"
)

type RequestLogRepositoryInterface interface {
	Create(ctx context.Context, log *entities.RequestLog) error
	GetByRequestID(ctx context.Context, requestID uint64) ([]entities.RequestLog, error)
	FetchBetween(ctx context.Context, from, to time.Time, limit int) ([]entities.RequestLog, error)
}

type RequestLogRepository struct {
	storage *pgxpool.Pool
}

func NewRequestLogRepository(storage *pgxpool.Pool) RequestLogRepositoryInterface {
	return &RequestLogRepository{storage: storage}
}

// Create appends one log row. Rows are immutable once written.
func (r *RequestLogRepository) Create(ctx context.Context, log *entities.RequestLog) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO request_logs (request_id, user_id, user_name, action, field_name, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.RequestID, log.UserID, log.UserName, log.Action, log.FieldName, log.OldValue, log.NewValue,
	)
	if err != nil {
		return fmt.Errorf("failed to insert request log: %w", err)
	}
	return nil
}

func (r *RequestLogRepository) GetByRequestID(ctx context.Context, requestID uint64) ([]entities.RequestLog, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, request_id, user_id, user_name, action, field_name, old_value, new_value, created_at
		FROM request_logs
		WHERE request_id = $1
		ORDER BY created_at DESC`,
		requestID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query request logs: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.RequestLog, 0)
	for rows.Next() {
		var l entities.RequestLog
		if err := rows.Scan(&l.ID, &l.RequestID, &l.UserID, &l.UserName, &l.Action,
			&l.FieldName, &l.OldValue, &l.NewValue, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan request log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// FetchBetween lists period activities for reports, newest first, joined
// with the request's customer name.
func (r *RequestLogRepository) FetchBetween(ctx context.Context, from, to time.Time, limit int) ([]entities.RequestLog, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT rl.id, rl.request_id, rl.user_id, rl.user_name, rl.action,
		       rl.field_name, rl.old_value, rl.new_value, rl.created_at,
		       COALESCE(r.customer_name, '')
		FROM request_logs rl
		LEFT JOIN requests r ON rl.request_id = r.id
		WHERE rl.created_at::date BETWEEN $1 AND $2
		ORDER BY rl.created_at DESC
		LIMIT $3`,
		from, to, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query period logs: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.RequestLog, 0)
	for rows.Next() {
		var l entities.RequestLog
		if err := rows.Scan(&l.ID, &l.RequestID, &l.UserID, &l.UserName, &l.Action,
			&l.FieldName, &l.OldValue, &l.NewValue, &l.Timestamp, &l.CustomerName); err != nil {
			return nil, fmt.Errorf("failed to scan period log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
