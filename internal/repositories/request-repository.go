package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/entities"
	"sales-request-system/pkg/constants"
	apperrors "sales-request-system/pkg/errors"
)

type RequestRepositoryInterface interface {
	GetAll(ctx context.Context, filter dto.RequestFilter) ([]entities.Request, error)
	FindByID(ctx context.Context, id uint64) (*entities.Request, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error)
	Create(ctx context.Context, req *entities.Request) (uint64, error)
	UpdateInTx(ctx context.Context, tx pgx.Tx, req *entities.Request) error
	Delete(ctx context.Context, id uint64) error

	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountClosedSince(ctx context.Context, since time.Time) (int, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	CountCompletedBetween(ctx context.Context, from, to time.Time) (int, error)
	CountInProgress(ctx context.Context) (int, error)
	FetchWithTargets(ctx context.Context) ([]entities.Request, error)
	FetchWorkingSet(ctx context.Context, from, to time.Time) ([]entities.Request, error)
	FetchCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Request, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const requestColumns = `id, custom_id, customer_name, description, project_type, service_type,
	status, boq_cost, requester_name, department, date_request_received, target_days,
	sent_out_date, duration_days, team_member_involved, comment, created_at, updated_at`

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var r entities.Request
	err := row.Scan(
		&r.ID, &r.CustomID, &r.CustomerName, &r.Description, &r.ProjectType, &r.ServiceType,
		&r.Status, &r.BoqCost, &r.RequesterName, &r.Department, &r.DateRequestReceived, &r.TargetDays,
		&r.SentOutDate, &r.DurationDays, &r.TeamMemberInvolved, &r.Comment, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RequestRepository) queryRequests(ctx context.Context, builder sq.SelectBuilder) ([]entities.Request, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build request query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	requests := make([]entities.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request row: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

// GetAll applies the inclusive received-date bounds at the SQL level. The
// overdue filter is a service concern because it needs live durations.
func (r *RequestRepository) GetAll(ctx context.Context, filter dto.RequestFilter) ([]entities.Request, error) {
	builder := psql.Select(requestColumns).From("requests").OrderBy("created_at DESC")

	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"date_request_received": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"date_request_received": *filter.DateTo})
	}

	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint64) (*entities.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE id = $1`, requestColumns)
	req, err := scanRequest(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}
	return req, nil
}

// FindByIDForUpdate locks the row for the remainder of the transaction so a
// compound update cannot lose concurrent writes.
func (r *RequestRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Request, error) {
	query := fmt.Sprintf(`SELECT %s FROM requests WHERE id = $1 FOR UPDATE`, requestColumns)
	req, err := scanRequest(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find request for update: %w", err)
	}
	return req, nil
}

// customIDPrefix builds the per-(month, service) id bucket prefix, e.g.
// "GBB_SDA_0325_CS_".
func customIDPrefix(serviceType string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s_", constants.CustomIDPrefix, now.Format("0106"), constants.ServiceSlug(serviceType))
}

// nextSequence derives the next sequence number from the highest existing id
// in the bucket. An empty or unparsable id starts the bucket at 1.
func nextSequence(lastID string) int {
	if lastID == "" {
		return 1
	}
	parts := strings.Split(lastID, "_")
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 1
	}
	return n + 1
}

// Create inserts the request and assigns its custom id in one transaction.
// An advisory lock on the id prefix serializes concurrent creates in the
// same (month, service) bucket so sequence numbers cannot collide.
func (r *RequestRepository) Create(ctx context.Context, req *entities.Request) (uint64, error) {
	var newID uint64
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		prefix := customIDPrefix(req.ServiceType, time.Now())

		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, prefix); err != nil {
			return fmt.Errorf("failed to take id bucket lock: %w", err)
		}

		var lastID string
		err := tx.QueryRow(ctx,
			`SELECT custom_id FROM requests WHERE custom_id LIKE $1 ORDER BY custom_id DESC LIMIT 1`,
			prefix+"%",
		).Scan(&lastID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to look up last custom id: %w", err)
		}

		req.CustomID = fmt.Sprintf("%s%03d", prefix, nextSequence(lastID))

		return tx.QueryRow(ctx, `
			INSERT INTO requests (
				custom_id, customer_name, description, project_type, service_type, status,
				boq_cost, requester_name, department, date_request_received, target_days,
				duration_days, team_member_involved, comment
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id`,
			req.CustomID, req.CustomerName, req.Description, req.ProjectType, req.ServiceType, req.Status,
			req.BoqCost, req.RequesterName, req.Department, req.DateRequestReceived, req.TargetDays,
			req.DurationDays, req.TeamMemberInvolved, req.Comment,
		).Scan(&newID)
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}

func (r *RequestRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, req *entities.Request) error {
	tag, err := tx.Exec(ctx, `
		UPDATE requests SET
			customer_name = $1, description = $2, project_type = $3, service_type = $4,
			status = $5, boq_cost = $6, requester_name = $7, department = $8,
			date_request_received = $9, target_days = $10, sent_out_date = $11,
			duration_days = $12, team_member_involved = $13, comment = $14,
			updated_at = NOW()
		WHERE id = $15`,
		req.CustomerName, req.Description, req.ProjectType, req.ServiceType,
		req.Status, req.BoqCost, req.RequesterName, req.Department,
		req.DateRequestReceived, req.TargetDays, req.SentOutDate,
		req.DurationDays, req.TeamMemberInvolved, req.Comment,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes the row. Log entries are left in place on purpose.
func (r *RequestRepository) Delete(ctx context.Context, id uint64) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.storage.QueryRow(ctx, `SELECT COUNT(*) FROM requests`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return total, nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.storage.Query(ctx, `SELECT status, COUNT(*) FROM requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *RequestRepository) CountClosedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE status = $1 AND sent_out_date >= $2`,
		constants.StatusClosed, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recently closed requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE created_at::date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count created requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepository) CountCompletedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE status = $1 AND sent_out_date BETWEEN $2 AND $3`,
		constants.StatusClosed, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed requests: %w", err)
	}
	return count, nil
}

func (r *RequestRepository) CountInProgress(ctx context.Context) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx,
		`SELECT COUNT(*) FROM requests WHERE status = $1`,
		constants.StatusInProgress,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count in-progress requests: %w", err)
	}
	return count, nil
}

// FetchWithTargets returns every request with a target set; overdue counting
// recomputes durations on top of this.
func (r *RequestRepository) FetchWithTargets(ctx context.Context) ([]entities.Request, error) {
	builder := psql.Select(requestColumns).From("requests").
		Where(sq.NotEq{"target_days": nil})
	return r.queryRequests(ctx, builder)
}

// FetchWorkingSet returns every non-closed request plus every request closed
// inside [from, to].
func (r *RequestRepository) FetchWorkingSet(ctx context.Context, from, to time.Time) ([]entities.Request, error) {
	builder := psql.Select(requestColumns).From("requests").
		Where(sq.Or{
			sq.NotEq{"status": constants.StatusClosed},
			sq.And{
				sq.GtOrEq{"sent_out_date": from},
				sq.LtOrEq{"sent_out_date": to},
			},
		})
	return r.queryRequests(ctx, builder)
}

func (r *RequestRepository) FetchCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Request, error) {
	builder := psql.Select(requestColumns).From("requests").
		Where(sq.Expr("created_at::date BETWEEN ? AND ?", from, to))
	return r.queryRequests(ctx, builder)
}
