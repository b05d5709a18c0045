package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
	"github.com/campushub/backend/internal/pkg/logger"
)

var representativeColumns = []string{
	"id", "user_id", "request_message", "status", "reviewed_by", "reviewed_at",
	"admin_notes", "created_at",
}

// RepresentativeRepository handles representative role requests
type RepresentativeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRepresentativeRepository creates a new RepresentativeRepository
func NewRepresentativeRepository(db *pgxpool.Pool) *RepresentativeRepository {
	return &RepresentativeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanRepresentativeRequest(row pgx.Row) (*models.RepresentativeRequest, error) {
	var req models.RepresentativeRequest
	err := row.Scan(&req.ID, &req.UserID, &req.RequestMessage, &req.Status, &req.ReviewedBy,
		&req.ReviewedAt, &req.AdminNotes, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error scanning representative request row: %w", err)
	}
	return &req, nil
}

// Create inserts a new representative request. The partial unique index on
// pending requests rejects a second open request from the same user.
func (r *RepresentativeRepository) Create(ctx context.Context, req *models.RepresentativeRequest) (int64, error) {
	sql, args, err := r.sb.Insert("representative_requests").
		Columns("user_id", "request_message", "status").
		Values(req.UserID, req.RequestMessage, models.RequestPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create representative request query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrRequestAlreadyOpen
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error creating representative request: %w", err)
	}
	return id, nil
}

// GetByID retrieves a representative request by ID
func (r *RepresentativeRepository) GetByID(ctx context.Context, id int64) (*models.RepresentativeRequest, error) {
	sql, args, err := r.sb.Select(representativeColumns...).
		From("representative_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get representative request query: %w", err)
	}
	return scanRepresentativeRequest(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves representative requests, optionally filtered by status
// and by applicant
func (r *RepresentativeRepository) GetAll(ctx context.Context, userID *int64, status *string, page, pageSize int) ([]models.RepresentativeRequest, int64, error) {
	builder := r.sb.Select(append(representativeColumns, "COUNT(*) OVER() AS total_count")...).
		From("representative_requests")
	if userID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *userID})
	}
	if status != nil && *status != "" {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := builder.OrderBy("created_at DESC").
		Limit(uint64(pageSize)).Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list representative requests query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing representative requests: %w", err)
	}
	defer rows.Close()

	var requests []models.RepresentativeRequest
	var total int64
	for rows.Next() {
		var req models.RepresentativeRequest
		err := rows.Scan(&req.ID, &req.UserID, &req.RequestMessage, &req.Status, &req.ReviewedBy,
			&req.ReviewedAt, &req.AdminNotes, &req.CreatedAt,
			&total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning representative request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating representative request rows: %w", err)
	}
	return requests, total, nil
}

// Approve closes a pending request and grants the representative role in
// a single transaction. Both rows change or neither does.
func (r *RepresentativeRepository) Approve(ctx context.Context, requestID, reviewerID int64, notes string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error().Err(rbErr).Msg("Error rolling back approval transaction")
		}
	}()

	var userID int64
	err = tx.QueryRow(ctx, `
		UPDATE representative_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, admin_notes = $4
		WHERE id = $5 AND status = $6
		RETURNING user_id`,
		models.RequestApproved, reviewerID, time.Now(), notes,
		requestID, models.RequestPending).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// missing or already reviewed; tell them apart for the caller
			exists, exErr := r.exists(ctx, requestID)
			if exErr != nil {
				return exErr
			}
			if !exists {
				return apperrors.ErrRequestNotFound
			}
			return apperrors.ErrRequestAlreadyClosed
		}
		return fmt.Errorf("error approving representative request: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET role_type = $1, is_representative = TRUE, updated_at = NOW()
		WHERE id = $2`,
		models.RoleRepresentative, userID)
	if err != nil {
		return fmt.Errorf("error promoting user to representative: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing approval transaction: %w", err)
	}
	return nil
}

// Reject closes a pending request without touching the user's role
func (r *RepresentativeRepository) Reject(ctx context.Context, requestID, reviewerID int64, notes string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE representative_requests
		SET status = $1, reviewed_by = $2, reviewed_at = $3, admin_notes = $4
		WHERE id = $5 AND status = $6`,
		models.RequestRejected, reviewerID, time.Now(), notes,
		requestID, models.RequestPending)
	if err != nil {
		return fmt.Errorf("error rejecting representative request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		exists, exErr := r.exists(ctx, requestID)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.ErrRequestAlreadyClosed
	}
	return nil
}

func (r *RepresentativeRepository) exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM representative_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking representative request existence: %w", err)
	}
	return exists, nil
}
