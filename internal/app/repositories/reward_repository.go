package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

var rewardColumns = []string{
	"id", "student_name", "student_department", "student_batch", "achievement",
	"image_url", "awarded_by", "created_at",
}

// RewardFilter narrows reward listings
type RewardFilter struct {
	StudentBatch      *string
	StudentDepartment *string
	AwardedBy         *int64
}

// RewardRepository handles reward database operations
type RewardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanReward(row pgx.Row) (*models.Reward, error) {
	var rw models.Reward
	err := row.Scan(&rw.ID, &rw.StudentName, &rw.StudentDepartment, &rw.StudentBatch,
		&rw.Achievement, &rw.ImageURL, &rw.AwardedBy, &rw.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRewardNotFound
		}
		return nil, fmt.Errorf("error scanning reward row: %w", err)
	}
	return &rw, nil
}

// Create inserts a new reward and returns its ID
func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) (int64, error) {
	sql, args, err := r.sb.Insert("rewards").
		Columns("student_name", "student_department", "student_batch", "achievement", "image_url", "awarded_by").
		Values(reward.StudentName, reward.StudentDepartment, reward.StudentBatch, reward.Achievement, reward.ImageURL, reward.AwardedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create reward query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating reward: %w", err)
	}
	return id, nil
}

// GetByID retrieves a reward by ID
func (r *RewardRepository) GetByID(ctx context.Context, id int64) (*models.Reward, error) {
	sql, args, err := r.sb.Select(rewardColumns...).
		From("rewards").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get reward query: %w", err)
	}
	return scanReward(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves rewards matching a filter, with pagination
func (r *RewardRepository) GetAll(ctx context.Context, filter RewardFilter, page, pageSize int) ([]models.Reward, int64, error) {
	builder := r.sb.Select(append(rewardColumns, "COUNT(*) OVER() AS total_count")...).
		From("rewards")

	if filter.StudentBatch != nil && *filter.StudentBatch != "" {
		builder = builder.Where(squirrel.Eq{"student_batch": *filter.StudentBatch})
	}
	if filter.StudentDepartment != nil && *filter.StudentDepartment != "" {
		builder = builder.Where(squirrel.Eq{"student_department": *filter.StudentDepartment})
	}
	if filter.AwardedBy != nil {
		builder = builder.Where(squirrel.Eq{"awarded_by": *filter.AwardedBy})
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := builder.OrderBy("created_at DESC").
		Limit(uint64(pageSize)).Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list rewards query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing rewards: %w", err)
	}
	defer rows.Close()

	var rewards []models.Reward
	var total int64
	for rows.Next() {
		var rw models.Reward
		err := rows.Scan(&rw.ID, &rw.StudentName, &rw.StudentDepartment, &rw.StudentBatch,
			&rw.Achievement, &rw.ImageURL, &rw.AwardedBy, &rw.CreatedAt,
			&total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning reward row: %w", err)
		}
		rewards = append(rewards, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating reward rows: %w", err)
	}
	return rewards, total, nil
}

// Update modifies an existing reward
func (r *RewardRepository) Update(ctx context.Context, reward *models.Reward) error {
	sql, args, err := r.sb.Update("rewards").
		Set("student_name", reward.StudentName).
		Set("student_department", reward.StudentDepartment).
		Set("student_batch", reward.StudentBatch).
		Set("achievement", reward.Achievement).
		Set("image_url", reward.ImageURL).
		Where(squirrel.Eq{"id": reward.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update reward query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating reward: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRewardNotFound
	}
	return nil
}

// Delete removes a reward
func (r *RewardRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rewards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting reward: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRewardNotFound
	}
	return nil
}

// Exists reports whether a reward with this ID exists
func (r *RewardRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rewards WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking reward existence: %w", err)
	}
	return exists, nil
}

// OwnerID returns the staff member who recorded a reward
func (r *RewardRepository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, `SELECT awarded_by FROM rewards WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrRewardNotFound
		}
		return 0, fmt.Errorf("error getting reward owner: %w", err)
	}
	return ownerID, nil
}

// Search finds rewards whose student name or achievement matches the term
func (r *RewardRepository) Search(ctx context.Context, term string, limit int) ([]models.Reward, error) {
	sql, args, err := r.sb.Select(rewardColumns...).
		From("rewards").
		Where(squirrel.Or{
			squirrel.ILike{"student_name": "%" + term + "%"},
			squirrel.ILike{"achievement": "%" + term + "%"},
		}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reward search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching rewards: %w", err)
	}
	defer rows.Close()

	var rewards []models.Reward
	for rows.Next() {
		var rw models.Reward
		err := rows.Scan(&rw.ID, &rw.StudentName, &rw.StudentDepartment, &rw.StudentBatch,
			&rw.Achievement, &rw.ImageURL, &rw.AwardedBy, &rw.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning reward row: %w", err)
		}
		rewards = append(rewards, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reward rows: %w", err)
	}
	return rewards, nil
}
