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
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// ReactionRepository handles likes and comments across all target kinds
type ReactionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *pgxpool.Pool) *ReactionRepository {
	return &ReactionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// InsertLike records a like for a target. Returns false when the user
// had already liked it; the unique index makes concurrent toggles safe.
func (r *ReactionRepository) InsertLike(ctx context.Context, userID int64, target models.Target) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `
		INSERT INTO likes (user_id, target_type, target_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, target_type, target_id) DO NOTHING`,
		userID, target.Kind, target.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrResourceNotFound
		}
		return false, fmt.Errorf("error inserting like: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// DeleteLike removes a like. Returns false when there was nothing to remove.
func (r *ReactionRepository) DeleteLike(ctx context.Context, userID int64, target models.Target) (bool, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND target_type = $2 AND target_id = $3`,
		userID, target.Kind, target.ID)
	if err != nil {
		return false, fmt.Errorf("error deleting like: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// CountLikes returns the number of likes on a target
func (r *ReactionRepository) CountLikes(ctx context.Context, target models.Target) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM likes WHERE target_type = $1 AND target_id = $2`,
		target.Kind, target.ID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting likes: %w", err)
	}
	return count, nil
}

// HasLiked reports whether the user has liked a target
func (r *ReactionRepository) HasLiked(ctx context.Context, userID int64, target models.Target) (bool, error) {
	var liked bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM likes
			WHERE user_id = $1 AND target_type = $2 AND target_id = $3)`,
		userID, target.Kind, target.ID).Scan(&liked)
	if err != nil {
		return false, fmt.Errorf("error checking like existence: %w", err)
	}
	return liked, nil
}

// CreateComment inserts a comment and returns its ID
func (r *ReactionRepository) CreateComment(ctx context.Context, comment *models.Comment) (int64, error) {
	sql, args, err := r.sb.Insert("comments").
		Columns("user_id", "target_type", "target_id", "content").
		Values(comment.UserID, comment.TargetType, comment.TargetID, comment.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create comment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrResourceNotFound
		}
		return 0, fmt.Errorf("error creating comment: %w", err)
	}
	return comment.ID, nil
}

// GetCommentByID retrieves a comment by ID
func (r *ReactionRepository) GetCommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, target_type, target_id, content, created_at, updated_at
		FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.UserID, &c.TargetType, &c.TargetID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error getting comment: %w", err)
	}
	return &c, nil
}

// ListComments retrieves comments on a target, newest first, with pagination
func (r *ReactionRepository) ListComments(ctx context.Context, target models.Target, page, pageSize int) ([]models.Comment, int64, error) {
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, target_type, target_id, content, created_at, updated_at,
		       COUNT(*) OVER() AS total_count
		FROM comments
		WHERE target_type = $1 AND target_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		target.Kind, target.ID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	var total int64
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.UserID, &c.TargetType, &c.TargetID, &c.Content,
			&c.CreatedAt, &c.UpdatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return comments, total, nil
}

// CountComments returns the number of comments on a target
func (r *ReactionRepository) CountComments(ctx context.Context, target models.Target) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE target_type = $1 AND target_id = $2`,
		target.Kind, target.ID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting comments: %w", err)
	}
	return count, nil
}

// UpdateComment changes a comment's content
func (r *ReactionRepository) UpdateComment(ctx context.Context, id int64, content string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE comments SET content = $1, updated_at = NOW() WHERE id = $2`, content, id)
	if err != nil {
		return fmt.Errorf("error updating comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// DeleteComment removes a comment
func (r *ReactionRepository) DeleteComment(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// DeleteReactionsForTarget clears likes and comments attached to a deleted target
func (r *ReactionRepository) DeleteReactionsForTarget(ctx context.Context, target models.Target) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM likes WHERE target_type = $1 AND target_id = $2`,
		target.Kind, target.ID); err != nil {
		return fmt.Errorf("error deleting likes for target: %w", err)
	}
	if _, err := r.db.Exec(ctx,
		`DELETE FROM comments WHERE target_type = $1 AND target_id = $2`,
		target.Kind, target.ID); err != nil {
		return fmt.Errorf("error deleting comments for target: %w", err)
	}
	return nil
}
