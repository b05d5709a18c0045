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
	"github.com/campushub/backend/internal/pkg/logger"
)

// FeaturedPhotoRepository manages the featured photo lifecycle
type FeaturedPhotoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeaturedPhotoRepository creates a new FeaturedPhotoRepository
func NewFeaturedPhotoRepository(db *pgxpool.Pool) *FeaturedPhotoRepository {
	return &FeaturedPhotoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Promote marks a photo featured if it is approved and has reached the like
// threshold. The WHERE clause re-checks both conditions so concurrent calls
// and already-featured photos fall through harmlessly. Returns true when the
// photo was newly promoted.
func (r *FeaturedPhotoRepository) Promote(ctx context.Context, photoID int64, threshold int) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error().Err(rbErr).Msg("Error rolling back promotion transaction")
		}
	}()

	cmdTag, err := tx.Exec(ctx, `
		UPDATE photos SET is_featured = TRUE, updated_at = NOW()
		WHERE id = $1
		  AND is_approved = TRUE
		  AND is_featured = FALSE
		  AND (SELECT COUNT(*) FROM likes
		       WHERE target_type = $2 AND target_id = $1) >= $3`,
		photoID, models.TargetPhoto, threshold)
	if err != nil {
		return false, fmt.Errorf("error marking photo featured: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO featured_photos (photo_id, featured_from, is_active)
		VALUES ($1, NOW(), TRUE)
		ON CONFLICT (photo_id) DO UPDATE SET
			is_active = TRUE,
			featured_until = NULL,
			featured_from = CASE WHEN featured_photos.is_active
				THEN featured_photos.featured_from ELSE NOW() END`,
		photoID)
	if err != nil {
		return false, fmt.Errorf("error recording featured photo: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("error committing promotion transaction: %w", err)
	}
	return true, nil
}

// EligiblePhotoIDs returns approved, not-yet-featured photos at or past the
// like threshold
func (r *FeaturedPhotoRepository) EligiblePhotoIDs(ctx context.Context, threshold int) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id
		FROM photos p
		JOIN likes l ON l.target_type = $1 AND l.target_id = p.id
		WHERE p.is_approved = TRUE AND p.is_featured = FALSE
		GROUP BY p.id
		HAVING COUNT(*) >= $2`,
		models.TargetPhoto, threshold)
	if err != nil {
		return nil, fmt.Errorf("error finding promotion candidates: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning candidate row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidate rows: %w", err)
	}
	return ids, nil
}

// DemoteStale retires featured entries older than the window and clears the
// flag on their photos. Idempotent; rows already retired are not touched.
// Returns the photo IDs that were demoted.
func (r *FeaturedPhotoRepository) DemoteStale(ctx context.Context, window time.Duration) ([]int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error().Err(rbErr).Msg("Error rolling back demotion transaction")
		}
	}()

	rows, err := tx.Query(ctx, `
		UPDATE featured_photos
		SET is_active = FALSE, featured_until = NOW()
		WHERE is_active = TRUE AND featured_from < NOW() - $1::interval
		RETURNING photo_id`,
		fmt.Sprintf("%d seconds", int64(window.Seconds())))
	if err != nil {
		return nil, fmt.Errorf("error retiring featured entries: %w", err)
	}

	var photoIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning retired entry: %w", err)
		}
		photoIDs = append(photoIDs, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating retired entries: %w", err)
	}
	rows.Close()

	if len(photoIDs) > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE photos SET is_featured = FALSE, updated_at = NOW() WHERE id = ANY($1)`,
			photoIDs)
		if err != nil {
			return nil, fmt.Errorf("error clearing featured flags: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing demotion transaction: %w", err)
	}
	return photoIDs, nil
}

// Retire deactivates one featured entry by its ID and clears the flag on
// its photo. Returns ErrResourceNotFound when no active entry matches.
func (r *FeaturedPhotoRepository) Retire(ctx context.Context, entryID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error().Err(rbErr).Msg("Error rolling back retire transaction")
		}
	}()

	var photoID int64
	err = tx.QueryRow(ctx, `
		UPDATE featured_photos
		SET is_active = FALSE, featured_until = NOW()
		WHERE id = $1 AND is_active = TRUE
		RETURNING photo_id`, entryID).Scan(&photoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error retiring featured entry: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE photos SET is_featured = FALSE, updated_at = NOW() WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("error clearing featured flag: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing retire transaction: %w", err)
	}
	return nil
}

// ListActive returns currently featured photos, most recently promoted first
func (r *FeaturedPhotoRepository) ListActive(ctx context.Context, limit int) ([]models.Photo, []models.FeaturedPhoto, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.title, p.description, p.image_url, p.category_id, p.photo_type,
		       p.uploaded_by, p.is_featured, p.is_approved, p.created_at, p.updated_at,
		       f.id, f.photo_id, f.featured_from, f.featured_until, f.is_active
		FROM featured_photos f
		JOIN photos p ON p.id = f.photo_id
		WHERE f.is_active = TRUE
		ORDER BY f.featured_from DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing featured photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	var entries []models.FeaturedPhoto
	for rows.Next() {
		var p models.Photo
		var f models.FeaturedPhoto
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CategoryID, &p.PhotoType,
			&p.UploadedBy, &p.IsFeatured, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt,
			&f.ID, &f.PhotoID, &f.FeaturedFrom, &f.FeaturedUntil, &f.IsActive)
		if err != nil {
			return nil, nil, fmt.Errorf("error scanning featured photo row: %w", err)
		}
		photos = append(photos, p)
		entries = append(entries, f)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating featured photo rows: %w", err)
	}
	return photos, entries, nil
}
