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

var photoColumns = []string{
	"id", "title", "description", "image_url", "category_id", "photo_type",
	"uploaded_by", "is_featured", "is_approved", "created_at", "updated_at",
}

// PhotoFilter narrows photo listings. VisibleTo restricts results to
// approved photos plus that user's own uploads; nil means no restriction.
type PhotoFilter struct {
	CategoryID *int64
	PhotoType  *string
	UploadedBy *int64
	Featured   *bool
	Approved   *bool
	VisibleTo  *int64
}

// PhotoRepository handles photo database operations
type PhotoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanPhoto(row pgx.Row) (*models.Photo, error) {
	var p models.Photo
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CategoryID,
		&p.PhotoType, &p.UploadedBy, &p.IsFeatured, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error scanning photo row: %w", err)
	}
	return &p, nil
}

// Create inserts a new photo and returns its ID
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) (int64, error) {
	sql, args, err := r.sb.Insert("photos").
		Columns("title", "description", "image_url", "category_id", "photo_type", "uploaded_by", "is_approved").
		Values(photo.Title, photo.Description, photo.ImageURL, photo.CategoryID, photo.PhotoType, photo.UploadedBy, photo.IsApproved).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create photo query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("error creating photo: %w", err)
	}
	return id, nil
}

// GetByID retrieves a photo by ID
func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	sql, args, err := r.sb.Select(photoColumns...).
		From("photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get photo query: %w", err)
	}
	return scanPhoto(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves photos matching a filter, with pagination
func (r *PhotoRepository) GetAll(ctx context.Context, filter PhotoFilter, page, pageSize int) ([]models.Photo, int64, error) {
	builder := r.sb.Select(append(photoColumns, "COUNT(*) OVER() AS total_count")...).
		From("photos")

	if filter.CategoryID != nil {
		builder = builder.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}
	if filter.PhotoType != nil && *filter.PhotoType != "" {
		builder = builder.Where(squirrel.Eq{"photo_type": *filter.PhotoType})
	}
	if filter.UploadedBy != nil {
		builder = builder.Where(squirrel.Eq{"uploaded_by": *filter.UploadedBy})
	}
	if filter.Featured != nil {
		builder = builder.Where(squirrel.Eq{"is_featured": *filter.Featured})
	}
	if filter.Approved != nil {
		builder = builder.Where(squirrel.Eq{"is_approved": *filter.Approved})
	}
	if filter.VisibleTo != nil {
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"is_approved": true},
			squirrel.Eq{"uploaded_by": *filter.VisibleTo},
		})
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := builder.OrderBy("created_at DESC").
		Limit(uint64(pageSize)).Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list photos query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing photos: %w", err)
	}
	defer rows.Close()

	return collectPhotosWithTotal(rows)
}

func collectPhotosWithTotal(rows pgx.Rows) ([]models.Photo, int64, error) {
	var photos []models.Photo
	var total int64
	for rows.Next() {
		var p models.Photo
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CategoryID,
			&p.PhotoType, &p.UploadedBy, &p.IsFeatured, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt,
			&total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning photo row: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating photo rows: %w", err)
	}
	return photos, total, nil
}

// Update modifies an existing photo's metadata
func (r *PhotoRepository) Update(ctx context.Context, photo *models.Photo) error {
	sql, args, err := r.sb.Update("photos").
		Set("title", photo.Title).
		Set("description", photo.Description).
		Set("category_id", photo.CategoryID).
		Set("photo_type", photo.PhotoType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": photo.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update photo query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("error updating photo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}
	return nil
}

// SetApproved flips the moderation flag on a photo
func (r *PhotoRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE photos SET is_approved = $1, updated_at = NOW() WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("error updating photo approval: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}
	return nil
}

// Delete removes a photo
func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting photo: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPhotoNotFound
	}
	return nil
}

// Exists reports whether a photo with this ID exists
func (r *PhotoRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM photos WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking photo existence: %w", err)
	}
	return exists, nil
}

// OwnerID returns the uploader of a photo
func (r *PhotoRepository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, `SELECT uploaded_by FROM photos WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrPhotoNotFound
		}
		return 0, fmt.Errorf("error getting photo owner: %w", err)
	}
	return ownerID, nil
}

// Search finds approved photos whose title or description matches the term,
// optionally limited to a category by name
func (r *PhotoRepository) Search(ctx context.Context, term, categoryName string, limit int) ([]models.Photo, error) {
	cols := make([]string, len(photoColumns))
	for i, c := range photoColumns {
		cols[i] = "p." + c
	}
	builder := r.sb.Select(cols...).
		From("photos p").
		Where(squirrel.Eq{"p.is_approved": true}).
		Where(squirrel.Or{
			squirrel.ILike{"p.title": "%" + term + "%"},
			squirrel.ILike{"p.description": "%" + term + "%"},
		})
	if categoryName != "" {
		builder = builder.
			Join("categories c ON c.id = p.category_id").
			Where(squirrel.ILike{"c.name": categoryName})
	}

	sql, args, err := builder.OrderBy("p.created_at DESC").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build photo search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.CategoryID,
			&p.PhotoType, &p.UploadedBy, &p.IsFeatured, &p.IsApproved, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning photo row: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}
	return photos, nil
}
