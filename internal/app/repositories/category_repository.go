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

var categoryColumns = []string{
	"id", "name", "description", "batch_specific", "batch", "created_by", "created_at",
}

// CategoryRepository handles category database operations
type CategoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.BatchSpecific, &c.Batch,
		&c.CreatedBy, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error scanning category row: %w", err)
	}
	return &c, nil
}

// Create inserts a new category and returns its ID
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) (int64, error) {
	sql, args, err := r.sb.Insert("categories").
		Columns("name", "description", "batch_specific", "batch", "created_by").
		Values(category.Name, category.Description, category.BatchSpecific, category.Batch, category.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create category query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCategoryAlreadyExists
		}
		return 0, fmt.Errorf("error creating category: %w", err)
	}
	return id, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	sql, args, err := r.sb.Select(categoryColumns...).
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get category query: %w", err)
	}
	return scanCategory(r.db.QueryRow(ctx, sql, args...))
}

// CategoryFilter narrows category listings
type CategoryFilter struct {
	BatchSpecific *bool
	Batch         *string
	Search        *string
}

// GetAll retrieves categories matching a filter, with pagination
func (r *CategoryRepository) GetAll(ctx context.Context, filter CategoryFilter, page, pageSize int) ([]models.Category, int64, error) {
	builder := r.sb.Select(append(categoryColumns, "COUNT(*) OVER() AS total_count")...).
		From("categories")

	if filter.BatchSpecific != nil {
		builder = builder.Where(squirrel.Eq{"batch_specific": *filter.BatchSpecific})
	}
	if filter.Batch != nil && *filter.Batch != "" {
		// batch-specific categories for this batch, plus the shared ones
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"batch_specific": false},
			squirrel.Eq{"batch": *filter.Batch},
		})
	}
	if filter.Search != nil && *filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + *filter.Search + "%"})
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := builder.OrderBy("name ASC").
		Limit(uint64(pageSize)).Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	var total int64
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.BatchSpecific, &c.Batch,
			&c.CreatedBy, &c.CreatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, total, nil
}

// Update modifies an existing category
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	sql, args, err := r.sb.Update("categories").
		Set("name", category.Name).
		Set("description", category.Description).
		Set("batch_specific", category.BatchSpecific).
		Set("batch", category.Batch).
		Where(squirrel.Eq{"id": category.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update category query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("error updating category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error deleting category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// Exists reports whether a category with this ID exists
func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking category existence: %w", err)
	}
	return exists, nil
}
