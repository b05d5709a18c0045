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

var documentColumns = []string{
	"id", "title", "description", "document_type", "file_url", "uploaded_by",
	"is_approved", "created_at", "updated_at",
}

// DocumentFilter narrows document listings. VisibleTo restricts results to
// approved documents plus that user's own uploads; nil means no restriction.
type DocumentFilter struct {
	DocumentType *string
	UploadedBy   *int64
	Approved     *bool
	VisibleTo    *int64
}

// DocumentRepository handles document database operations
type DocumentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.DocumentType, &d.FileURL,
		&d.UploadedBy, &d.IsApproved, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error scanning document row: %w", err)
	}
	return &d, nil
}

// Create inserts a new document and returns its ID
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (int64, error) {
	sql, args, err := r.sb.Insert("documents").
		Columns("title", "description", "document_type", "file_url", "uploaded_by", "is_approved").
		Values(doc.Title, doc.Description, doc.DocumentType, doc.FileURL, doc.UploadedBy, doc.IsApproved).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create document query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating document: %w", err)
	}
	return id, nil
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.Document, error) {
	sql, args, err := r.sb.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}
	return scanDocument(r.db.QueryRow(ctx, sql, args...))
}

// GetAll retrieves documents matching a filter, with pagination
func (r *DocumentRepository) GetAll(ctx context.Context, filter DocumentFilter, page, pageSize int) ([]models.Document, int64, error) {
	builder := r.sb.Select(append(documentColumns, "COUNT(*) OVER() AS total_count")...).
		From("documents")

	if filter.DocumentType != nil && *filter.DocumentType != "" {
		builder = builder.Where(squirrel.Eq{"document_type": *filter.DocumentType})
	}
	if filter.UploadedBy != nil {
		builder = builder.Where(squirrel.Eq{"uploaded_by": *filter.UploadedBy})
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
		return nil, 0, fmt.Errorf("failed to build list documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	var total int64
	for rows.Next() {
		var d models.Document
		err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.DocumentType, &d.FileURL,
			&d.UploadedBy, &d.IsApproved, &d.CreatedAt, &d.UpdatedAt,
			&total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, total, nil
}

// Update modifies an existing document's metadata
func (r *DocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	sql, args, err := r.sb.Update("documents").
		Set("title", doc.Title).
		Set("description", doc.Description).
		Set("document_type", doc.DocumentType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": doc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update document query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// SetApproved flips the moderation flag on a document
func (r *DocumentRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE documents SET is_approved = $1, updated_at = NOW() WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("error updating document approval: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// Delete removes a document
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// Exists reports whether a document with this ID exists
func (r *DocumentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM documents WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking document existence: %w", err)
	}
	return exists, nil
}

// OwnerID returns the uploader of a document
func (r *DocumentRepository) OwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, `SELECT uploaded_by FROM documents WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrDocumentNotFound
		}
		return 0, fmt.Errorf("error getting document owner: %w", err)
	}
	return ownerID, nil
}

// Search finds approved documents whose title or description matches the
// term, optionally limited to one document type
func (r *DocumentRepository) Search(ctx context.Context, term, documentType string, limit int) ([]models.Document, error) {
	builder := r.sb.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"is_approved": true}).
		Where(squirrel.Or{
			squirrel.ILike{"title": "%" + term + "%"},
			squirrel.ILike{"description": "%" + term + "%"},
		})
	if documentType != "" {
		builder = builder.Where(squirrel.Eq{"document_type": documentType})
	}

	sql, args, err := builder.OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build document search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.DocumentType, &d.FileURL,
			&d.UploadedBy, &d.IsApproved, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return docs, nil
}
