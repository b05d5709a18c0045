package repositories

import (
	"context"
	"encoding/json"
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

// userColumns are the columns scanned into a models.User
var userColumns = []string{
	"id", "email", "password", "first_name", "last_name", "department",
	"campus", "batch", "role_type", "is_verified", "is_representative",
	"profile_views", "last_login_at", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Department,
		&u.Campus, &u.Batch, &u.RoleType, &u.IsVerified, &u.IsRepresentative,
		&u.ProfileViews, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user and returns its ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password", "first_name", "last_name", "department", "campus", "batch", "role_type", "is_verified", "is_representative").
		Values(user.Email, user.Password, user.FirstName, user.LastName, user.Department, user.Campus, user.Batch, user.RoleType, user.IsVerified, user.IsRepresentative).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// EmailExists reports whether an account with this email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// GetAll retrieves users with optional filters and pagination
func (r *UserRepository) GetAll(ctx context.Context, batch, department, roleType *string, page, pageSize int) ([]models.User, int64, error) {
	builder := r.sb.Select(append(userColumns, "COUNT(*) OVER() AS total_count")...).
		From("users")

	if batch != nil && *batch != "" {
		builder = builder.Where(squirrel.Eq{"batch": *batch})
	}
	if department != nil && *department != "" {
		builder = builder.Where(squirrel.Eq{"department": *department})
	}
	if roleType != nil && *roleType != "" {
		builder = builder.Where(squirrel.Eq{"role_type": *roleType})
	}

	offset := uint64((page - 1) * pageSize)
	sql, args, err := builder.OrderBy("created_at DESC").
		Limit(uint64(pageSize)).Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	var total int64
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Department,
			&u.Campus, &u.Batch, &u.RoleType, &u.IsVerified, &u.IsRepresentative,
			&u.ProfileViews, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, total, nil
}

// UpdateLastLogin records a successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = $1, updated_at = NOW() WHERE id = $2`,
		time.Now(), userID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// SetVerified flips the verification flag on an account
func (r *UserRepository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET is_verified = $1, updated_at = NOW() WHERE id = $2`, verified, userID)
	if err != nil {
		return fmt.Errorf("error updating verification flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes an account
func (r *UserRepository) DeleteUser(ctx context.Context, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// IncrementProfileViews bumps the profile view counter
func (r *UserRepository) IncrementProfileViews(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET profile_views = profile_views + 1 WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error incrementing profile views: %w", err)
	}
	return nil
}

// GetProfileByUserID retrieves the optional profile record for a user.
// Returns nil (no error) when the user has no profile yet.
func (r *UserRepository) GetProfileByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var p models.UserProfile
	var socialLinks []byte
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, bio, profile_photo_url, phone_number, social_links
		 FROM user_profiles WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.UserID, &p.Bio, &p.ProfilePhotoURL, &p.PhoneNumber, &socialLinks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user profile: %w", err)
	}
	if len(socialLinks) > 0 {
		if err := json.Unmarshal(socialLinks, &p.SocialLinks); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Malformed social_links JSON, ignoring")
			p.SocialLinks = nil
		}
	}
	return &p, nil
}

// UpsertProfile creates or updates the user's profile record
func (r *UserRepository) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	socialLinks, err := json.Marshal(profile.SocialLinks)
	if err != nil {
		return fmt.Errorf("error encoding social links: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profiles (user_id, bio, profile_photo_url, phone_number, social_links)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			profile_photo_url = EXCLUDED.profile_photo_url,
			phone_number = EXCLUDED.phone_number,
			social_links = EXCLUDED.social_links`,
		profile.UserID, profile.Bio, profile.ProfilePhotoURL, profile.PhoneNumber, socialLinks)
	if err != nil {
		return fmt.Errorf("error upserting user profile: %w", err)
	}
	return nil
}
