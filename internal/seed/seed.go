package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushub/backend/internal/app/models"
	appRepos "github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	pkgAuth "github.com/campushub/backend/internal/pkg/auth"
)

// defaultCategories are created on first startup so photo uploads have
// somewhere to land before any representative sets up their own.
var defaultCategories = []appModels.Category{
	{Name: "Campus Life", Description: "Everyday moments around campus"},
	{Name: "Events", Description: "Seminars, festivals and ceremonies"},
	{Name: "Graduation", Description: "Graduation season photos", BatchSpecific: false},
}

// CreateDefaultData seeds the admin account and the default photo categories.
// Errors are collected rather than aborting so a partially seeded database
// still starts.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminEmail, adminPassword string, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	categoryRepo := appRepos.NewCategoryRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	adminID := int64(0)
	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := pkgAuth.HashPassword(adminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:      adminEmail,
				Password:   hashedPassword,
				FirstName:  "System",
				LastName:   "Administrator",
				RoleType:   appModels.RoleAdmin,
				IsVerified: true,
			}

			adminID, err = userRepo.CreateUser(ctx, admin)
			if err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
			}
		}
	} else {
		admin, errGet := userRepo.GetUserByEmail(ctx, adminEmail)
		if errGet != nil {
			lgr.Error().Err(errGet).Msg("Error loading existing admin user")
			finalErr = errors.Join(finalErr, errGet)
		} else {
			adminID = admin.ID
		}
	}

	// --- Default categories --- //
	if adminID > 0 {
		for _, category := range defaultCategories {
			category.CreatedBy = adminID
			_, err := categoryRepo.Create(ctx, &category)
			if err != nil && !errors.Is(err, apperrors.ErrCategoryAlreadyExists) {
				lgr.Error().Err(err).Str("category", category.Name).Msg("Error creating default category")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
