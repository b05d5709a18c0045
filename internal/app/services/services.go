// Package services contains the business logic layer. Services sit between
// the HTTP controllers and the repositories: controllers parse and validate
// requests, services enforce domain rules, repositories talk to Postgres.
//
// Services that carry non-trivial logic accept small repository interfaces
// so they can be exercised against in-memory fakes.
package services

import (
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/filestorage"
)

// Services bundles every service for dependency wiring
type Services struct {
	Auth           *AuthService
	User           *UserService
	Category       *CategoryService
	Photo          *PhotoService
	Reward         *RewardService
	Document       *DocumentService
	Reaction       *ReactionService
	Featured       *FeaturedService
	Representative *RepresentativeService
	Search         *SearchService
}

// Options carries the tunables services need beyond their repositories
type Options struct {
	FeaturedLikeThreshold int
	FeaturedWindowDays    int
}

// NewServices wires every service against the shared repository set
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage, opts Options) *Services {
	featured := NewFeaturedService(repos.FeaturedPhotoRepository, opts.FeaturedLikeThreshold, opts.FeaturedWindowDays)
	targets := NewTargetRegistry(repos.PhotoRepository, repos.RewardRepository, repos.DocumentRepository)
	reaction := NewReactionService(repos.ReactionRepository, targets, featured)

	return &Services{
		Auth:           NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		User:           NewUserService(repos.UserRepository, storage),
		Category:       NewCategoryService(repos.CategoryRepository),
		Photo:          NewPhotoService(repos.PhotoRepository, repos.CategoryRepository, repos.ReactionRepository, storage),
		Reward:         NewRewardService(repos.RewardRepository, repos.ReactionRepository, storage),
		Document:       NewDocumentService(repos.DocumentRepository, repos.ReactionRepository, storage),
		Reaction:       reaction,
		Featured:       featured,
		Representative: NewRepresentativeService(repos.RepresentativeRepository),
		Search:         NewSearchService(repos.PhotoRepository, repos.RewardRepository, repos.DocumentRepository),
	}
}
