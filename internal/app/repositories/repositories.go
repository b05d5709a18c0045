package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	TokenRepository          *TokenRepository
	CategoryRepository       *CategoryRepository
	PhotoRepository          *PhotoRepository
	RewardRepository         *RewardRepository
	DocumentRepository       *DocumentRepository
	ReactionRepository       *ReactionRepository
	RepresentativeRepository *RepresentativeRepository
	FeaturedPhotoRepository  *FeaturedPhotoRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		TokenRepository:          NewTokenRepository(db),
		CategoryRepository:       NewCategoryRepository(db),
		PhotoRepository:          NewPhotoRepository(db),
		RewardRepository:         NewRewardRepository(db),
		DocumentRepository:       NewDocumentRepository(db),
		ReactionRepository:       NewReactionRepository(db),
		RepresentativeRepository: NewRepresentativeRepository(db),
		FeaturedPhotoRepository:  NewFeaturedPhotoRepository(db),
	}
}
