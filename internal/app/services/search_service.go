package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
)

// SearchResultLimit caps each entity kind in a search response
const SearchResultLimit = 20

// PhotoSearcher finds photos for the cross-entity search
type PhotoSearcher interface {
	Search(ctx context.Context, term, categoryName string, limit int) ([]models.Photo, error)
}

// RewardSearcher finds rewards for the cross-entity search
type RewardSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.Reward, error)
}

// DocumentSearcher finds documents for the cross-entity search
type DocumentSearcher interface {
	Search(ctx context.Context, term, documentType string, limit int) ([]models.Document, error)
}

// SearchResult bundles matches across the three entity kinds
type SearchResult struct {
	Photos    []models.Photo
	Rewards   []models.Reward
	Documents []models.Document
}

// SearchService runs free-text search across photos, rewards and documents
type SearchService struct {
	photos    PhotoSearcher
	rewards   RewardSearcher
	documents DocumentSearcher
}

// NewSearchService creates a new SearchService
func NewSearchService(photos PhotoSearcher, rewards RewardSearcher, documents DocumentSearcher) *SearchService {
	return &SearchService{photos: photos, rewards: rewards, documents: documents}
}

// Search queries the three entity kinds concurrently. An empty query with a
// category still matches, so browsing a whole category works. The category
// narrows photos by category name and documents by document type; rewards
// ignore it.
func (s *SearchService) Search(ctx context.Context, req *dto.SearchRequest) (*SearchResult, error) {
	term := strings.TrimSpace(req.Query)
	category := strings.TrimSpace(req.Category)

	result := &SearchResult{}
	if term == "" && category == "" {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		photos, err := s.photos.Search(gctx, term, category, SearchResultLimit)
		if err != nil {
			return err
		}
		result.Photos = photos
		return nil
	})

	g.Go(func() error {
		rewards, err := s.rewards.Search(gctx, term, SearchResultLimit)
		if err != nil {
			return err
		}
		result.Rewards = rewards
		return nil
	})

	// the category filter only applies to documents when it names a
	// document type
	docType := ""
	if models.ValidDocumentType(models.DocumentType(category)) {
		docType = category
	}

	g.Go(func() error {
		documents, err := s.documents.Search(gctx, term, docType, SearchResultLimit)
		if err != nil {
			return err
		}
		result.Documents = documents
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
