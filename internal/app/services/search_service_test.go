package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
)

type fakePhotoSearcher struct {
	term     string
	category string
	photos   []models.Photo
	err      error
}

func (f *fakePhotoSearcher) Search(_ context.Context, term, categoryName string, _ int) ([]models.Photo, error) {
	f.term = term
	f.category = categoryName
	return f.photos, f.err
}

type fakeRewardSearcher struct {
	term    string
	rewards []models.Reward
	err     error
}

func (f *fakeRewardSearcher) Search(_ context.Context, term string, _ int) ([]models.Reward, error) {
	f.term = term
	return f.rewards, f.err
}

type fakeDocumentSearcher struct {
	term      string
	docType   string
	documents []models.Document
	err       error
}

func (f *fakeDocumentSearcher) Search(_ context.Context, term, documentType string, _ int) ([]models.Document, error) {
	f.term = term
	f.docType = documentType
	return f.documents, f.err
}

func TestSearchFansOutAcrossKinds(t *testing.T) {
	photos := &fakePhotoSearcher{photos: []models.Photo{{ID: 1, Title: "graduation day"}}}
	rewards := &fakeRewardSearcher{rewards: []models.Reward{{ID: 2, StudentName: "Hana"}}}
	documents := &fakeDocumentSearcher{documents: []models.Document{{ID: 3, Title: "exit exam notes"}}}

	svc := NewSearchService(photos, rewards, documents)
	result, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "  graduation "})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Photos) != 1 || len(result.Rewards) != 1 || len(result.Documents) != 1 {
		t.Fatalf("expected one match per kind, got %d/%d/%d",
			len(result.Photos), len(result.Rewards), len(result.Documents))
	}
	if photos.term != "graduation" || rewards.term != "graduation" || documents.term != "graduation" {
		t.Fatal("query should be trimmed before searching")
	}
}

func TestSearchEmptyQueryReturnsEmptyResult(t *testing.T) {
	photos := &fakePhotoSearcher{photos: []models.Photo{{ID: 1}}}
	svc := NewSearchService(photos, &fakeRewardSearcher{}, &fakeDocumentSearcher{})

	result, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "   "})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Photos) != 0 || len(result.Rewards) != 0 || len(result.Documents) != 0 {
		t.Fatal("blank query without category must return nothing")
	}
	if photos.term != "" && photos.category != "" {
		t.Fatal("searchers must not run for a blank request")
	}
}

func TestSearchCategoryRoutesToDocumentTypeWhenValid(t *testing.T) {
	documents := &fakeDocumentSearcher{}
	svc := NewSearchService(&fakePhotoSearcher{}, &fakeRewardSearcher{}, documents)

	if _, err := svc.Search(context.Background(), &dto.SearchRequest{
		Query:    "algorithms",
		Category: string(models.DocumentTypeExam),
	}); err != nil {
		t.Fatal(err)
	}
	if documents.docType != string(models.DocumentTypeExam) {
		t.Fatalf("expected document type filter EXAM, got %q", documents.docType)
	}
}

func TestSearchCategoryNameNotAppliedToDocuments(t *testing.T) {
	photos := &fakePhotoSearcher{}
	documents := &fakeDocumentSearcher{}
	svc := NewSearchService(photos, &fakeRewardSearcher{}, documents)

	if _, err := svc.Search(context.Background(), &dto.SearchRequest{
		Query:    "festival",
		Category: "Campus Life",
	}); err != nil {
		t.Fatal(err)
	}
	if photos.category != "Campus Life" {
		t.Fatalf("category name should filter photos, got %q", photos.category)
	}
	if documents.docType != "" {
		t.Fatalf("category name must not become a document type filter, got %q", documents.docType)
	}
}

func TestSearchPropagatesErrors(t *testing.T) {
	wantErr := errors.New("rewards search down")
	svc := NewSearchService(&fakePhotoSearcher{}, &fakeRewardSearcher{err: wantErr}, &fakeDocumentSearcher{})

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "anything"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the searcher error, got %v", err)
	}
}
