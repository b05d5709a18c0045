package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// fakeFileStorage records saves and deletes without touching the disk.
type fakeFileStorage struct {
	saves   int
	deleted []string
}

func (s *fakeFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	s.saves++
	return "/uploads/" + subPath + "/" + fileHeader.Filename, nil
}

func (s *fakeFileStorage) DeleteFileByURL(url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

// fakeReactionCleaner records which targets had their reactions purged.
type fakeReactionCleaner struct {
	cleaned []models.Target
}

func (c *fakeReactionCleaner) DeleteReactionsForTarget(_ context.Context, target models.Target) error {
	c.cleaned = append(c.cleaned, target)
	return nil
}

type fakeDocumentStore struct {
	docs   map[int64]models.Document
	nextID int64
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{docs: make(map[int64]models.Document), nextID: 1}
}

func (s *fakeDocumentStore) Create(_ context.Context, doc *models.Document) (int64, error) {
	id := s.nextID
	s.nextID++
	stored := *doc
	stored.ID = id
	s.docs[id] = stored
	return id, nil
}

func (s *fakeDocumentStore) GetByID(_ context.Context, id int64) (*models.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, apperrors.ErrDocumentNotFound
	}
	return &doc, nil
}

func (s *fakeDocumentStore) GetAll(_ context.Context, filter repositories.DocumentFilter, page, pageSize int) ([]models.Document, int64, error) {
	var out []models.Document
	for _, doc := range s.docs {
		if filter.Approved != nil && doc.IsApproved != *filter.Approved {
			continue
		}
		if filter.VisibleTo != nil && !doc.IsApproved && doc.UploadedBy != *filter.VisibleTo {
			continue
		}
		if filter.DocumentType != nil && string(doc.DocumentType) != *filter.DocumentType {
			continue
		}
		if filter.UploadedBy != nil && doc.UploadedBy != *filter.UploadedBy {
			continue
		}
		out = append(out, doc)
	}
	return out, int64(len(out)), nil
}

func (s *fakeDocumentStore) Update(_ context.Context, doc *models.Document) error {
	if _, ok := s.docs[doc.ID]; !ok {
		return apperrors.ErrDocumentNotFound
	}
	s.docs[doc.ID] = *doc
	return nil
}

func (s *fakeDocumentStore) SetApproved(_ context.Context, id int64, approved bool) error {
	doc, ok := s.docs[id]
	if !ok {
		return apperrors.ErrDocumentNotFound
	}
	doc.IsApproved = approved
	s.docs[id] = doc
	return nil
}

func (s *fakeDocumentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.docs[id]; !ok {
		return apperrors.ErrDocumentNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *fakeDocumentStore) OwnerID(_ context.Context, id int64) (int64, error) {
	doc, ok := s.docs[id]
	if !ok {
		return 0, apperrors.ErrDocumentNotFound
	}
	return doc.UploadedBy, nil
}

func newDocumentServiceForTest() (*DocumentService, *fakeDocumentStore, *fakeReactionCleaner, *fakeFileStorage) {
	store := newFakeDocumentStore()
	cleaner := &fakeReactionCleaner{}
	storage := &fakeFileStorage{}
	return NewDocumentService(store, cleaner, storage), store, cleaner, storage
}

func TestUploadPublishesDocumentImmediately(t *testing.T) {
	svc, _, _, _ := newDocumentServiceForTest()
	ctx := context.Background()

	student := &models.User{ID: 7, RoleType: models.RoleStudent}
	req := &dto.CreateDocumentRequest{Title: "Algebra exam 2025", DocumentType: "EXAM"}
	file := &multipart.FileHeader{Filename: "algebra-exam.pdf"}

	doc, err := svc.Upload(ctx, student, req, file)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !doc.IsApproved {
		t.Fatal("expected student document upload to be approved immediately")
	}
	if doc.ID == 0 {
		t.Fatal("expected document to receive an ID")
	}
}

func TestAnonymousListSeesFreshStudentUpload(t *testing.T) {
	svc, _, _, _ := newDocumentServiceForTest()
	ctx := context.Background()

	student := &models.User{ID: 7, RoleType: models.RoleStudent}
	req := &dto.CreateDocumentRequest{Title: "Course notes", DocumentType: "BOOK"}
	if _, err := svc.Upload(ctx, student, req, &multipart.FileHeader{Filename: "notes.pdf"}); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	docs, total, err := svc.List(ctx, nil, &dto.DocumentFilterRequest{}, 1, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(docs) != 1 {
		t.Fatalf("expected the fresh upload in the anonymous listing, got %d docs (total %d)", len(docs), total)
	}
	if docs[0].Title != "Course notes" {
		t.Fatalf("unexpected document in listing: %q", docs[0].Title)
	}
}

func TestUploadRejectsUnknownDocumentExtension(t *testing.T) {
	svc, _, _, storage := newDocumentServiceForTest()
	ctx := context.Background()

	student := &models.User{ID: 7, RoleType: models.RoleStudent}
	req := &dto.CreateDocumentRequest{Title: "Nope", DocumentType: "EXAM"}
	if _, err := svc.Upload(ctx, student, req, &multipart.FileHeader{Filename: "setup.exe"}); err == nil {
		t.Fatal("expected an error for a disallowed extension")
	}
	if storage.saves != 0 {
		t.Fatalf("expected no file saved, got %d", storage.saves)
	}
}

func TestDeleteDocumentCleansUpReactions(t *testing.T) {
	svc, store, cleaner, storage := newDocumentServiceForTest()
	ctx := context.Background()

	id, err := store.Create(ctx, &models.Document{
		Title:        "Old slides",
		DocumentType: models.DocumentTypeExam,
		FileURL:      "/uploads/documents/slides.pdf",
		UploadedBy:   7,
		IsApproved:   true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, id); !errors.Is(err, apperrors.ErrDocumentNotFound) {
		t.Fatalf("expected document gone, got %v", err)
	}
	want := models.Target{Kind: models.TargetDocument, ID: id}
	if len(cleaner.cleaned) != 1 || cleaner.cleaned[0] != want {
		t.Fatalf("expected reactions purged for %+v, got %+v", want, cleaner.cleaned)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "/uploads/documents/slides.pdf" {
		t.Fatalf("expected stored file removed, got %v", storage.deleted)
	}
}
