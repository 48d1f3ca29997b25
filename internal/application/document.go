package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/pdfrender"
	"gorm.io/gorm"
)

type DocumentService struct {
	Repos   *repository.Repos
	Storage ObjectStorage
}

func NewDocumentService(repos *repository.Repos, storage ObjectStorage) *DocumentService {
	return &DocumentService{
		Repos:   repos,
		Storage: storage,
	}
}

// ownedDocument loads a document and enforces ownership. Not found and not
// yours map to different errors on purpose: owners may learn a document is
// gone, strangers only that it is not theirs.
func ownedDocument(repos *repository.Repos, id, ownerID uint) (document.Document, error) {
	doc, err := repos.Document.GetDocumentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return document.Document{}, ErrDocumentNotFound
		}
		return document.Document{}, err
	}
	if doc.OwnerID != ownerID {
		return document.Document{}, ErrForbidden
	}
	return doc, nil
}

func (s *DocumentService) Upload(ctx context.Context, ownerID uint, title, filename string, data []byte) (document.Document, error) {
	pages, err := pdfrender.PageCount(data)
	if err != nil {
		return document.Document{}, fmt.Errorf("%w: not a readable pdf: %v", ErrInvalidInput, err)
	}

	path := fmt.Sprintf("documents/%d/%s-%s", ownerID, uuid.New().String(), filename)
	if err := s.Storage.Store(ctx, path, data, "application/pdf"); err != nil {
		return document.Document{}, err
	}

	doc := document.Document{
		OwnerID:   ownerID,
		Title:     title,
		Filename:  filename,
		PageCount: pages,
		Status:    document.StatusDraft,
		MinIOPath: path,
	}
	if err := s.Repos.Document.CreateDocument(&doc); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) Get(id, requesterID uint) (document.Document, error) {
	return ownedDocument(s.Repos, id, requesterID)
}

func (s *DocumentService) List(ownerID uint) ([]document.Document, error) {
	return s.Repos.Document.ListDocumentsByOwner(ownerID)
}

func (s *DocumentService) UpdateMeta(id, ownerID uint, input document.UpdateDocumentDTO) (document.Document, error) {
	doc, err := ownedDocument(s.Repos, id, ownerID)
	if err != nil {
		return document.Document{}, err
	}

	if input.Title != nil {
		doc.Title = *input.Title
	}
	if input.Status != nil {
		// The only direct status change an owner may make is archiving;
		// everything else moves through the signing and finalize flows.
		if document.Status(*input.Status) != document.StatusArchived {
			return document.Document{}, fmt.Errorf("%w: only 'archived' may be set directly", ErrInvalidInput)
		}
		doc.Status = document.StatusArchived
	}

	if err := s.Repos.Document.UpdateDocument(&doc); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, id, ownerID uint) error {
	doc, err := ownedDocument(s.Repos, id, ownerID)
	if err != nil {
		return err
	}
	if doc.Status == document.StatusPending || doc.Status == document.StatusPartiallySigned {
		return fmt.Errorf("%w: document has an active signing round", ErrConflict)
	}

	// Blob removal is best effort, the row is the source of truth.
	if err := s.Storage.Remove(ctx, doc.MinIOPath); err != nil {
		log.Printf("[document] remove object %s: %v", doc.MinIOPath, err)
	}
	if doc.ArtifactPath != nil {
		if err := s.Storage.Remove(ctx, *doc.ArtifactPath); err != nil {
			log.Printf("[document] remove artifact %s: %v", *doc.ArtifactPath, err)
		}
	}
	return s.Repos.Document.DeleteDocument(id)
}

// DownloadLink returns a short-lived presigned URL for the original upload,
// or for the finalized artifact when artifact is true.
func (s *DocumentService) DownloadLink(ctx context.Context, id, requesterID uint, artifact bool) (string, error) {
	doc, err := ownedDocument(s.Repos, id, requesterID)
	if err != nil {
		return "", err
	}

	path := doc.MinIOPath
	if artifact {
		if doc.ArtifactPath == nil {
			return "", fmt.Errorf("%w: document has no finalized artifact", ErrConflict)
		}
		path = *doc.ArtifactPath
	}
	return s.Storage.PresignedGet(ctx, path, 15*time.Minute)
}
