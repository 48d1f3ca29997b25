package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/pdfrender"
)

// FinalizeService renders filled fields into the stored PDF and publishes the
// result as the document's artifact. Renders for the same document are
// serialized with a per-document mutex; different documents finalize freely in
// parallel.
type FinalizeService struct {
	Repos   *repository.Repos
	Storage ObjectStorage

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewFinalizeService(repos *repository.Repos, storage ObjectStorage) *FinalizeService {
	return &FinalizeService{
		Repos:   repos,
		Storage: storage,
		locks:   make(map[uint]*sync.Mutex),
	}
}

func (s *FinalizeService) lockFor(documentID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[documentID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[documentID] = l
	}
	return l
}

// Finalize embeds every filled field and marks the document completed. All
// required fields must be filled first; the error carries the outstanding
// count.
func (s *FinalizeService) Finalize(ctx context.Context, documentID, ownerID uint) (document.Document, int, error) {
	if _, err := ownedDocument(s.Repos, documentID, ownerID); err != nil {
		return document.Document{}, 0, err
	}

	l := s.lockFor(documentID)
	l.Lock()
	defer l.Unlock()

	// Re-read, gate and list in one transaction so the fields rendered are
	// exactly the fields the gate passed on.
	var (
		doc    document.Document
		fields []field.SignatureField
	)
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		doc, err = tx.Document.GetDocumentByID(documentID)
		if err != nil {
			return err
		}
		if doc.Status == document.StatusArchived {
			return fmt.Errorf("%w: document is archived", ErrConflict)
		}
		if doc.Status == document.StatusCompleted && !config.AllowRefinalize {
			return fmt.Errorf("%w: document is already finalized", ErrConflict)
		}

		unfilled, err := tx.Field.CountUnfilledRequired(documentID)
		if err != nil {
			return err
		}
		if unfilled > 0 {
			return &ValidationError{Unfilled: unfilled}
		}

		fields, err = tx.Field.ListFieldsByDocumentID(documentID)
		return err
	})
	if err != nil {
		return document.Document{}, 0, err
	}

	out, embedded, err := s.render(ctx, &doc, fields)
	if err != nil {
		return document.Document{}, 0, err
	}

	artifactPath := fmt.Sprintf("artifacts/%d/signed-%s", doc.ID, doc.Filename)
	if err := s.Storage.Store(ctx, artifactPath, out, "application/pdf"); err != nil {
		return document.Document{}, 0, err
	}
	if err := s.Repos.Document.SetArtifact(doc.ID, artifactPath); err != nil {
		return document.Document{}, 0, err
	}

	doc, err = s.Repos.Document.GetDocumentByID(documentID)
	if err != nil {
		return document.Document{}, 0, err
	}
	return doc, embedded, nil
}

// Preview renders the current fill state without the required-field gate and
// without persisting anything.
func (s *FinalizeService) Preview(ctx context.Context, documentID, ownerID uint) ([]byte, int, error) {
	doc, err := ownedDocument(s.Repos, documentID, ownerID)
	if err != nil {
		return nil, 0, err
	}
	fields, err := s.Repos.Field.ListFieldsByDocumentID(documentID)
	if err != nil {
		return nil, 0, err
	}
	return s.render(ctx, &doc, fields)
}

func (s *FinalizeService) render(ctx context.Context, doc *document.Document, fields []field.SignatureField) ([]byte, int, error) {
	original, err := s.Storage.Fetch(ctx, doc.MinIOPath)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch original: %w", err)
	}

	placements := make([]pdfrender.Placement, 0, len(fields))
	for _, f := range fields {
		if !f.Filled() {
			continue
		}
		placements = append(placements, pdfrender.Placement{
			Page:  f.Page,
			X:     f.X,
			Y:     f.Y,
			W:     f.W,
			H:     f.H,
			Type:  pdfrender.FieldType(f.Type),
			Value: *f.Value,
		})
	}

	return pdfrender.Render(original, placements)
}
