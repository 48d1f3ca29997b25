package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/geometry"
	"gorm.io/gorm"
)

type FieldService struct {
	Repos *repository.Repos
}

func NewFieldService(repos *repository.Repos) *FieldService {
	return &FieldService{
		Repos: repos,
	}
}

func (s *FieldService) Create(ownerID uint, input field.CreateFieldDTO) (*field.SignatureField, error) {
	doc, err := ownedDocument(s.Repos, input.DocumentID, ownerID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	ftype := field.Type(input.Type)
	if !ftype.Valid() {
		return nil, fmt.Errorf("%w: unknown field type %q", ErrInvalidInput, input.Type)
	}
	if input.Page > doc.PageCount {
		return nil, fmt.Errorf("%w: page %d beyond document page count %d", ErrInvalidInput, input.Page, doc.PageCount)
	}

	rect := geometry.Rect{X: input.X, Y: input.Y, W: input.W, H: input.H}
	if input.Scale != nil {
		rect, err = geometry.ToDocumentSpace(rect, *input.Scale)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	required := ftype == field.TypeSignature
	if input.Required != nil {
		required = *input.Required
	}
	status := field.StatusOptional
	if required {
		status = field.StatusPending
	}

	f := field.SignatureField{
		DocumentID: input.DocumentID,
		Page:       input.Page,
		X:          rect.X,
		Y:          rect.Y,
		W:          rect.W,
		H:          rect.H,
		Type:       ftype,
		Status:     status,
		Required:   required,
	}
	if input.Label != nil {
		f.Label = *input.Label
	}
	if input.Placeholder != nil {
		f.Placeholder = *input.Placeholder
	}
	if input.AssignedTo != nil {
		f.AssignedTo = strings.ToLower(*input.AssignedTo)
	}

	if err := s.Repos.Field.CreateField(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FieldService) Update(id, ownerID uint, input field.UpdateFieldDTO) (*field.SignatureField, error) {
	f, doc, err := s.ownedField(id, ownerID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	if input.Page != nil {
		if *input.Page < 1 || *input.Page > doc.PageCount {
			return nil, fmt.Errorf("%w: page %d beyond document page count %d", ErrInvalidInput, *input.Page, doc.PageCount)
		}
		f.Page = *input.Page
	}

	rect := geometry.Rect{X: f.X, Y: f.Y, W: f.W, H: f.H}
	if input.X != nil {
		rect.X = *input.X
	}
	if input.Y != nil {
		rect.Y = *input.Y
	}
	if input.W != nil {
		rect.W = *input.W
	}
	if input.H != nil {
		rect.H = *input.H
	}
	if input.Scale != nil {
		rect, err = geometry.ToDocumentSpace(rect, *input.Scale)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if rect.W <= 0 || rect.H <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive", ErrInvalidInput)
	}
	f.X, f.Y, f.W, f.H = rect.X, rect.Y, rect.W, rect.H

	if input.Label != nil {
		f.Label = *input.Label
	}
	if input.Placeholder != nil {
		f.Placeholder = *input.Placeholder
	}
	if input.AssignedTo != nil {
		f.AssignedTo = strings.ToLower(*input.AssignedTo)
	}
	if input.Required != nil {
		f.Required = *input.Required
		if !f.Filled() {
			if f.Required {
				f.Status = field.StatusPending
			} else {
				f.Status = field.StatusOptional
			}
		}
	}

	if err := s.Repos.Field.UpdateField(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a field and detaches any Signature rows referencing it. The
// Signature rows themselves survive as audit records.
func (s *FieldService) Delete(id, ownerID uint) error {
	f, doc, err := s.ownedField(id, ownerID)
	if err != nil {
		return err
	}
	if doc.Terminal() {
		return fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Signature.ClearFieldLink(f.ID); err != nil {
			return err
		}
		return tx.Field.DeleteField(f.ID)
	})
}

func (s *FieldService) ListByDocument(documentID, ownerID uint) ([]field.SignatureField, error) {
	if _, err := ownedDocument(s.Repos, documentID, ownerID); err != nil {
		return nil, err
	}
	return s.Repos.Field.ListFieldsByDocumentID(documentID)
}

// Fill writes a value into one field on behalf of an authenticated user. The
// token flow has its own path in SigningService; this one serves owners and
// registered recipients filling fields directly.
func (s *FieldService) Fill(id, actorID uint, actorEmail string, input field.FillFieldDTO) (*field.SignatureField, error) {
	f, err := s.Repos.Field.GetFieldByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	doc, err := s.Repos.Document.GetDocumentByID(f.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}
	if f.AssignedTo != "" && !strings.EqualFold(f.AssignedTo, actorEmail) && doc.OwnerID != actorID {
		return nil, ErrForbidden
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		f.Value = &input.Value
		f.Status = field.StatusCompleted
		if err := tx.Field.UpdateField(f); err != nil {
			return err
		}

		if f.Type.SignatureKind() {
			payload := input.Value
			if input.SignatureData != nil {
				payload = *input.SignatureData
			}
			sig := field.Signature{
				DocumentID: f.DocumentID,
				UserID:     actorID,
				Email:      strings.ToLower(actorEmail),
				FieldID:    &f.ID,
				Page:       f.Page,
				X:          f.X,
				Y:          f.Y,
				W:          f.W,
				H:          f.H,
				Type:       f.Type,
				Payload:    []byte(payload),
				Status:     "signed",
				SignedAt:   time.Now(),
			}
			if err := tx.Signature.UpsertSignature(&sig); err != nil {
				return err
			}
		}

		// First fill on a pending round marks visible progress.
		_, err := tx.Document.TransitionStatus(f.DocumentID,
			[]document.Status{document.StatusPending}, document.StatusPartiallySigned)
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFromTemplate bulk-creates fields from a validated template. All rows
// land or none do.
func (s *FieldService) CreateFromTemplate(documentID, ownerID uint, specs []field.TemplateFieldSpec) ([]field.SignatureField, error) {
	doc, err := ownedDocument(s.Repos, documentID, ownerID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	rows := make([]*field.SignatureField, 0, len(specs))
	for i, spec := range specs {
		ftype := field.Type(spec.Type)
		if !ftype.Valid() {
			return nil, fmt.Errorf("%w: field %d: unknown type %q", ErrInvalidInput, i, spec.Type)
		}
		if spec.Page < 1 || spec.Page > doc.PageCount {
			return nil, fmt.Errorf("%w: field %d: page %d beyond document page count %d", ErrInvalidInput, i, spec.Page, doc.PageCount)
		}
		if spec.W <= 0 || spec.H <= 0 {
			return nil, fmt.Errorf("%w: field %d: width and height must be positive", ErrInvalidInput, i)
		}
		status := field.StatusOptional
		if spec.Required {
			status = field.StatusPending
		}
		rows = append(rows, &field.SignatureField{
			DocumentID:  documentID,
			Page:        spec.Page,
			X:           spec.X,
			Y:           spec.Y,
			W:           spec.W,
			H:           spec.H,
			Type:        ftype,
			Label:       spec.Label,
			Placeholder: spec.Placeholder,
			Status:      status,
			Required:    spec.Required,
			AssignedTo:  strings.ToLower(spec.AssignedTo),
		})
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		return tx.Field.CreateFields(rows)
	})
	if err != nil {
		return nil, err
	}

	out := make([]field.SignatureField, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out, nil
}

// LinkAcrossPages clones a field onto the given pages, e.g. initials wanted on
// every page. Clones carry LinkedFieldID so they render and fill as one group.
func (s *FieldService) LinkAcrossPages(id, ownerID uint, targetPages []int) ([]field.SignatureField, error) {
	src, doc, err := s.ownedField(id, ownerID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	seen := map[int]bool{src.Page: true}
	rows := make([]*field.SignatureField, 0, len(targetPages))
	for _, page := range targetPages {
		if page < 1 || page > doc.PageCount {
			return nil, fmt.Errorf("%w: page %d beyond document page count %d", ErrInvalidInput, page, doc.PageCount)
		}
		if seen[page] {
			continue
		}
		seen[page] = true

		clone := *src
		clone.ID = 0
		clone.Page = page
		clone.Value = nil
		clone.LinkedFieldID = &src.ID
		if clone.Required {
			clone.Status = field.StatusPending
		} else {
			clone.Status = field.StatusOptional
		}
		rows = append(rows, &clone)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no new pages to link", ErrInvalidInput)
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		return tx.Field.CreateFields(rows)
	})
	if err != nil {
		return nil, err
	}

	out := make([]field.SignatureField, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out, nil
}

func (s *FieldService) ownedField(id, ownerID uint) (*field.SignatureField, document.Document, error) {
	f, err := s.Repos.Field.GetFieldByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, document.Document{}, ErrFieldNotFound
		}
		return nil, document.Document{}, err
	}
	doc, err := ownedDocument(s.Repos, f.DocumentID, ownerID)
	if err != nil {
		return nil, document.Document{}, err
	}
	return f, doc, nil
}
