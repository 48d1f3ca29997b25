package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/domain/recipient"
	"github.com/quillsign/quillsign/internal/repository"
	"gorm.io/gorm"
)

type RecipientService struct {
	Repos *repository.Repos
}

func NewRecipientService(repos *repository.Repos) *RecipientService {
	return &RecipientService{
		Repos: repos,
	}
}

func (s *RecipientService) Add(documentID, ownerID uint, input recipient.CreateRecipientDTO) (*recipient.DocumentRecipient, error) {
	doc, err := ownedDocument(s.Repos, documentID, ownerID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	role := recipient.RoleSigner
	switch input.Role {
	case "", string(recipient.RoleSigner):
	case string(recipient.RoleWitness):
		role = recipient.RoleWitness
	case string(recipient.RoleReviewer):
		role = recipient.RoleReviewer
	default:
		return nil, fmt.Errorf("%w: unknown recipient role %q", ErrInvalidInput, input.Role)
	}

	if _, err := s.Repos.Recipient.GetByDocumentAndEmail(documentID, input.Email); err == nil {
		return nil, fmt.Errorf("%w: %s is already a recipient", ErrConflict, strings.ToLower(input.Email))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if input.WitnessForID != nil {
		if role != recipient.RoleWitness {
			return nil, fmt.Errorf("%w: witness_for_id requires the witness role", ErrInvalidInput)
		}
		target, err := s.Repos.Recipient.GetRecipientByID(*input.WitnessForID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: witnessed recipient not found", ErrInvalidInput)
			}
			return nil, err
		}
		if target.DocumentID != documentID {
			return nil, fmt.Errorf("%w: witnessed recipient belongs to another document", ErrInvalidInput)
		}
		if target.Role == recipient.RoleWitness {
			return nil, fmt.Errorf("%w: a witness cannot witness another witness", ErrInvalidInput)
		}
	}

	rec := recipient.DocumentRecipient{
		DocumentID:   documentID,
		Email:        input.Email,
		Name:         input.Name,
		Role:         role,
		Status:       recipient.StatusPending,
		Order:        input.Order,
		WitnessForID: input.WitnessForID,
	}
	if err := s.Repos.Recipient.CreateRecipient(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecipientService) ListByDocument(documentID, ownerID uint) ([]recipient.DocumentRecipient, error) {
	if _, err := ownedDocument(s.Repos, documentID, ownerID); err != nil {
		return nil, err
	}
	return s.Repos.Recipient.ListByDocumentID(documentID)
}

func (s *RecipientService) Remove(id, ownerID uint) error {
	rec, err := s.Repos.Recipient.GetRecipientByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return err
	}
	if _, err := ownedDocument(s.Repos, rec.DocumentID, ownerID); err != nil {
		return err
	}
	return s.Repos.Recipient.DeleteRecipient(id)
}

// Sign records a recipient's decision on a document. The email is the
// credential here: an address that is not on the recipient list gets a
// forbidden, not a lookup failure, exactly like the token flow.
func (s *RecipientService) Sign(documentID uint, input recipient.RecipientSignDTO) (*recipient.DocumentRecipient, error) {
	doc, err := s.Repos.Document.GetDocumentByID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	rec, err := s.Repos.Recipient.GetByDocumentAndEmail(documentID, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if rec.Status != recipient.StatusPending {
		return nil, fmt.Errorf("%w: recipient already %s", ErrConflict, rec.Status)
	}

	// A witness only acts after the party they witness has signed.
	if rec.WitnessForID != nil {
		target, err := s.Repos.Recipient.GetRecipientByID(*rec.WitnessForID)
		if err != nil {
			return nil, err
		}
		if target.Status != recipient.StatusSigned {
			return nil, ErrNotYourTurn
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		now := time.Now()
		if input.Decline {
			rec.Status = recipient.StatusDeclined
			return tx.Recipient.UpdateRecipient(rec)
		}

		usr, err := tx.User.GetOrCreateByEmail(rec.Email, rec.Name)
		if err != nil {
			return err
		}

		all, err := tx.Field.ListFieldsByDocumentID(documentID)
		if err != nil {
			return err
		}
		var first *field.SignatureField
		for i := range all {
			f := &all[i]
			if f.Type.SignatureKind() && !f.Filled() && strings.EqualFold(f.AssignedTo, rec.Email) {
				f.Value = &input.Value
				f.Status = field.StatusCompleted
				if err := tx.Field.UpdateField(f); err != nil {
					return err
				}
				if first == nil {
					first = f
				}
			}
		}

		sig := field.Signature{
			DocumentID: documentID,
			UserID:     usr.ID,
			Email:      rec.Email,
			Type:       field.TypeSignature,
			Payload:    []byte(input.Value),
			Status:     "signed",
			SignedAt:   now,
		}
		if first != nil {
			sig.FieldID = &first.ID
			sig.Page, sig.X, sig.Y, sig.W, sig.H = first.Page, first.X, first.Y, first.W, first.H
			sig.Type = first.Type
		}
		if err := tx.Signature.UpsertSignature(&sig); err != nil {
			return err
		}

		rec.Status = recipient.StatusSigned
		rec.SignedAt = &now
		if err := tx.Recipient.UpdateRecipient(rec); err != nil {
			return err
		}

		// Recompute document progress from the full recipient list: the last
		// signer completes the document, anyone else only marks progress.
		recs, err := tx.Recipient.ListByDocumentID(documentID)
		if err != nil {
			return err
		}
		if recipient.SignersComplete(recs) {
			_, err = tx.Document.TransitionStatus(documentID,
				[]document.Status{document.StatusPending, document.StatusPartiallySigned},
				document.StatusCompleted)
			return err
		}
		_, err = tx.Document.TransitionStatus(documentID,
			[]document.Status{document.StatusPending}, document.StatusPartiallySigned)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
