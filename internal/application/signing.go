package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/domain/signing"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/pkg/utils"
	"gorm.io/gorm"
)

type SigningService struct {
	Repos    *repository.Repos
	Notifier Notifier
}

func NewSigningService(repos *repository.Repos, notifier Notifier) *SigningService {
	return &SigningService{
		Repos:    repos,
		Notifier: notifier,
	}
}

func (s *SigningService) CreateRequest(ownerID uint, input signing.CreateRequestDTO) (*signing.SigningRequest, error) {
	doc, err := ownedDocument(s.Repos, input.DocumentID, ownerID)
	if err != nil {
		return nil, err
	}
	if doc.Terminal() {
		return nil, fmt.Errorf("%w: document is %s", ErrConflict, doc.Status)
	}

	order := signing.OrderSequential
	switch input.SigningOrder {
	case "", string(signing.OrderSequential):
	case string(signing.OrderParallel):
		order = signing.OrderParallel
	default:
		return nil, fmt.Errorf("%w: unknown signing order %q", ErrInvalidInput, input.SigningOrder)
	}

	seen := make(map[string]bool, len(input.Signers))
	signers := make([]signing.SignerInfo, 0, len(input.Signers))
	for i, in := range input.Signers {
		email := strings.ToLower(in.Email)
		if seen[email] {
			return nil, fmt.Errorf("%w: duplicate signer %s", ErrInvalidInput, email)
		}
		seen[email] = true
		signers = append(signers, signing.SignerInfo{
			Email:  email,
			Name:   in.Name,
			Role:   in.Role,
			Order:  i,
			Status: signing.SignerPending,
		})
	}

	token, err := utils.GenerateAccessToken()
	if err != nil {
		return nil, err
	}

	days := config.DefaultExpiryDays
	if input.ExpiresInDays != nil && *input.ExpiresInDays > 0 {
		days = *input.ExpiresInDays
	}
	expiresAt := time.Now().AddDate(0, 0, days)

	req := signing.SigningRequest{
		DocumentID: doc.ID,
		Token:      token,
		Order:      order,
		Status:     signing.StatusPending,
		ExpiresAt:  &expiresAt,
		Signers:    signers,
	}
	if input.Subject != nil {
		req.Subject = *input.Subject
	}
	if input.Message != nil {
		req.Message = *input.Message
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Signing.CreateRequest(&req); err != nil {
			return err
		}
		_, err := tx.Document.TransitionStatus(doc.ID,
			[]document.Status{document.StatusDraft}, document.StatusPending)
		return err
	})
	if err != nil {
		return nil, err
	}

	if order == signing.OrderParallel {
		for i := range req.Signers {
			s.Notifier.SignerInvited(&req, &req.Signers[i])
		}
	} else if len(req.Signers) > 0 {
		s.Notifier.SignerInvited(&req, &req.Signers[0])
	}
	return &req, nil
}

// resolveByToken loads a live request by its bearer token. Expiry is enforced
// lazily here: a request past its deadline is marked expired on first touch
// and reported gone.
func (s *SigningService) resolveByToken(token string) (*signing.SigningRequest, error) {
	req, err := s.Repos.Signing.GetRequestByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	switch req.Status {
	case signing.StatusExpired:
		return nil, ErrGone
	case signing.StatusCancelled:
		return nil, fmt.Errorf("%w: signing request was cancelled", ErrConflict)
	}

	if !req.Status.Terminal() && req.Expired(time.Now()) {
		if err := s.Repos.Signing.UpdateRequestStatus(req.ID, signing.StatusExpired); err != nil {
			return nil, err
		}
		return nil, ErrGone
	}
	return req, nil
}

// ViewByToken is the anonymous signer's entry point. With an email it also
// resolves that signer's slot; a valid token with an unknown email is
// forbidden, not hidden, so a mistyped address stays diagnosable.
func (s *SigningService) ViewByToken(token, email string) (*signing.SignerView, error) {
	req, err := s.resolveByToken(token)
	if err != nil {
		return nil, err
	}

	if req.Status == signing.StatusPending {
		if err := s.Repos.Signing.UpdateRequestStatus(req.ID, signing.StatusInProgress); err != nil {
			return nil, err
		}
		req.Status = signing.StatusInProgress
	}

	view := &signing.SignerView{Request: req}
	if doc, err := s.Repos.Document.GetDocumentByID(req.DocumentID); err == nil {
		view.DocumentTitle = doc.Title
	}
	if email != "" {
		signer, idx := req.SignerFor(email)
		if signer == nil {
			return nil, ErrForbidden
		}
		// In a sequential round the token only opens for whoever's turn it is.
		if req.Order == signing.OrderSequential && idx != req.CurrentSignerIndex {
			return nil, ErrForbidden
		}
		view.CurrentSigner = signer
	}
	return view, nil
}

// FieldsForSigner returns the fields the named signer is expected to act on,
// plus the unassigned ones anyone in the round may fill.
func (s *SigningService) FieldsForSigner(token, email string) ([]field.SignatureField, error) {
	req, err := s.resolveByToken(token)
	if err != nil {
		return nil, err
	}
	signer, _ := req.SignerFor(email)
	if signer == nil {
		return nil, ErrForbidden
	}

	all, err := s.Repos.Field.ListFieldsByDocumentID(req.DocumentID)
	if err != nil {
		return nil, err
	}
	out := make([]field.SignatureField, 0, len(all))
	for _, f := range all {
		if f.AssignedTo == "" || strings.EqualFold(f.AssignedTo, email) {
			out = append(out, f)
		}
	}
	return out, nil
}

// SignByToken executes one signer's action: either a rejection or a signature.
// Everything runs in one transaction; the guarded index advance and completion
// update keep concurrent submissions from double-advancing or double-winning.
func (s *SigningService) SignByToken(token string, input signing.SignByTokenDTO) (*signing.SigningRequest, error) {
	if _, err := s.resolveByToken(token); err != nil {
		return nil, err
	}

	var (
		completed bool
		rejected  *signing.SignerInfo
		nextIdx   = -1
		reqID     uint
	)

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		req, err := tx.Signing.GetRequestByTokenForUpdate(token)
		if err != nil {
			return err
		}
		reqID = req.ID
		if req.Status.Terminal() {
			if req.Status == signing.StatusExpired {
				return ErrGone
			}
			return fmt.Errorf("%w: signing request is %s", ErrConflict, req.Status)
		}
		if req.Expired(time.Now()) {
			if err := tx.Signing.UpdateRequestStatus(req.ID, signing.StatusExpired); err != nil {
				return err
			}
			return ErrGone
		}

		signer, idx := req.SignerFor(input.Email)
		if signer == nil {
			return ErrForbidden
		}

		if input.RejectReason != nil {
			if signer.Status != signing.SignerPending {
				return fmt.Errorf("%w: signer already %s", ErrConflict, signer.Status)
			}
			signer.Status = signing.SignerRejected
			signer.RejectReason = *input.RejectReason
			if err := tx.Signing.UpdateSigner(signer); err != nil {
				return err
			}
			// The round stalls on rejection. It stays in progress so the owner
			// can see who balked and decide whether to cancel or re-send.
			rejected = signer
			return nil
		}

		if !req.CanAct(idx) {
			if signer.Status == signing.SignerSigned {
				return fmt.Errorf("%w: signer already signed", ErrConflict)
			}
			if signer.Status == signing.SignerRejected {
				return fmt.Errorf("%w: signer already rejected", ErrConflict)
			}
			return ErrNotYourTurn
		}
		if input.Value == "" {
			return fmt.Errorf("%w: signature value is required", ErrInvalidInput)
		}

		usr, err := tx.User.GetOrCreateByEmail(signer.Email, signer.Name)
		if err != nil {
			return err
		}

		targets, err := s.signerTargets(tx, req, input)
		if err != nil {
			return err
		}
		for _, f := range targets {
			f.Value = &input.Value
			f.Status = field.StatusCompleted
			if err := tx.Field.UpdateField(f); err != nil {
				return err
			}
		}

		sig := field.Signature{
			DocumentID: req.DocumentID,
			UserID:     usr.ID,
			Email:      signer.Email,
			Type:       field.TypeSignature,
			Payload:    []byte(input.Value),
			Status:     "signed",
			SignedAt:   time.Now(),
		}
		if len(targets) > 0 {
			f := targets[0]
			sig.FieldID = &f.ID
			sig.Page, sig.X, sig.Y, sig.W, sig.H = f.Page, f.X, f.Y, f.W, f.H
			sig.Type = f.Type
		} else if input.Position != nil {
			p := input.Position
			sig.Page, sig.X, sig.Y, sig.W, sig.H = p.Page, p.X, p.Y, p.W, p.H
		}
		if err := tx.Signature.UpsertSignature(&sig); err != nil {
			return err
		}

		now := time.Now()
		signer.Status = signing.SignerSigned
		signer.SignedAt = &now
		if err := tx.Signing.UpdateSigner(signer); err != nil {
			return err
		}

		if req.Order == signing.OrderSequential {
			ok, err := tx.Signing.AdvanceSignerIndex(req.ID, idx)
			if err != nil {
				return err
			}
			if ok && idx+1 < len(req.Signers) {
				nextIdx = idx + 1
			}
		}

		if req.AllSigned() {
			snapshot, err := json.Marshal(req.Signers)
			if err != nil {
				return err
			}
			won, err := tx.Signing.MarkCompleted(req.ID, snapshot)
			if err != nil {
				return err
			}
			completed = won
		} else if req.Status == signing.StatusPending {
			// A direct signature without a prior view still moves the round
			// out of pending.
			if err := tx.Signing.UpdateRequestStatus(req.ID, signing.StatusInProgress); err != nil {
				return err
			}
		}

		_, err = tx.Document.TransitionStatus(req.DocumentID,
			[]document.Status{document.StatusPending}, document.StatusPartiallySigned)
		return err
	})
	if err != nil {
		return nil, err
	}

	req, err := s.Repos.Signing.GetRequestByID(reqID)
	if err != nil {
		return nil, err
	}

	switch {
	case rejected != nil:
		s.Notifier.RequestRejected(req, rejected)
	case completed:
		s.Notifier.RequestCompleted(req)
	case nextIdx >= 0 && nextIdx < len(req.Signers):
		s.Notifier.SignerInvited(req, &req.Signers[nextIdx])
	}
	return req, nil
}

// signerTargets picks the fields a signature submission applies to: the one
// named by FieldID, or every unfilled signature-kind field assigned to the
// signer.
func (s *SigningService) signerTargets(tx *repository.Repos, req *signing.SigningRequest, input signing.SignByTokenDTO) ([]*field.SignatureField, error) {
	if input.FieldID != nil {
		f, err := tx.Field.GetFieldByID(*input.FieldID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFieldNotFound
			}
			return nil, err
		}
		if f.DocumentID != req.DocumentID {
			return nil, ErrFieldNotFound
		}
		if f.AssignedTo != "" && !strings.EqualFold(f.AssignedTo, input.Email) {
			return nil, ErrForbidden
		}
		return []*field.SignatureField{f}, nil
	}

	all, err := tx.Field.ListFieldsByDocumentID(req.DocumentID)
	if err != nil {
		return nil, err
	}
	var targets []*field.SignatureField
	for i := range all {
		f := &all[i]
		if f.Type.SignatureKind() && !f.Filled() && strings.EqualFold(f.AssignedTo, input.Email) {
			targets = append(targets, f)
		}
	}
	return targets, nil
}

// Resend re-notifies whoever is still expected to act and stamps the reminder
// time.
func (s *SigningService) Resend(requestID, ownerID uint) (*signing.SigningRequest, error) {
	req, err := s.ownedRequest(requestID, ownerID)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, fmt.Errorf("%w: signing request is %s", ErrConflict, req.Status)
	}

	now := time.Now()
	req.ReminderSentAt = &now
	if err := s.Repos.Signing.UpdateRequest(req); err != nil {
		return nil, err
	}

	for i := range req.Signers {
		if req.Signers[i].Status == signing.SignerPending {
			s.Notifier.SignerReminded(req, &req.Signers[i])
		}
	}
	return req, nil
}

func (s *SigningService) Cancel(requestID, ownerID uint) error {
	req, err := s.ownedRequest(requestID, ownerID)
	if err != nil {
		return err
	}
	if req.Status.Terminal() {
		return fmt.Errorf("%w: signing request is %s", ErrConflict, req.Status)
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Signing.UpdateRequestStatus(req.ID, signing.StatusCancelled); err != nil {
			return err
		}
		// A cancelled round releases a still-pending document back to draft.
		// Partially signed documents keep their progress marker.
		_, err := tx.Document.TransitionStatus(req.DocumentID,
			[]document.Status{document.StatusPending}, document.StatusDraft)
		return err
	})
}

func (s *SigningService) ListByDocument(documentID, ownerID uint) ([]signing.SigningRequest, error) {
	if _, err := ownedDocument(s.Repos, documentID, ownerID); err != nil {
		return nil, err
	}
	return s.Repos.Signing.ListRequestsByDocumentID(documentID)
}

func (s *SigningService) ownedRequest(requestID, ownerID uint) (*signing.SigningRequest, error) {
	req, err := s.Repos.Signing.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if _, err := ownedDocument(s.Repos, req.DocumentID, ownerID); err != nil {
		return nil, err
	}
	return req, nil
}
