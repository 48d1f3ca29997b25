package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/domain/recipient"
	"github.com/quillsign/quillsign/internal/domain/user"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type recipientMocks struct {
	recipient *mock.MockRecipientRepo
	document  *mock.MockDocumentRepo
	field     *mock.MockFieldRepo
	signature *mock.MockSignatureRepo
	user      *mock.MockUserRepo
}

// --------------------- Setup ---------------------
func setupRecipientServiceMocks(t *testing.T) (*RecipientService, *recipientMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &recipientMocks{
		recipient: mock.NewMockRecipientRepo(ctrl),
		document:  mock.NewMockDocumentRepo(ctrl),
		field:     mock.NewMockFieldRepo(ctrl),
		signature: mock.NewMockSignatureRepo(ctrl),
		user:      mock.NewMockUserRepo(ctrl),
	}
	repos := &repository.Repos{
		Recipient: m.recipient,
		Document:  m.document,
		Field:     m.field,
		Signature: m.signature,
		User:      m.user,
	}
	svc := NewRecipientService(repos)
	return svc, m
}

// --------------------- Add ---------------------
func TestAddRecipient_Success(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusDraft}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(nil, gorm.ErrRecordNotFound)
	m.recipient.EXPECT().CreateRecipient(gomock.Any()).DoAndReturn(func(r *recipient.DocumentRecipient) error {
		assert.Equal(t, recipient.RoleSigner, r.Role)
		assert.Equal(t, recipient.StatusPending, r.Status)
		return nil
	})

	rec, err := svc.Add(1, 10, recipient.CreateRecipientDTO{Email: "carol@test.com", Name: "Carol"})
	assert.NoError(t, err)
	assert.Equal(t, "carol@test.com", rec.Email)
}

func TestAddRecipient_DuplicateEmail(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusDraft}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(&recipient.DocumentRecipient{ID: 3}, nil)

	_, err := svc.Add(1, 10, recipient.CreateRecipientDTO{Email: "carol@test.com"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddRecipient_UnknownRole(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusDraft}, nil)

	_, err := svc.Add(1, 10, recipient.CreateRecipientDTO{Email: "carol@test.com", Role: "notary"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddRecipient_WitnessLinkRequiresWitnessRole(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusDraft}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(nil, gorm.ErrRecordNotFound)

	target := uint(3)
	_, err := svc.Add(1, 10, recipient.CreateRecipientDTO{
		Email: "carol@test.com", Role: string(recipient.RoleSigner), WitnessForID: &target,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddRecipient_WitnessCannotWitnessWitness(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusDraft}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(nil, gorm.ErrRecordNotFound)
	m.recipient.EXPECT().GetRecipientByID(uint(3)).
		Return(&recipient.DocumentRecipient{ID: 3, DocumentID: 1, Role: recipient.RoleWitness}, nil)

	target := uint(3)
	_, err := svc.Add(1, 10, recipient.CreateRecipientDTO{
		Email: "carol@test.com", Role: string(recipient.RoleWitness), WitnessForID: &target,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddRecipient_WitnessTargetOnAnotherDocument(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusDraft}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(nil, gorm.ErrRecordNotFound)
	m.recipient.EXPECT().GetRecipientByID(uint(3)).
		Return(&recipient.DocumentRecipient{ID: 3, DocumentID: 2, Role: recipient.RoleSigner}, nil)

	target := uint(3)
	_, err := svc.Add(1, 10, recipient.CreateRecipientDTO{
		Email: "carol@test.com", Role: string(recipient.RoleWitness), WitnessForID: &target,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --------------------- Remove ---------------------
func TestRemoveRecipient_NotFoundIsForbidden(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.recipient.EXPECT().GetRecipientByID(uint(3)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Remove(3, 10)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- Sign ---------------------
func TestRecipientSign_UnknownEmailForbidden(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusPending}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "mallory@test.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Sign(1, recipient.RecipientSignDTO{Email: "mallory@test.com", Value: "sig"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRecipientSign_WitnessBeforeTarget(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	target := uint(4)
	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusPending}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "witness@test.com").
		Return(&recipient.DocumentRecipient{
			ID: 5, DocumentID: 1, Email: "witness@test.com",
			Role: recipient.RoleWitness, Status: recipient.StatusPending, WitnessForID: &target,
		}, nil)
	m.recipient.EXPECT().GetRecipientByID(uint(4)).
		Return(&recipient.DocumentRecipient{ID: 4, DocumentID: 1, Status: recipient.StatusPending}, nil)

	_, err := svc.Sign(1, recipient.RecipientSignDTO{Email: "witness@test.com", Value: "sig"})
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestRecipientSign_Decline(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusPending}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(&recipient.DocumentRecipient{
			ID: 3, DocumentID: 1, Email: "carol@test.com", Status: recipient.StatusPending,
		}, nil)
	m.recipient.EXPECT().UpdateRecipient(gomock.Any()).DoAndReturn(func(r *recipient.DocumentRecipient) error {
		assert.Equal(t, recipient.StatusDeclined, r.Status)
		return nil
	})

	rec, err := svc.Sign(1, recipient.RecipientSignDTO{Email: "carol@test.com", Value: "sig", Decline: true})
	assert.NoError(t, err)
	assert.Equal(t, recipient.StatusDeclined, rec.Status)
}

func TestRecipientSign_AlreadyActedConflict(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusPending}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(&recipient.DocumentRecipient{
			ID: 3, DocumentID: 1, Status: recipient.StatusSigned,
		}, nil)

	_, err := svc.Sign(1, recipient.RecipientSignDTO{Email: "carol@test.com", Value: "sig"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRecipientSign_FillsAssignedFields(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusPending}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "carol@test.com").
		Return(&recipient.DocumentRecipient{
			ID: 3, DocumentID: 1, Email: "carol@test.com", Name: "Carol", Status: recipient.StatusPending,
		}, nil)
	m.user.EXPECT().GetOrCreateByEmail("carol@test.com", "Carol").
		Return(user.User{ID: 61}, nil)
	m.field.EXPECT().ListFieldsByDocumentID(uint(1)).Return([]field.SignatureField{
		{ID: 31, DocumentID: 1, Page: 1, Type: field.TypeSignature, AssignedTo: "carol@test.com"},
		{ID: 32, DocumentID: 1, Page: 2, Type: field.TypeText, AssignedTo: "carol@test.com"},
	}, nil)
	// Only the signature-kind field is filled by the recipient flow.
	m.field.EXPECT().UpdateField(gomock.Any()).DoAndReturn(func(f *field.SignatureField) error {
		assert.Equal(t, uint(31), f.ID)
		assert.Equal(t, field.StatusCompleted, f.Status)
		return nil
	})
	m.signature.EXPECT().UpsertSignature(gomock.Any()).DoAndReturn(func(s *field.Signature) error {
		assert.Equal(t, uint(61), s.UserID)
		assert.Equal(t, uint(31), *s.FieldID)
		return nil
	})
	m.recipient.EXPECT().UpdateRecipient(gomock.Any()).DoAndReturn(func(r *recipient.DocumentRecipient) error {
		assert.Equal(t, recipient.StatusSigned, r.Status)
		assert.NotNil(t, r.SignedAt)
		return nil
	})
	// Dan is still pending, so the document only records progress.
	m.recipient.EXPECT().ListByDocumentID(uint(1)).Return([]recipient.DocumentRecipient{
		{ID: 3, DocumentID: 1, Email: "carol@test.com", Role: recipient.RoleSigner, Status: recipient.StatusSigned},
		{ID: 4, DocumentID: 1, Email: "dan@test.com", Role: recipient.RoleSigner, Status: recipient.StatusPending},
	}, nil)
	m.document.EXPECT().TransitionStatus(uint(1),
		[]document.Status{document.StatusPending}, document.StatusPartiallySigned).Return(true, nil)

	rec, err := svc.Sign(1, recipient.RecipientSignDTO{Email: "carol@test.com", Value: "data:image/png;base64,sig"})
	assert.NoError(t, err)
	assert.Equal(t, recipient.StatusSigned, rec.Status)
}

func TestRecipientSign_LastSignerCompletesDocument(t *testing.T) {
	svc, m := setupRecipientServiceMocks(t)

	m.document.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10, Status: document.StatusPartiallySigned}, nil)
	m.recipient.EXPECT().GetByDocumentAndEmail(uint(1), "dan@test.com").
		Return(&recipient.DocumentRecipient{
			ID: 4, DocumentID: 1, Email: "dan@test.com", Name: "Dan", Status: recipient.StatusPending,
		}, nil)
	m.user.EXPECT().GetOrCreateByEmail("dan@test.com", "Dan").
		Return(user.User{ID: 62}, nil)
	m.field.EXPECT().ListFieldsByDocumentID(uint(1)).Return(nil, nil)
	m.signature.EXPECT().UpsertSignature(gomock.Any()).Return(nil)
	m.recipient.EXPECT().UpdateRecipient(gomock.Any()).Return(nil)
	// Every signer has now signed; the pending reviewer does not hold the
	// document open.
	m.recipient.EXPECT().ListByDocumentID(uint(1)).Return([]recipient.DocumentRecipient{
		{ID: 3, DocumentID: 1, Email: "carol@test.com", Role: recipient.RoleSigner, Status: recipient.StatusSigned},
		{ID: 4, DocumentID: 1, Email: "dan@test.com", Role: recipient.RoleSigner, Status: recipient.StatusSigned},
		{ID: 5, DocumentID: 1, Email: "rev@test.com", Role: recipient.RoleReviewer, Status: recipient.StatusPending},
	}, nil)
	m.document.EXPECT().TransitionStatus(uint(1),
		[]document.Status{document.StatusPending, document.StatusPartiallySigned},
		document.StatusCompleted).Return(true, nil)

	rec, err := svc.Sign(1, recipient.RecipientSignDTO{Email: "dan@test.com", Value: "data:image/png;base64,sig"})
	assert.NoError(t, err)
	assert.Equal(t, recipient.StatusSigned, rec.Status)
}
