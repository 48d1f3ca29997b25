package application

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/domain/field"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

// onePagePDF builds a classic-xref single page document so render runs against
// real bytes.
func onePagePDF(t *testing.T) []byte {
	t.Helper()
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 5)
	addObj := func(id int, body string) {
		offsets[id] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", id, body)
	}
	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 /MediaBox [0 0 612 792] >>")
	addObj(3, "<< /Type /Page /Parent 2 0 R /Contents 4 0 R /Resources << >> >>")
	addObj(4, "<< /Length 3 >>\nstream\nq Q\nendstream")

	xref := b.Len()
	b.WriteString("xref\n0 5\n0000000000 65535 f \n")
	for id := 1; id <= 4; id++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}

// --------------------- Setup ---------------------
func setupFinalizeServiceMocks(t *testing.T) (*FinalizeService, *mock.MockDocumentRepo, *mock.MockFieldRepo, *memStorage) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDoc := mock.NewMockDocumentRepo(ctrl)
	mockField := mock.NewMockFieldRepo(ctrl)
	repos := &repository.Repos{
		Document: mockDoc,
		Field:    mockField,
	}
	storage := newMemStorage()
	svc := NewFinalizeService(repos, storage)
	return svc, mockDoc, mockField, storage
}

// --------------------- Finalize ---------------------
func TestFinalize_UnfilledRequiredGate(t *testing.T) {
	svc, mockDoc, mockField, _ := setupFinalizeServiceMocks(t)

	doc := document.Document{ID: 1, OwnerID: 10, Status: document.StatusPartiallySigned}
	mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(doc, nil).Times(2)
	mockField.EXPECT().CountUnfilledRequired(uint(1)).Return(int64(3), nil)

	_, _, err := svc.Finalize(context.Background(), 1, 10)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, int64(3), verr.Unfilled)
}

func TestFinalize_ArchivedConflict(t *testing.T) {
	svc, mockDoc, _, _ := setupFinalizeServiceMocks(t)

	doc := document.Document{ID: 1, OwnerID: 10, Status: document.StatusArchived}
	mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(doc, nil).Times(2)

	_, _, err := svc.Finalize(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFinalize_AlreadyFinalizedConflict(t *testing.T) {
	svc, mockDoc, _, _ := setupFinalizeServiceMocks(t)

	old := config.AllowRefinalize
	config.AllowRefinalize = false
	defer func() { config.AllowRefinalize = old }()

	doc := document.Document{ID: 1, OwnerID: 10, Status: document.StatusCompleted}
	mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(doc, nil).Times(2)

	_, _, err := svc.Finalize(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFinalize_NotOwner(t *testing.T) {
	svc, mockDoc, _, _ := setupFinalizeServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 10}, nil)

	_, _, err := svc.Finalize(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFinalize_EmbedsFilledFieldsAndStoresArtifact(t *testing.T) {
	svc, mockDoc, mockField, storage := setupFinalizeServiceMocks(t)

	original := onePagePDF(t)
	storage.objects["documents/10/lease.pdf"] = original

	doc := document.Document{
		ID: 1, OwnerID: 10, Status: document.StatusPartiallySigned,
		Filename: "lease.pdf", MinIOPath: "documents/10/lease.pdf",
	}
	artifact := "artifacts/1/signed-lease.pdf"
	finalized := doc
	finalized.Status = document.StatusCompleted
	finalized.ArtifactPath = &artifact

	gomock.InOrder(
		mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(doc, nil),
		mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(doc, nil),
		mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(finalized, nil),
	)
	mockField.EXPECT().CountUnfilledRequired(uint(1)).Return(int64(0), nil)
	val := "Ada Lovelace"
	mockField.EXPECT().ListFieldsByDocumentID(uint(1)).Return([]field.SignatureField{
		{ID: 5, DocumentID: 1, Page: 1, X: 72, Y: 100, W: 180, H: 40,
			Type: field.TypeName, Value: &val, Status: field.StatusCompleted},
		{ID: 6, DocumentID: 1, Page: 1, Type: field.TypeText},
	}, nil)
	mockDoc.EXPECT().SetArtifact(uint(1), artifact).Return(nil)

	out, embedded, err := svc.Finalize(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 1, embedded)
	assert.Equal(t, document.StatusCompleted, out.Status)

	stored, ok := storage.objects[artifact]
	assert.True(t, ok)
	assert.True(t, bytes.HasPrefix(stored, original), "artifact must preserve the original bytes")
}

// --------------------- Preview ---------------------
func TestPreview_SkipsRequiredFieldGate(t *testing.T) {
	svc, mockDoc, mockField, storage := setupFinalizeServiceMocks(t)

	original := onePagePDF(t)
	storage.objects["documents/10/lease.pdf"] = original

	doc := document.Document{
		ID: 1, OwnerID: 10, Status: document.StatusPending,
		Filename: "lease.pdf", MinIOPath: "documents/10/lease.pdf",
	}
	mockDoc.EXPECT().GetDocumentByID(uint(1)).Return(doc, nil)
	// No CountUnfilledRequired expectation: preview never gates.
	mockField.EXPECT().ListFieldsByDocumentID(uint(1)).Return([]field.SignatureField{
		{ID: 6, DocumentID: 1, Page: 1, Type: field.TypeText, Required: true},
	}, nil)

	out, embedded, err := svc.Preview(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, embedded)
	assert.Equal(t, original, out)
}
