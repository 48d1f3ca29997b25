package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/quillsign/quillsign/internal/domain/document"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memStorage is an in-memory ObjectStorage for service tests.
type memStorage struct {
	objects  map[string][]byte
	fetchErr error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (m *memStorage) Fetch(ctx context.Context, path string) ([]byte, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	data, ok := m.objects[path]
	if !ok {
		return nil, fmt.Errorf("no such object %s", path)
	}
	return data, nil
}

func (m *memStorage) Store(ctx context.Context, path string, data []byte, contentType string) error {
	m.objects[path] = data
	return nil
}

func (m *memStorage) Remove(ctx context.Context, path string) error {
	delete(m.objects, path)
	return nil
}

func (m *memStorage) PresignedGet(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://storage.test/" + path, nil
}

// --------------------- Setup ---------------------
func setupDocumentServiceMocks(t *testing.T) (*DocumentService, *mock.MockDocumentRepo, *memStorage) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockDoc := mock.NewMockDocumentRepo(ctrl)
	repos := &repository.Repos{
		Document: mockDoc,
	}
	storage := newMemStorage()
	svc := NewDocumentService(repos, storage)
	return svc, mockDoc, storage
}

// --------------------- Upload ---------------------
func TestUpload_RejectsUnreadablePDF(t *testing.T) {
	svc, _, _ := setupDocumentServiceMocks(t)

	_, err := svc.Upload(context.Background(), 1, "Contract", "contract.pdf", []byte("not a pdf"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --------------------- Get ---------------------
func TestGet_NotFound(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(42)).Return(document.Document{}, gorm.ErrRecordNotFound)

	_, err := svc.Get(42, 1)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGet_ForbiddenForStranger(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(42)).
		Return(document.Document{ID: 42, OwnerID: 1}, nil)

	_, err := svc.Get(42, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}

// --------------------- UpdateMeta ---------------------
func TestUpdateMeta_ArchiveAllowed(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 1, Status: document.StatusDraft}, nil)
	mockDoc.EXPECT().UpdateDocument(gomock.Any()).DoAndReturn(func(d *document.Document) error {
		assert.Equal(t, document.StatusArchived, d.Status)
		return nil
	})

	status := string(document.StatusArchived)
	doc, err := svc.UpdateMeta(1, 1, document.UpdateDocumentDTO{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, document.StatusArchived, doc.Status)
}

func TestUpdateMeta_DirectStatusChangeRejected(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 1, Status: document.StatusDraft}, nil)

	status := string(document.StatusCompleted)
	_, err := svc.UpdateMeta(1, 1, document.UpdateDocumentDTO{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --------------------- Delete ---------------------
func TestDelete_ActiveRoundConflict(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 1, Status: document.StatusPending}, nil)

	err := svc.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDelete_RemovesBlobAndRow(t *testing.T) {
	svc, mockDoc, storage := setupDocumentServiceMocks(t)

	storage.objects["documents/1/x.pdf"] = []byte("pdf")
	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 1, Status: document.StatusDraft, MinIOPath: "documents/1/x.pdf"}, nil)
	mockDoc.EXPECT().DeleteDocument(uint(1)).Return(nil)

	err := svc.Delete(context.Background(), 1, 1)
	assert.NoError(t, err)
	assert.NotContains(t, storage.objects, "documents/1/x.pdf")
}

// --------------------- DownloadLink ---------------------
func TestDownloadLink_Original(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 1, MinIOPath: "documents/1/x.pdf"}, nil)

	url, err := svc.DownloadLink(context.Background(), 1, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, "https://storage.test/documents/1/x.pdf", url)
}

func TestDownloadLink_ArtifactMissing(t *testing.T) {
	svc, mockDoc, _ := setupDocumentServiceMocks(t)

	mockDoc.EXPECT().GetDocumentByID(uint(1)).
		Return(document.Document{ID: 1, OwnerID: 1, MinIOPath: "documents/1/x.pdf"}, nil)

	_, err := svc.DownloadLink(context.Background(), 1, 1, true)
	assert.ErrorIs(t, err, ErrConflict)
}
