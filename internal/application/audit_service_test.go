package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/quillsign/quillsign/internal/domain/audit"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

func setupAuditServiceMocks(t *testing.T) (*AuditService, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		Audit: mockAudit,
	}
	svc := NewAuditService(repos)
	return svc, mockAudit
}

func TestGetAuditLogs_ClampsLimit(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(
		func(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
			assert.Equal(t, 100, params.Limit)
			return nil, nil
		}).Times(2)

	_, err := svc.GetAuditLogs(repository.AuditQueryParams{Limit: 0})
	assert.NoError(t, err)
	_, err = svc.GetAuditLogs(repository.AuditQueryParams{Limit: 9999})
	assert.NoError(t, err)
}

func TestGetAuditLogs_KeepsExplicitLimit(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	mockAudit.EXPECT().GetAuditLogs(gomock.Any()).DoAndReturn(
		func(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
			assert.Equal(t, 25, params.Limit)
			return []audit.AuditLog{{ID: 1}}, nil
		})

	logs, err := svc.GetAuditLogs(repository.AuditQueryParams{Limit: 25})
	assert.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestCleanupOldLogs(t *testing.T) {
	svc, mockAudit := setupAuditServiceMocks(t)

	mockAudit.EXPECT().DeleteOldAuditLogs(90).Return(nil)

	err := svc.CleanupOldLogs(90)
	assert.NoError(t, err)
}
