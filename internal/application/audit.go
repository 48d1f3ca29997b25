package application

import (
	"github.com/quillsign/quillsign/internal/domain/audit"
	"github.com/quillsign/quillsign/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) GetAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(retentionDays int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(retentionDays)
}
