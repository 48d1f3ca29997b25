package cron

import (
	"log"
	"time"

	"github.com/quillsign/quillsign/internal/application"
)

// StartCleanupTask prunes audit logs older than 90 days, once on startup and
// then daily.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		log.Println("Starting background cleanup task (retention: 90 days)")

		if err := auditService.CleanupOldLogs(90); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(90); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
