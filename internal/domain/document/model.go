package document

import "time"

type Status string

const (
	StatusDraft           Status = "draft"
	StatusPending         Status = "pending"
	StatusPartiallySigned Status = "partially_signed"
	StatusCompleted       Status = "completed"
	StatusArchived        Status = "archived"
)

type Document struct {
	ID        uint    `gorm:"primaryKey;column:d_id" json:"id"`
	OwnerID   uint    `gorm:"index;not null" json:"owner_id"`
	Title     string  `gorm:"size:200;not null" json:"title"`
	Filename  string  `gorm:"size:200;not null" json:"filename"`
	PageCount int     `gorm:"not null;default:1" json:"page_count"`
	Status    Status  `gorm:"size:20;not null;default:'draft'" json:"status"`
	MinIOPath string  `gorm:"column:minio_path;size:300;not null" json:"-"`
	// ArtifactPath points at the finalized rendering. The original object at
	// MinIOPath is never overwritten.
	ArtifactPath *string   `gorm:"size:300" json:"artifact_path,omitempty"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// Terminal reports whether the document can no longer accept fills or signing
// rounds.
func (d *Document) Terminal() bool {
	return d.Status == StatusCompleted || d.Status == StatusArchived
}
