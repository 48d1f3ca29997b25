package signing

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Order string

const (
	OrderSequential Order = "sequential"
	OrderParallel   Order = "parallel"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusExpired    Status = "expired"
	StatusCancelled  Status = "cancelled"
)

// Terminal states admit no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusExpired || s == StatusCancelled
}

type SignerStatus string

const (
	SignerPending  SignerStatus = "pending"
	SignerSigned   SignerStatus = "signed"
	SignerRejected SignerStatus = "rejected"
)

// SigningRequest coordinates one round of multi-party signing over one
// document. The token is the bearer credential for external signers.
type SigningRequest struct {
	ID         uint   `gorm:"primaryKey;column:sr_id" json:"id"`
	DocumentID uint   `gorm:"index;not null" json:"document_id"`
	Token      string `gorm:"size:64;uniqueIndex;not null" json:"-"`
	Order      Order  `gorm:"column:signing_order;size:20;not null;default:'sequential'" json:"signing_order"`
	Status     Status `gorm:"size:20;not null;default:'pending'" json:"status"`
	// CurrentSignerIndex is meaningful only in sequential mode. It only ever
	// increases, and only when the signer at that index signs.
	CurrentSignerIndex int          `gorm:"not null;default:0" json:"current_signer_index"`
	Subject            string       `gorm:"size:200" json:"subject"`
	Message            string       `gorm:"type:text" json:"message"`
	ExpiresAt          *time.Time   `json:"expires_at,omitempty"`
	ReminderSentAt     *time.Time   `json:"reminder_sent_at,omitempty"`
	// CompletedSnapshot freezes the signer list as JSON at the moment the
	// request completes.
	CompletedSnapshot datatypes.JSON `json:"-"`
	Signers           []SignerInfo   `gorm:"foreignKey:RequestID" json:"signers"`
	CreatedAt         time.Time      `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

type SignerInfo struct {
	ID           uint         `gorm:"primaryKey;column:si_id" json:"id"`
	RequestID    uint         `gorm:"index;not null" json:"request_id"`
	Email        string       `gorm:"size:100;not null" json:"email"`
	Name         string       `gorm:"size:100" json:"name"`
	Role         string       `gorm:"size:50" json:"role"`
	Order        int          `gorm:"column:sign_order;not null;default:0" json:"order"`
	Status       SignerStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	SignedAt     *time.Time   `json:"signed_at,omitempty"`
	RejectReason string       `gorm:"size:500" json:"reject_reason,omitempty"`
}

// Expired reports whether the request's deadline has passed, regardless of the
// stored status. Expiry is checked lazily on access, not by a sweeper.
func (r *SigningRequest) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

// SignerFor finds the signer entry matching email, case-insensitively.
func (r *SigningRequest) SignerFor(email string) (*SignerInfo, int) {
	for i := range r.Signers {
		if strings.EqualFold(r.Signers[i].Email, email) {
			return &r.Signers[i], i
		}
	}
	return nil, -1
}

// CanAct is the single turn check: whether the signer at index idx may act
// given the ordering mode. In parallel mode every pending signer may act; in
// sequential mode only the signer at CurrentSignerIndex.
func (r *SigningRequest) CanAct(idx int) bool {
	if idx < 0 || idx >= len(r.Signers) {
		return false
	}
	if r.Order == OrderParallel {
		return r.Signers[idx].Status == SignerPending
	}
	return idx == r.CurrentSignerIndex && r.Signers[idx].Status == SignerPending
}

// AllSigned reports whether every signer has signed.
func (r *SigningRequest) AllSigned() bool {
	for i := range r.Signers {
		if r.Signers[i].Status != SignerSigned {
			return false
		}
	}
	return len(r.Signers) > 0
}
