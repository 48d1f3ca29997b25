package recipient

import "time"

type Role string

const (
	RoleSigner   Role = "signer"
	RoleWitness  Role = "witness"
	RoleReviewer Role = "reviewer"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSigned    Status = "signed"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
)

// DocumentRecipient grants an email-identified party access to a document
// outside the token-request flow. The record existing is itself the grant, so
// creation is owner-only and audited.
type DocumentRecipient struct {
	ID         uint   `gorm:"primaryKey;column:r_id" json:"id"`
	DocumentID uint   `gorm:"index:idx_recipient_doc_email,unique;not null" json:"document_id"`
	Email      string `gorm:"index:idx_recipient_doc_email,unique;size:100;not null" json:"email"`
	Name       string `gorm:"size:100" json:"name"`
	Role       Role   `gorm:"size:20;not null;default:'signer'" json:"role"`
	Status     Status `gorm:"size:20;not null;default:'pending'" json:"status"`
	Order      int    `gorm:"column:sign_order;not null;default:0" json:"order"`
	// WitnessForID links a witness to the recipient it witnesses. Relation
	// only, no ownership.
	WitnessForID *uint              `gorm:"index" json:"witness_for_id,omitempty"`
	WitnessFor   *DocumentRecipient `gorm:"foreignKey:WitnessForID" json:"-"`
	SignedAt     *time.Time         `json:"signed_at,omitempty"`
	CreatedAt    time.Time          `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time          `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// SignersComplete reports whether every recipient with the signer role has
// signed. Witnesses and reviewers do not hold the document open; a list with
// no signers at all is never complete.
func SignersComplete(recs []DocumentRecipient) bool {
	signers := 0
	for i := range recs {
		if recs[i].Role != RoleSigner {
			continue
		}
		signers++
		if recs[i].Status != StatusSigned {
			return false
		}
	}
	return signers > 0
}
