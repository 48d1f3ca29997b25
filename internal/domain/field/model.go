package field

import "time"

type Type string

const (
	TypeSignature Type = "signature"
	TypeInitials  Type = "initials"
	TypeName      Type = "name"
	TypeDate      Type = "date"
	TypeText      Type = "text"
	TypeInput     Type = "input"
	TypeCheckbox  Type = "checkbox"
	TypeWitness   Type = "witness"
	TypeStamp     Type = "stamp"
)

// Valid reports whether t is one of the known field types.
func (t Type) Valid() bool {
	switch t {
	case TypeSignature, TypeInitials, TypeName, TypeDate, TypeText,
		TypeInput, TypeCheckbox, TypeWitness, TypeStamp:
		return true
	}
	return false
}

// SignatureKind reports whether filling this field produces a durable
// Signature record in addition to the field value.
func (t Type) SignatureKind() bool {
	switch t {
	case TypeSignature, TypeInitials, TypeWitness, TypeStamp:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOptional  Status = "optional"
)

// SignatureField is a positioned placeholder on a document page. X, Y, W and H
// are document-space units: normalized to the document's native scale and
// independent of any display zoom.
type SignatureField struct {
	ID          uint    `gorm:"primaryKey;column:f_id" json:"id"`
	DocumentID  uint    `gorm:"index;not null" json:"document_id"`
	Page        int     `gorm:"not null;default:1" json:"page"`
	X           float64 `gorm:"not null" json:"x"`
	Y           float64 `gorm:"not null" json:"y"`
	W           float64 `gorm:"column:width;not null" json:"width"`
	H           float64 `gorm:"column:height;not null" json:"height"`
	Type        Type    `gorm:"size:20;not null" json:"type"`
	Label       string  `gorm:"size:100" json:"label"`
	Placeholder string  `gorm:"size:200" json:"placeholder"`
	Value       *string `gorm:"type:text" json:"value"`
	Status      Status  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Required    bool    `gorm:"not null;default:false" json:"required"`
	AssignedTo  string  `gorm:"size:100;index" json:"assigned_to"`
	// LinkedFieldID groups copies of one field duplicated across pages, e.g.
	// initials required on every page.
	LinkedFieldID *uint     `gorm:"index" json:"linked_field_id,omitempty"`
	CreatedAt     time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// Filled reports whether the field carries a value.
func (f *SignatureField) Filled() bool {
	return f.Value != nil && *f.Value != ""
}

// Signature is the append-style record of what was actually signed. A
// SignatureField's value is mutable; the Signature row is the audit-grade copy
// taken at signing time. At most one live row exists per (document, signer).
type Signature struct {
	ID         uint      `gorm:"primaryKey;column:s_id" json:"id"`
	DocumentID uint      `gorm:"index:idx_sig_doc_signer,unique;not null" json:"document_id"`
	UserID     uint      `gorm:"index:idx_sig_doc_signer,unique;not null" json:"user_id"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	FieldID    *uint     `gorm:"index" json:"field_id,omitempty"`
	Page       int       `gorm:"not null;default:1" json:"page"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	W          float64   `gorm:"column:width" json:"width"`
	H          float64   `gorm:"column:height" json:"height"`
	Type       Type      `gorm:"size:20;not null" json:"type"`
	Payload    []byte    `gorm:"type:bytea" json:"-"`
	Status     string    `gorm:"size:20;not null;default:'signed'" json:"status"`
	SignedAt   time.Time `gorm:"autoCreateTime" json:"signed_at"`
}
