package user

import "time"

type Type string

const (
	// TypeOrigin is a registered account holder (document owner).
	TypeOrigin Type = "origin"
	// TypeExternal is an ephemeral identity created for an external signer who
	// never registered. External signers need a stable identity so that the
	// one-Signature-per-signer invariant holds.
	TypeExternal Type = "external"
)

type User struct {
	ID        uint      `gorm:"primaryKey;column:u_id" json:"id"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	Password  string    `gorm:"size:255" json:"-"`
	FullName  *string   `gorm:"size:100" json:"full_name,omitempty"`
	Type      Type      `gorm:"size:20;not null;default:'origin'" json:"type"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}
