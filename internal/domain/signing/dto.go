package signing

type SignerInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CreateRequestDTO struct {
	DocumentID    uint          `json:"document_id" binding:"required"`
	Signers       []SignerInput `json:"signers" binding:"required,min=1,dive"`
	SigningOrder  string        `json:"signing_order"`
	Subject       *string       `json:"subject"`
	Message       *string       `json:"message"`
	ExpiresInDays *int          `json:"expires_in_days"`
}

type SignByTokenDTO struct {
	Email string `json:"email" binding:"required,email"`
	// Value is the signature payload, typically a data URL of the drawn mark.
	Value        string            `json:"value"`
	FieldID      *uint             `json:"field_id"`
	Position     *PositionDTO      `json:"position"`
	RejectReason *string           `json:"reject_reason"`
}

type PositionDTO struct {
	Page int     `json:"page"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"width"`
	H    float64 `json:"height"`
}

// SignerView is what an anonymous token holder is allowed to see.
type SignerView struct {
	Request       *SigningRequest `json:"request"`
	DocumentTitle string          `json:"document_title"`
	CurrentSigner *SignerInfo     `json:"current_signer,omitempty"`
}
