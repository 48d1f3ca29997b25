package recipient

type CreateRecipientDTO struct {
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Order        int    `json:"order"`
	WitnessForID *uint  `json:"witness_for_id"`
}

type RecipientSignDTO struct {
	Email string `json:"email" binding:"required,email"`
	Value string `json:"value" binding:"required"`
	// Decline marks the recipient as declined instead of signed.
	Decline bool   `json:"decline"`
	Reason  string `json:"reason"`
}
