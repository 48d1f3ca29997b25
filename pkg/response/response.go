package response

type ErrorResponse struct {
	Error string `json:"error"`
	// Unfilled carries the count of unfilled required fields on a failed
	// finalize gate.
	Unfilled int `json:"unfilled_required,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
}

type FinalizeResponse struct {
	Message        string `json:"message"`
	ArtifactPath   string `json:"artifact_path"`
	FieldsEmbedded int    `json:"fields_embedded"`
}
