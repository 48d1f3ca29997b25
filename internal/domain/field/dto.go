package field

type CreateFieldDTO struct {
	DocumentID  uint    `json:"document_id" binding:"required"`
	Page        int     `json:"page" binding:"required,min=1"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"width" binding:"required,gt=0"`
	H           float64 `json:"height" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required"`
	Label       *string `json:"label"`
	Placeholder *string `json:"placeholder"`
	Required    *bool   `json:"required"`
	AssignedTo  *string `json:"assigned_to"`
	// Scale is the display zoom the coordinates were captured at. When set,
	// the service divides the geometry back into document space.
	Scale *float64 `json:"scale"`
}

type UpdateFieldDTO struct {
	Page        *int     `json:"page"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	W           *float64 `json:"width"`
	H           *float64 `json:"height"`
	Label       *string  `json:"label"`
	Placeholder *string  `json:"placeholder"`
	Required    *bool    `json:"required"`
	AssignedTo  *string  `json:"assigned_to"`
	Scale       *float64 `json:"scale"`
}

type FillFieldDTO struct {
	Value string `json:"value" binding:"required"`
	Type  string `json:"type"`
	// SignatureData carries the raw drawn payload (data URL) when it differs
	// from the stored value.
	SignatureData *string `json:"signature_data"`
}

type LinkFieldsDTO struct {
	TargetPages []int `json:"target_pages" binding:"required,min=1"`
}

// TemplateFieldSpec is one entry of a bulk field template. YAML tags allow
// templates to be uploaded as files, JSON tags cover the inline API form.
type TemplateFieldSpec struct {
	Page        int     `json:"page" yaml:"page"`
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	W           float64 `json:"width" yaml:"width"`
	H           float64 `json:"height" yaml:"height"`
	Type        string  `json:"type" yaml:"type"`
	Label       string  `json:"label" yaml:"label"`
	Placeholder string  `json:"placeholder" yaml:"placeholder"`
	Required    bool    `json:"required" yaml:"required"`
	AssignedTo  string  `json:"assigned_to" yaml:"assigned_to"`
}

type CreateFromTemplateDTO struct {
	Fields []TemplateFieldSpec `json:"fields" binding:"required,min=1"`
}
