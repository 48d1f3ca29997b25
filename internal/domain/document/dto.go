package document

type CreateDocumentDTO struct {
	Title string `form:"title" binding:"required"`
}

type UpdateDocumentDTO struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}
