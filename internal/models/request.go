package models

type RegisterImageRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

type CreateProjectRequest struct {
	GeneratedImageID string `json:"generated_image_id" binding:"required,uuid"`
	CategoryID       string `json:"category_id" binding:"required,uuid"`
	MaterialID       string `json:"material_id" binding:"required,uuid"`
	Dimensions       string `json:"dimensions,omitempty"`
	BudgetRange      string `json:"budget_range,omitempty"`
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress completed closed"`
}

type CreateProposalRequest struct {
	Price         float64 `json:"price" binding:"required,gt=0"`
	Message       string  `json:"message,omitempty"`
	AttachmentURL string  `json:"attachment_url,omitempty" binding:"omitempty,url"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

type UpsertProfileRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	NIP         string `json:"nip" binding:"required,len=10,numeric"`
	IsPublic    bool   `json:"is_public"`
}

type AddSpecializationsRequest struct {
	SpecializationIDs []string `json:"specialization_ids" binding:"required,min=1,dive,uuid"`
}
