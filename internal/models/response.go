package models

import "time"

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ImageResponse struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"image_url"`
	IsUsed    bool      `json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectResponse struct {
	ID                 string               `json:"id"`
	ClientID           string               `json:"client_id"`
	Status             string               `json:"status"`
	Dimensions         string               `json:"dimensions,omitempty"`
	BudgetRange        string               `json:"budget_range,omitempty"`
	AcceptedProposalID string               `json:"accepted_proposal_id,omitempty"`
	AcceptedPrice      *float64             `json:"accepted_price,omitempty"`
	ProposalsCount     int                  `json:"proposals_count"`
	Category           *CatalogItemResponse `json:"category,omitempty"`
	Material           *CatalogItemResponse `json:"material,omitempty"`
	Image              *ImageResponse       `json:"generated_image,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type CatalogItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type ProjectListResponse struct {
	Data       []ProjectResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type StatusResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AcceptProposalResponse struct {
	ID                 string    `json:"id"`
	Status             string    `json:"status"`
	AcceptedProposalID string    `json:"accepted_proposal_id"`
	AcceptedPrice      float64   `json:"accepted_price"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ProposalResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	ArtisanID     string    `json:"artisan_id"`
	CompanyName   string    `json:"company_name,omitempty"`
	Price         float64   `json:"price"`
	Message       string    `json:"message,omitempty"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	ReviewerID   string    `json:"reviewer_id"`
	RevieweeID   string    `json:"reviewee_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

type ProfileResponse struct {
	UserID          string                   `json:"user_id"`
	CompanyName     string                   `json:"company_name"`
	NIP             string                   `json:"nip"`
	IsPublic        bool                     `json:"is_public"`
	Specializations []CatalogItemResponse    `json:"specializations"`
	Portfolio       []PortfolioImageResponse `json:"portfolio"`
	RatingAvg       float64                  `json:"rating_avg"`
	RatingCount     int                      `json:"rating_count"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

type PortfolioImageResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
