package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chairai-backend/internal/logger"
	"chairai-backend/internal/models"
	"chairai-backend/internal/supabase"
)

// ProjectStore is the slice of the database client the project service needs.
type ProjectStore interface {
	GetGeneratedImage(ctx context.Context, imageID uuid.UUID) (*models.GeneratedImage, error)
	GetProjectByImageID(ctx context.Context, imageID uuid.UUID) (*models.Project, error)
	CategoryExists(ctx context.Context, categoryID uuid.UUID) (bool, error)
	MaterialExists(ctx context.Context, materialID uuid.UUID) (bool, error)
	CreateProject(ctx context.Context, p *models.Project) error
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context, clientID *uuid.UUID, filters models.ProjectFilters, limit, offset int) ([]models.Project, int, error)
	CountProposals(ctx context.Context, projectID uuid.UUID) (int, error)
	GetProposal(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error)
	AcceptProposal(ctx context.Context, projectID, proposalID uuid.UUID, price float64) (time.Time, error)
	UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, status models.ProjectStatus) (time.Time, error)
}

type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// CreateProject validates the command and inserts an open project consuming
// the generated image. The image can back at most one project; a lost race on
// the insert surfaces as IMAGE_ALREADY_USED.
func (s *ProjectService) CreateProject(ctx context.Context, clientID uuid.UUID, req models.CreateProjectRequest) (*models.ProjectResponse, error) {
	imageID, err := uuid.Parse(req.GeneratedImageID)
	if err != nil {
		return nil, models.ErrImageNotFound
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, models.ErrCategoryNotFound
	}
	materialID, err := uuid.Parse(req.MaterialID)
	if err != nil {
		return nil, models.ErrMaterialNotFound
	}

	img, err := s.store.GetGeneratedImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrImageNotFound
		}
		return nil, models.ErrProjectCreateFailed
	}
	if img.UserID != clientID {
		return nil, models.ErrImageForbidden
	}

	if _, err := s.store.GetProjectByImageID(ctx, imageID); err == nil {
		return nil, models.ErrImageAlreadyUsed
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrProjectCreateFailed
	}

	if exists, err := s.store.CategoryExists(ctx, categoryID); err != nil {
		return nil, models.ErrProjectCreateFailed
	} else if !exists {
		return nil, models.ErrCategoryNotFound
	}
	if exists, err := s.store.MaterialExists(ctx, materialID); err != nil {
		return nil, models.ErrProjectCreateFailed
	} else if !exists {
		return nil, models.ErrMaterialNotFound
	}

	project := &models.Project{
		ClientID:         clientID,
		GeneratedImageID: imageID,
		CategoryID:       categoryID,
		MaterialID:       materialID,
		Dimensions:       nullString(req.Dimensions),
		BudgetRange:      nullString(req.BudgetRange),
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		if errors.Is(err, supabase.ErrImageAlreadyConsumed) || supabase.IsUniqueViolation(err) {
			return nil, models.ErrImageAlreadyUsed
		}
		logger.L().Error("project insert failed", zap.Error(err))
		return nil, models.ErrProjectCreateFailed
	}

	// Re-read with joined category/material/image for the DTO.
	created, err := s.store.GetProject(ctx, project.ID)
	if err != nil {
		return nil, models.ErrProjectCreateFailed
	}
	return toProjectResponse(created, 0), nil
}

// ListProjects is the artisan-facing browse listing.
func (s *ProjectService) ListProjects(ctx context.Context, role models.Role, filters models.ProjectFilters, page, limit int) (*models.ProjectListResponse, error) {
	if role != models.RoleArtisan {
		return nil, models.ErrForbidden
	}
	return s.list(ctx, nil, filters, page, limit)
}

// ListMyProjects lists the client's own projects; the route layer restricts
// it to the client role.
func (s *ProjectService) ListMyProjects(ctx context.Context, clientID uuid.UUID, filters models.ProjectFilters, page, limit int) (*models.ProjectListResponse, error) {
	return s.list(ctx, &clientID, filters, page, limit)
}

func (s *ProjectService) list(ctx context.Context, clientID *uuid.UUID, filters models.ProjectFilters, page, limit int) (*models.ProjectListResponse, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	projects, total, err := s.store.ListProjects(ctx, clientID, filters, limit, offset)
	if err != nil {
		logger.L().Error("project listing failed", zap.Error(err))
		return nil, models.ErrProjectListFailed
	}

	data := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		count, err := s.store.CountProposals(ctx, projects[i].ID)
		if err != nil {
			return nil, models.ErrProjectListFailed
		}
		data[i] = *toProjectResponse(&projects[i], count)
	}

	return &models.ProjectListResponse{
		Data:       data,
		Pagination: buildPagination(page, limit, total),
	}, nil
}

// GetProjectDetails enforces the visibility rule: the owning client always
// sees the project; an artisan sees it only while open or after winning it.
func (s *ProjectService) GetProjectDetails(ctx context.Context, projectID, userID uuid.UUID, role models.Role) (*models.ProjectResponse, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrProjectListFailed
	}

	if project.ClientID != userID {
		if role != models.RoleArtisan {
			return nil, models.ErrProjectForbidden
		}
		if project.Status != models.StatusOpen && !s.holdsAcceptedProposal(ctx, project, userID) {
			return nil, models.ErrProjectForbidden
		}
	}

	count, err := s.store.CountProposals(ctx, projectID)
	if err != nil {
		return nil, models.ErrProjectListFailed
	}
	return toProjectResponse(project, count), nil
}

func (s *ProjectService) holdsAcceptedProposal(ctx context.Context, project *models.Project, artisanID uuid.UUID) bool {
	if !project.AcceptedProposalID.Valid {
		return false
	}
	proposal, err := s.store.GetProposal(ctx, project.AcceptedProposalID.UUID)
	if err != nil {
		return false
	}
	return proposal.ArtisanID == artisanID
}

// AcceptProposal moves the project open -> in_progress. The write carries a
// status = 'open' predicate so concurrent acceptances cannot both land.
func (s *ProjectService) AcceptProposal(ctx context.Context, projectID, proposalID, clientID uuid.UUID) (*models.AcceptProposalResponse, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrProposalAcceptFailed
	}
	if project.ClientID != clientID {
		return nil, models.ErrProjectForbidden
	}
	if project.Status != models.StatusOpen {
		return nil, models.ErrProjectNotOpen
	}

	proposal, err := s.store.GetProposal(ctx, proposalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProposalNotFound
		}
		return nil, models.ErrProposalAcceptFailed
	}
	if proposal.ProjectID != projectID {
		return nil, models.ErrProposalProjectMismatch
	}

	updatedAt, err := s.store.AcceptProposal(ctx, projectID, proposalID, proposal.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the race: the project left 'open' between read and write.
			return nil, models.ErrProjectNotOpen
		}
		logger.L().Error("proposal acceptance failed", zap.Error(err), zap.String("project_id", projectID.String()))
		return nil, models.ErrProposalAcceptFailed
	}

	// Non-accepted proposals stay untouched for historical record.
	return &models.AcceptProposalResponse{
		ID:                 projectID.String(),
		Status:             string(models.StatusInProgress),
		AcceptedProposalID: proposalID.String(),
		AcceptedPrice:      proposal.Price,
		UpdatedAt:          updatedAt,
	}, nil
}

// UpdateProjectStatus applies the transition table. Requesting the current
// status is a successful no-op and never touches updated_at.
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, newStatus models.ProjectStatus, clientID uuid.UUID) (*models.StatusResponse, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrStatusUpdateFailed
	}
	if project.ClientID != clientID {
		return nil, models.ErrProjectForbidden
	}

	if project.Status == newStatus {
		return &models.StatusResponse{
			ID:        projectID.String(),
			Status:    string(project.Status),
			UpdatedAt: project.UpdatedAt,
		}, nil
	}

	if !transitionAllowed(project.Status, newStatus) {
		return nil, models.ErrInvalidStatusTransition
	}

	updatedAt, err := s.store.UpdateProjectStatus(ctx, projectID, newStatus)
	if err != nil {
		logger.L().Error("status update failed", zap.Error(err), zap.String("project_id", projectID.String()))
		return nil, models.ErrStatusUpdateFailed
	}

	return &models.StatusResponse{
		ID:        projectID.String(),
		Status:    string(newStatus),
		UpdatedAt: updatedAt,
	}, nil
}

func transitionAllowed(from, to models.ProjectStatus) bool {
	for _, allowed := range models.AllowedStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func toProjectResponse(p *models.Project, proposalsCount int) *models.ProjectResponse {
	resp := &models.ProjectResponse{
		ID:             p.ID.String(),
		ClientID:       p.ClientID.String(),
		Status:         string(p.Status),
		Dimensions:     p.Dimensions.String,
		BudgetRange:    p.BudgetRange.String,
		ProposalsCount: proposalsCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.AcceptedProposalID.Valid {
		resp.AcceptedProposalID = p.AcceptedProposalID.UUID.String()
	}
	if p.AcceptedPrice.Valid {
		price := p.AcceptedPrice.Float64
		resp.AcceptedPrice = &price
	}
	if p.Category != nil {
		resp.Category = &models.CatalogItemResponse{ID: p.Category.ID.String(), Name: p.Category.Name}
	}
	if p.Material != nil {
		resp.Material = &models.CatalogItemResponse{ID: p.Material.ID.String(), Name: p.Material.Name}
	}
	if p.Image != nil {
		resp.Image = &models.ImageResponse{
			ID:        p.Image.ID.String(),
			Prompt:    p.Image.Prompt,
			ImageURL:  p.Image.ImageURL,
			IsUsed:    p.Image.IsUsed,
			CreatedAt: p.Image.CreatedAt,
		}
	}
	return resp
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
