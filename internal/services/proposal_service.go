package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chairai-backend/internal/logger"
	"chairai-backend/internal/models"
)

type ProposalStore interface {
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	ProposalExists(ctx context.Context, projectID, artisanID uuid.UUID) (bool, error)
	CreateProposal(ctx context.Context, p *models.Proposal) error
	ListProposalsByProject(ctx context.Context, projectID uuid.UUID) ([]models.Proposal, error)
	ListProposalsByArtisan(ctx context.Context, artisanID uuid.UUID) ([]models.Proposal, error)
}

type ProposalService struct {
	store ProposalStore
}

func NewProposalService(store ProposalStore) *ProposalService {
	return &ProposalService{store: store}
}

// CreateProposal submits an artisan's bid against an open project. One
// proposal per artisan per project.
func (s *ProposalService) CreateProposal(ctx context.Context, projectID, artisanID uuid.UUID, role models.Role, req models.CreateProposalRequest) (*models.ProposalResponse, error) {
	if role != models.RoleArtisan {
		return nil, models.ErrForbidden
	}

	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrProposalCreateFailed
	}
	if project.Status != models.StatusOpen {
		return nil, models.ErrProjectNotOpen
	}
	if project.ClientID == artisanID {
		return nil, models.ErrForbidden
	}

	exists, err := s.store.ProposalExists(ctx, projectID, artisanID)
	if err != nil {
		return nil, models.ErrProposalCreateFailed
	}
	if exists {
		return nil, models.ErrProposalAlreadyExists
	}

	proposal := &models.Proposal{
		ProjectID:     projectID,
		ArtisanID:     artisanID,
		Price:         req.Price,
		Message:       nullString(req.Message),
		AttachmentURL: nullString(req.AttachmentURL),
	}
	if err := s.store.CreateProposal(ctx, proposal); err != nil {
		logger.L().Error("proposal insert failed", zap.Error(err), zap.String("project_id", projectID.String()))
		return nil, models.ErrProposalCreateFailed
	}

	return toProposalResponse(proposal), nil
}

// ListProjectProposals returns all proposals for a project; only the owning
// client may call it.
func (s *ProposalService) ListProjectProposals(ctx context.Context, projectID, userID uuid.UUID) (*models.ProposalListResponse, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrProposalCreateFailed
	}
	if project.ClientID != userID {
		return nil, models.ErrProjectForbidden
	}

	proposals, err := s.store.ListProposalsByProject(ctx, projectID)
	if err != nil {
		return nil, models.ErrProposalCreateFailed
	}
	return toProposalListResponse(proposals), nil
}

func (s *ProposalService) ListMyProposals(ctx context.Context, artisanID uuid.UUID, role models.Role) (*models.ProposalListResponse, error) {
	if role != models.RoleArtisan {
		return nil, models.ErrForbidden
	}
	proposals, err := s.store.ListProposalsByArtisan(ctx, artisanID)
	if err != nil {
		return nil, models.ErrProposalCreateFailed
	}
	return toProposalListResponse(proposals), nil
}

func toProposalResponse(p *models.Proposal) *models.ProposalResponse {
	return &models.ProposalResponse{
		ID:            p.ID.String(),
		ProjectID:     p.ProjectID.String(),
		ArtisanID:     p.ArtisanID.String(),
		CompanyName:   p.ArtisanCompanyName.String,
		Price:         p.Price,
		Message:       p.Message.String,
		AttachmentURL: p.AttachmentURL.String,
		CreatedAt:     p.CreatedAt,
	}
}

func toProposalListResponse(proposals []models.Proposal) *models.ProposalListResponse {
	out := make([]models.ProposalResponse, len(proposals))
	for i := range proposals {
		out[i] = *toProposalResponse(&proposals[i])
	}
	return &models.ProposalListResponse{Proposals: out}
}
