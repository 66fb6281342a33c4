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

// fallbackReviewerName is used when the auth provider lookup fails.
const fallbackReviewerName = "Użytkownik"

type ReviewStore interface {
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
	GetProposal(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error)
	GetReview(ctx context.Context, projectID, reviewerID uuid.UUID) (*models.Review, error)
	CreateReview(ctx context.Context, r *models.Review) error
	ListReviewsByProject(ctx context.Context, projectID uuid.UUID) ([]models.Review, error)
}

// UserDirectory resolves display names through the auth provider.
type UserDirectory interface {
	GetUserDisplayName(userID uuid.UUID) (string, error)
}

type ReviewService struct {
	store ReviewStore
	users UserDirectory
}

func NewReviewService(store ReviewStore, users UserDirectory) *ReviewService {
	return &ReviewService{store: store, users: users}
}

// CreateReview lets the client and the winning artisan review each other
// once per project, after the project is completed.
func (s *ReviewService) CreateReview(ctx context.Context, projectID, reviewerID uuid.UUID, req models.CreateReviewRequest) (*models.ReviewResponse, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrReviewCreateFailed
	}
	if project.Status != models.StatusCompleted {
		return nil, models.ErrProjectNotCompleted
	}

	revieweeID, err := s.resolveReviewee(ctx, project, reviewerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetReview(ctx, projectID, reviewerID)
	if err != nil {
		return nil, models.ErrReviewCreateFailed
	}
	if existing != nil {
		return nil, models.ErrReviewAlreadyExists
	}

	review := &models.Review{
		ProjectID:  projectID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    nullString(req.Comment),
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		logger.L().Error("review insert failed", zap.Error(err), zap.String("project_id", projectID.String()))
		return nil, models.ErrReviewCreateFailed
	}

	return s.toReviewResponse(review), nil
}

// resolveReviewee determines the counterpart: the client reviews the winning
// artisan and vice versa. Anyone else is not a participant.
func (s *ReviewService) resolveReviewee(ctx context.Context, project *models.Project, reviewerID uuid.UUID) (uuid.UUID, error) {
	if !project.AcceptedProposalID.Valid {
		return uuid.Nil, models.ErrRevieweeNotFound
	}
	proposal, err := s.store.GetProposal(ctx, project.AcceptedProposalID.UUID)
	if err != nil {
		return uuid.Nil, models.ErrRevieweeNotFound
	}

	switch reviewerID {
	case project.ClientID:
		return proposal.ArtisanID, nil
	case proposal.ArtisanID:
		return project.ClientID, nil
	default:
		return uuid.Nil, models.ErrReviewForbidden
	}
}

func (s *ReviewService) ListProjectReviews(ctx context.Context, projectID uuid.UUID) (*models.ReviewListResponse, error) {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProjectNotFound
		}
		return nil, models.ErrReviewCreateFailed
	}

	reviews, err := s.store.ListReviewsByProject(ctx, projectID)
	if err != nil {
		return nil, models.ErrReviewCreateFailed
	}

	out := make([]models.ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = *s.toReviewResponse(&reviews[i])
	}
	return &models.ReviewListResponse{Reviews: out}, nil
}

func (s *ReviewService) toReviewResponse(r *models.Review) *models.ReviewResponse {
	// Display-name resolution is best-effort; a failed lookup falls back to
	// a generic label and never fails the operation.
	name := fallbackReviewerName
	if s.users != nil {
		if resolved, err := s.users.GetUserDisplayName(r.ReviewerID); err == nil {
			name = resolved
		} else {
			logger.L().Warn("reviewer name lookup failed", zap.Error(err), zap.String("reviewer_id", r.ReviewerID.String()))
		}
	}

	return &models.ReviewResponse{
		ID:           r.ID.String(),
		ProjectID:    r.ProjectID.String(),
		ReviewerID:   r.ReviewerID.String(),
		RevieweeID:   r.RevieweeID.String(),
		ReviewerName: name,
		Rating:       r.Rating,
		Comment:      r.Comment.String,
		CreatedAt:    r.CreatedAt,
	}
}
