package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chairai-backend/internal/logger"
	"chairai-backend/internal/models"
)

type ImageStore interface {
	CreateGeneratedImage(ctx context.Context, img *models.GeneratedImage) error
	ListGeneratedImagesByUser(ctx context.Context, userID uuid.UUID) ([]models.GeneratedImage, error)
	CountGeneratedImagesToday(ctx context.Context, userID uuid.UUID) (int, error)
}

// ImageService records AI-generated images for later project creation. The
// generation call itself happens upstream; this service owns the registry and
// the daily quota.
type ImageService struct {
	store      ImageStore
	dailyQuota int
}

func NewImageService(store ImageStore, dailyQuota int) *ImageService {
	return &ImageService{store: store, dailyQuota: dailyQuota}
}

func (s *ImageService) RegisterImage(ctx context.Context, userID uuid.UUID, req models.RegisterImageRequest) (*models.ImageResponse, error) {
	count, err := s.store.CountGeneratedImagesToday(ctx, userID)
	if err != nil {
		return nil, models.ErrImageRegisterFailed
	}
	if count >= s.dailyQuota {
		return nil, models.ErrQuotaExceeded
	}

	img := &models.GeneratedImage{
		UserID:   userID,
		Prompt:   req.Prompt,
		ImageURL: req.ImageURL,
	}
	if err := s.store.CreateGeneratedImage(ctx, img); err != nil {
		logger.L().Error("image insert failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, models.ErrImageRegisterFailed
	}

	return toImageResponse(img), nil
}

func (s *ImageService) ListMyImages(ctx context.Context, userID uuid.UUID) ([]models.ImageResponse, error) {
	images, err := s.store.ListGeneratedImagesByUser(ctx, userID)
	if err != nil {
		return nil, models.ErrImageRegisterFailed
	}

	out := make([]models.ImageResponse, len(images))
	for i := range images {
		out[i] = *toImageResponse(&images[i])
	}
	return out, nil
}

func toImageResponse(img *models.GeneratedImage) *models.ImageResponse {
	return &models.ImageResponse{
		ID:        img.ID.String(),
		Prompt:    img.Prompt,
		ImageURL:  img.ImageURL,
		IsUsed:    img.IsUsed,
		CreatedAt: img.CreatedAt,
	}
}
