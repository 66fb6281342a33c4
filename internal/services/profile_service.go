package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chairai-backend/internal/logger"
	"chairai-backend/internal/models"
)

type ProfileStore interface {
	GetUserIDByNIP(ctx context.Context, nip string) (uuid.UUID, error)
	UpsertProfile(ctx context.Context, p *models.ArtisanProfile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.ArtisanProfile, error)
	ListArtisanSpecializations(ctx context.Context, artisanID uuid.UUID) ([]models.Specialization, error)
	ListSpecializationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Specialization, error)
	AddArtisanSpecializations(ctx context.Context, artisanID uuid.UUID, specializationIDs []uuid.UUID) error
	RemoveArtisanSpecialization(ctx context.Context, artisanID, specializationID uuid.UUID) error
	InsertPortfolioImage(ctx context.Context, img *models.PortfolioImage) error
	GetPortfolioImage(ctx context.Context, imageID uuid.UUID) (*models.PortfolioImage, error)
	ListPortfolioImages(ctx context.Context, artisanID uuid.UUID) ([]models.PortfolioImage, error)
	CountPortfolioImages(ctx context.Context, artisanID uuid.UUID) (int, error)
	DeletePortfolioImage(ctx context.Context, imageID uuid.UUID) error
	GetRatingStats(ctx context.Context, revieweeID uuid.UUID) (float64, int, error)
}

// ObjectStorage is the slice of the storage client the profile service uses.
type ObjectStorage interface {
	UploadPortfolioImage(userID uuid.UUID, filename string, data []byte, contentType string) (string, string, error)
	DeleteFile(storagePath string) error
}

type ProfileService struct {
	store   ProfileStore
	storage ObjectStorage
}

func NewProfileService(store ProfileStore, storage ObjectStorage) *ProfileService {
	return &ProfileService{store: store, storage: storage}
}

// UpsertProfile creates or updates the artisan profile. The NIP must not be
// registered to a different account.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, req models.UpsertProfileRequest) (*models.ProfileResponse, error) {
	owner, err := s.store.GetUserIDByNIP(ctx, req.NIP)
	if err != nil {
		logger.L().Error("NIP lookup failed", zap.Error(err))
		return nil, models.ErrNIPCheckError
	}
	if owner != uuid.Nil && owner != userID {
		return nil, models.ErrNIPConflict
	}

	profile := &models.ArtisanProfile{
		UserID:      userID,
		CompanyName: req.CompanyName,
		NIP:         req.NIP,
		IsPublic:    req.IsPublic,
	}
	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		logger.L().Error("profile upsert failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, models.ErrUpsertError
	}

	// Specializations, portfolio and rating aggregates are managed and read
	// through separate calls; the upsert response carries empty placeholders.
	return &models.ProfileResponse{
		UserID:          profile.UserID.String(),
		CompanyName:     profile.CompanyName,
		NIP:             profile.NIP,
		IsPublic:        profile.IsPublic,
		Specializations: []models.CatalogItemResponse{},
		Portfolio:       []models.PortfolioImageResponse{},
		UpdatedAt:       profile.UpdatedAt,
	}, nil
}

// GetProfile assembles the full profile view. Non-public profiles are only
// visible to their owner.
func (s *ProfileService) GetProfile(ctx context.Context, profileUserID, requesterID uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.store.GetProfile(ctx, profileUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProfileNotFound
		}
		return nil, models.ErrProfileError
	}
	if !profile.IsPublic && profile.UserID != requesterID {
		return nil, models.ErrProfileForbidden
	}

	specs, err := s.store.ListArtisanSpecializations(ctx, profileUserID)
	if err != nil {
		return nil, models.ErrProfileError
	}
	portfolio, err := s.store.ListPortfolioImages(ctx, profileUserID)
	if err != nil {
		return nil, models.ErrProfileError
	}
	ratingAvg, ratingCount, err := s.store.GetRatingStats(ctx, profileUserID)
	if err != nil {
		return nil, models.ErrProfileError
	}

	resp := &models.ProfileResponse{
		UserID:          profile.UserID.String(),
		CompanyName:     profile.CompanyName,
		NIP:             profile.NIP,
		IsPublic:        profile.IsPublic,
		Specializations: make([]models.CatalogItemResponse, len(specs)),
		Portfolio:       make([]models.PortfolioImageResponse, len(portfolio)),
		RatingAvg:       ratingAvg,
		RatingCount:     ratingCount,
		UpdatedAt:       profile.UpdatedAt,
	}
	for i, sp := range specs {
		resp.Specializations[i] = models.CatalogItemResponse{ID: sp.ID.String(), Name: sp.Name}
	}
	for i, img := range portfolio {
		resp.Portfolio[i] = models.PortfolioImageResponse{
			ID:        img.ID.String(),
			ImageURL:  img.ImageURL,
			CreatedAt: img.CreatedAt,
		}
	}
	return resp, nil
}

// AddSpecializations links the artisan to every id in the request. All ids
// must exist; repeated additions are idempotent.
func (s *ProfileService) AddSpecializations(ctx context.Context, userID uuid.UUID, req models.AddSpecializationsRequest) ([]models.CatalogItemResponse, error) {
	ids := make([]uuid.UUID, 0, len(req.SpecializationIDs))
	seen := make(map[uuid.UUID]bool)
	for _, raw := range req.SpecializationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, models.ErrSpecializationNotFound
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	specs, err := s.store.ListSpecializationsByIDs(ctx, ids)
	if err != nil {
		logger.L().Error("specialization lookup failed", zap.Error(err))
		return nil, models.ErrProfileError
	}
	if len(specs) < len(ids) {
		return nil, models.ErrSpecializationNotFound
	}

	if err := s.store.AddArtisanSpecializations(ctx, userID, ids); err != nil {
		logger.L().Error("specialization link failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, models.ErrProfileError
	}

	out := make([]models.CatalogItemResponse, len(specs))
	for i, sp := range specs {
		out[i] = models.CatalogItemResponse{ID: sp.ID.String(), Name: sp.Name}
	}
	return out, nil
}

func (s *ProfileService) RemoveSpecialization(ctx context.Context, userID, specializationID uuid.UUID) error {
	if err := s.store.RemoveArtisanSpecialization(ctx, userID, specializationID); err != nil {
		logger.L().Error("specialization unlink failed", zap.Error(err), zap.String("user_id", userID.String()))
		return models.ErrProfileError
	}
	return nil
}

// UploadPortfolioImage uploads the binary first and only then writes the
// metadata row; a failed insert triggers a compensating storage delete.
func (s *ProfileService) UploadPortfolioImage(ctx context.Context, userID uuid.UUID, filename string, data []byte, contentType string) (*models.PortfolioImageResponse, error) {
	// Prefix with a fresh uuid so repeated uploads of the same file never collide.
	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))

	storagePath, publicURL, err := s.storage.UploadPortfolioImage(userID, storedName, data, contentType)
	if err != nil {
		logger.L().Error("portfolio upload failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, models.ErrProfileError
	}

	img := &models.PortfolioImage{
		ArtisanID:   userID,
		ImageURL:    publicURL,
		StoragePath: storagePath,
	}
	if err := s.store.InsertPortfolioImage(ctx, img); err != nil {
		if delErr := s.storage.DeleteFile(storagePath); delErr != nil {
			logger.L().Warn("compensating storage delete failed", zap.Error(delErr), zap.String("path", storagePath))
		}
		logger.L().Error("portfolio metadata insert failed", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, models.ErrProfileError
	}

	return &models.PortfolioImageResponse{
		ID:        img.ID.String(),
		ImageURL:  img.ImageURL,
		CreatedAt: img.CreatedAt,
	}, nil
}

// DeletePortfolioImage removes an owned image. Public profiles may not drop
// below the minimum portfolio size.
func (s *ProfileService) DeletePortfolioImage(ctx context.Context, userID, imageID uuid.UUID) error {
	img, err := s.store.GetPortfolioImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrPortfolioImageNotFound
		}
		return models.ErrProfileError
	}
	if img.ArtisanID != userID {
		return models.ErrPortfolioImageNotFound
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return models.ErrProfileError
	}
	if profile.IsPublic {
		count, err := s.store.CountPortfolioImages(ctx, userID)
		if err != nil {
			return models.ErrProfileError
		}
		if count <= models.MinPublicPortfolioImages {
			return models.ErrPortfolioMinimum
		}
	}

	if err := s.store.DeletePortfolioImage(ctx, imageID); err != nil {
		return models.ErrProfileError
	}

	// Storage cleanup is best-effort; an orphaned object never fails the delete.
	if err := s.storage.DeleteFile(img.StoragePath); err != nil {
		logger.L().Warn("storage object delete failed", zap.Error(err), zap.String("path", img.StoragePath))
	}
	return nil
}
