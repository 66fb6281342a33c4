package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

func seedProfile(store *fakeStore, userID uuid.UUID, isPublic bool) *models.ArtisanProfile {
	profile := &models.ArtisanProfile{
		UserID:      userID,
		CompanyName: "Stolarnia Dębowa",
		NIP:         "1234567890",
		IsPublic:    isPublic,
		UpdatedAt:   time.Now(),
	}
	store.profiles[userID] = profile
	store.nips[profile.NIP] = userID
	return profile
}

func seedPortfolioImages(store *fakeStore, artisanID uuid.UUID, n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		img := &models.PortfolioImage{
			ID:          uuid.New(),
			ArtisanID:   artisanID,
			ImageURL:    "https://storage.example.com/img.png",
			StoragePath: "users/" + artisanID.String() + "/portfolio/img.png",
			CreatedAt:   time.Now(),
		}
		store.portfolio[img.ID] = img
		ids[i] = img.ID
	}
	return ids
}

func TestUpsertProfile_CreatesProfile(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	svc := services.NewProfileService(store, &fakeStorage{})

	resp, err := svc.UpsertProfile(context.Background(), userID, models.UpsertProfileRequest{
		CompanyName: "Meble Jan",
		NIP:         "9876543210",
		IsPublic:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, "Meble Jan", resp.CompanyName)
	assert.True(t, resp.IsPublic)
	assert.NotNil(t, store.profiles[userID])
}

func TestUpsertProfile_OwnNIPIsIdempotent(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	seedProfile(store, userID, true)
	svc := services.NewProfileService(store, &fakeStorage{})

	_, err := svc.UpsertProfile(context.Background(), userID, models.UpsertProfileRequest{
		CompanyName: "Stolarnia Dębowa II",
		NIP:         "1234567890",
	})

	assert.NoError(t, err)
}

func TestUpsertProfile_NIPConflict(t *testing.T) {
	store := newFakeStore()
	seedProfile(store, uuid.New(), true)
	svc := services.NewProfileService(store, &fakeStorage{})

	_, err := svc.UpsertProfile(context.Background(), uuid.New(), models.UpsertProfileRequest{
		CompanyName: "Inna Firma",
		NIP:         "1234567890",
	})

	assert.ErrorIs(t, err, models.ErrNIPConflict)
}

func TestGetProfile_PublicVisibleToAnyone(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	seedProfile(store, userID, true)
	seedPortfolioImages(store, userID, 3)
	store.ratingAvg = 4.5
	store.ratingCount = 12
	svc := services.NewProfileService(store, &fakeStorage{})

	resp, err := svc.GetProfile(context.Background(), userID, uuid.New())

	require.NoError(t, err)
	assert.Len(t, resp.Portfolio, 3)
	assert.Equal(t, 4.5, resp.RatingAvg)
	assert.Equal(t, 12, resp.RatingCount)
}

func TestGetProfile_PrivateOnlyOwner(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	seedProfile(store, userID, false)
	svc := services.NewProfileService(store, &fakeStorage{})

	_, err := svc.GetProfile(context.Background(), userID, userID)
	assert.NoError(t, err)

	_, err = svc.GetProfile(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, models.ErrProfileForbidden)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := services.NewProfileService(newFakeStore(), &fakeStorage{})

	_, err := svc.GetProfile(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, models.ErrProfileNotFound)
}

func TestAddSpecializations_Success(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	specID := uuid.New()
	store.specs[specID] = models.Specialization{ID: specID, Name: "krzesła"}
	svc := services.NewProfileService(store, &fakeStorage{})

	// Duplicated input ids collapse to one link.
	resp, err := svc.AddSpecializations(context.Background(), userID, models.AddSpecializationsRequest{
		SpecializationIDs: []string{specID.String(), specID.String()},
	})

	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "krzesła", resp[0].Name)
	assert.Len(t, store.artisanSpecs[userID], 1)
}

func TestAddSpecializations_UnknownID(t *testing.T) {
	store := newFakeStore()
	svc := services.NewProfileService(store, &fakeStorage{})

	_, err := svc.AddSpecializations(context.Background(), uuid.New(), models.AddSpecializationsRequest{
		SpecializationIDs: []string{uuid.New().String()},
	})

	assert.ErrorIs(t, err, models.ErrSpecializationNotFound)
}

func TestRemoveSpecialization(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	specID := uuid.New()
	store.specs[specID] = models.Specialization{ID: specID, Name: "stoły"}
	store.artisanSpecs[userID] = []uuid.UUID{specID}
	svc := services.NewProfileService(store, &fakeStorage{})

	err := svc.RemoveSpecialization(context.Background(), userID, specID)

	require.NoError(t, err)
	assert.Empty(t, store.artisanSpecs[userID])
}

func TestUploadPortfolioImage_Success(t *testing.T) {
	store := newFakeStore()
	storage := &fakeStorage{}
	userID := uuid.New()
	svc := services.NewProfileService(store, storage)

	resp, err := svc.UploadPortfolioImage(context.Background(), userID, "warsztat.jpg", []byte("data"), "image/jpeg")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ImageURL)
	assert.Len(t, storage.uploaded, 1)
	assert.Len(t, store.portfolio, 1)
}

func TestUploadPortfolioImage_CompensatesOnInsertFailure(t *testing.T) {
	store := newFakeStore()
	store.insertPortfolioErr = assert.AnError
	storage := &fakeStorage{}
	svc := services.NewProfileService(store, storage)

	_, err := svc.UploadPortfolioImage(context.Background(), uuid.New(), "warsztat.jpg", []byte("data"), "image/jpeg")

	assert.ErrorIs(t, err, models.ErrProfileError)
	// The orphaned object gets removed from storage.
	require.Len(t, storage.uploaded, 1)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, storage.uploaded[0], storage.deleted[0])
}

func TestDeletePortfolioImage_PublicFloor(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	seedProfile(store, userID, true)
	ids := seedPortfolioImages(store, userID, 5)
	svc := services.NewProfileService(store, &fakeStorage{})

	err := svc.DeletePortfolioImage(context.Background(), userID, ids[0])

	assert.ErrorIs(t, err, models.ErrPortfolioMinimum)
	assert.Len(t, store.portfolio, 5)
}

func TestDeletePortfolioImage_AboveFloor(t *testing.T) {
	store := newFakeStore()
	storage := &fakeStorage{}
	userID := uuid.New()
	seedProfile(store, userID, true)
	ids := seedPortfolioImages(store, userID, 6)
	svc := services.NewProfileService(store, storage)

	err := svc.DeletePortfolioImage(context.Background(), userID, ids[0])

	require.NoError(t, err)
	assert.Len(t, store.portfolio, 5)
	assert.Len(t, storage.deleted, 1)
}

func TestDeletePortfolioImage_PrivateProfileNoFloor(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	seedProfile(store, userID, false)
	ids := seedPortfolioImages(store, userID, 2)
	svc := services.NewProfileService(store, &fakeStorage{})

	err := svc.DeletePortfolioImage(context.Background(), userID, ids[0])

	require.NoError(t, err)
	assert.Len(t, store.portfolio, 1)
}

func TestDeletePortfolioImage_ForeignImage(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	seedProfile(store, owner, false)
	ids := seedPortfolioImages(store, owner, 1)
	svc := services.NewProfileService(store, &fakeStorage{})

	err := svc.DeletePortfolioImage(context.Background(), uuid.New(), ids[0])

	assert.ErrorIs(t, err, models.ErrPortfolioImageNotFound)
}

func TestDeletePortfolioImage_StorageFailureIsNotFatal(t *testing.T) {
	store := newFakeStore()
	storage := &fakeStorage{deleteErr: assert.AnError}
	userID := uuid.New()
	seedProfile(store, userID, false)
	ids := seedPortfolioImages(store, userID, 2)
	svc := services.NewProfileService(store, storage)

	err := svc.DeletePortfolioImage(context.Background(), userID, ids[0])

	assert.NoError(t, err)
	assert.Len(t, store.portfolio, 1)
}
