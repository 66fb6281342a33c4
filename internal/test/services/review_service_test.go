package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chairai-backend/internal/models"
	"chairai-backend/internal/services"
)

// completedProject seeds a completed project with an accepted proposal and
// returns the project together with the winning artisan id.
func completedProject(store *fakeStore, clientID uuid.UUID) (*models.Project, uuid.UUID) {
	artisanID := uuid.New()
	project := seedProject(store, clientID, models.StatusCompleted)
	proposal := seedProposal(store, project.ID, artisanID, 1500)
	project.AcceptedProposalID = uuid.NullUUID{UUID: proposal.ID, Valid: true}
	project.AcceptedPrice = sql.NullFloat64{Float64: proposal.Price, Valid: true}
	return project, artisanID
}

func TestCreateReview_ClientReviewsArtisan(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project, artisanID := completedProject(store, clientID)
	directory := &fakeDirectory{names: map[uuid.UUID]string{clientID: "Anna Kowalska"}}
	svc := services.NewReviewService(store, directory)

	resp, err := svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 5, Comment: "Świetna robota"})

	require.NoError(t, err)
	assert.Equal(t, artisanID.String(), resp.RevieweeID)
	assert.Equal(t, clientID.String(), resp.ReviewerID)
	assert.Equal(t, "Anna Kowalska", resp.ReviewerName)
	assert.Equal(t, 5, resp.Rating)
}

func TestCreateReview_ArtisanReviewsClient(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project, artisanID := completedProject(store, clientID)
	svc := services.NewReviewService(store, &fakeDirectory{})

	resp, err := svc.CreateReview(context.Background(), project.ID, artisanID, models.CreateReviewRequest{Rating: 4})

	require.NoError(t, err)
	assert.Equal(t, clientID.String(), resp.RevieweeID)
}

func TestCreateReview_FallbackReviewerName(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project, _ := completedProject(store, clientID)
	svc := services.NewReviewService(store, &fakeDirectory{lookupErr: sql.ErrConnDone})

	resp, err := svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 3})

	require.NoError(t, err)
	assert.Equal(t, "Użytkownik", resp.ReviewerName)
}

func TestCreateReview_ProjectNotCompleted(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project := seedProject(store, clientID, models.StatusInProgress)
	svc := services.NewReviewService(store, &fakeDirectory{})

	_, err := svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 5})

	assert.ErrorIs(t, err, models.ErrProjectNotCompleted)
}

func TestCreateReview_Bystander(t *testing.T) {
	store := newFakeStore()
	project, _ := completedProject(store, uuid.New())
	svc := services.NewReviewService(store, &fakeDirectory{})

	_, err := svc.CreateReview(context.Background(), project.ID, uuid.New(), models.CreateReviewRequest{Rating: 5})

	assert.ErrorIs(t, err, models.ErrReviewForbidden)
}

func TestCreateReview_NoAcceptedProposal(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project := seedProject(store, clientID, models.StatusCompleted)
	svc := services.NewReviewService(store, &fakeDirectory{})

	_, err := svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 5})

	assert.ErrorIs(t, err, models.ErrRevieweeNotFound)
}

func TestCreateReview_Duplicate(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project, _ := completedProject(store, clientID)
	svc := services.NewReviewService(store, &fakeDirectory{})

	_, err := svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 5})
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, models.ErrReviewAlreadyExists)
}

func TestCreateReview_BothSidesReviewOnce(t *testing.T) {
	store := newFakeStore()
	clientID := uuid.New()
	project, artisanID := completedProject(store, clientID)
	svc := services.NewReviewService(store, &fakeDirectory{})

	_, err := svc.CreateReview(context.Background(), project.ID, clientID, models.CreateReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = svc.CreateReview(context.Background(), project.ID, artisanID, models.CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	resp, err := svc.ListProjectReviews(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Len(t, resp.Reviews, 2)
}

func TestListProjectReviews_ProjectNotFound(t *testing.T) {
	svc := services.NewReviewService(newFakeStore(), &fakeDirectory{})

	_, err := svc.ListProjectReviews(context.Background(), uuid.New())

	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}
