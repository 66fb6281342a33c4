package services_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"chairai-backend/internal/models"
)

// fakeStore is an in-memory stand-in for the database client. It implements
// every store interface the services consume so one fixture serves all tests.
type fakeStore struct {
	images   map[uuid.UUID]*models.GeneratedImage
	projects map[uuid.UUID]*models.Project

	proposals map[uuid.UUID]*models.Proposal
	reviews   map[string]*models.Review

	categories map[uuid.UUID]bool
	materials  map[uuid.UUID]bool

	specs        map[uuid.UUID]models.Specialization
	artisanSpecs map[uuid.UUID][]uuid.UUID
	profiles     map[uuid.UUID]*models.ArtisanProfile
	portfolio    map[uuid.UUID]*models.PortfolioImage
	nips         map[string]uuid.UUID

	imagesToday int
	ratingAvg   float64
	ratingCount int

	// Error overrides for failure-path tests.
	createProjectErr   error
	acceptProposalErr  error
	insertPortfolioErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		images:       make(map[uuid.UUID]*models.GeneratedImage),
		projects:     make(map[uuid.UUID]*models.Project),
		proposals:    make(map[uuid.UUID]*models.Proposal),
		reviews:      make(map[string]*models.Review),
		categories:   make(map[uuid.UUID]bool),
		materials:    make(map[uuid.UUID]bool),
		specs:        make(map[uuid.UUID]models.Specialization),
		artisanSpecs: make(map[uuid.UUID][]uuid.UUID),
		profiles:     make(map[uuid.UUID]*models.ArtisanProfile),
		portfolio:    make(map[uuid.UUID]*models.PortfolioImage),
		nips:         make(map[string]uuid.UUID),
	}
}

func reviewKey(projectID, reviewerID uuid.UUID) string {
	return projectID.String() + "|" + reviewerID.String()
}

// Generated images

func (f *fakeStore) CreateGeneratedImage(_ context.Context, img *models.GeneratedImage) error {
	img.ID = uuid.New()
	img.CreatedAt = time.Now()
	f.images[img.ID] = img
	return nil
}

func (f *fakeStore) GetGeneratedImage(_ context.Context, imageID uuid.UUID) (*models.GeneratedImage, error) {
	img, ok := f.images[imageID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return img, nil
}

func (f *fakeStore) ListGeneratedImagesByUser(_ context.Context, userID uuid.UUID) ([]models.GeneratedImage, error) {
	var out []models.GeneratedImage
	for _, img := range f.images {
		if img.UserID == userID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (f *fakeStore) CountGeneratedImagesToday(_ context.Context, _ uuid.UUID) (int, error) {
	return f.imagesToday, nil
}

// Catalog

func (f *fakeStore) CategoryExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.categories[id], nil
}

func (f *fakeStore) MaterialExists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.materials[id], nil
}

func (f *fakeStore) ListSpecializationsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Specialization, error) {
	var out []models.Specialization
	for _, id := range ids {
		if sp, ok := f.specs[id]; ok {
			out = append(out, sp)
		}
	}
	return out, nil
}

// Projects

func (f *fakeStore) CreateProject(_ context.Context, p *models.Project) error {
	if f.createProjectErr != nil {
		return f.createProjectErr
	}
	p.ID = uuid.New()
	p.Status = models.StatusOpen
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.projects[p.ID] = p
	return nil
}

func (f *fakeStore) GetProject(_ context.Context, projectID uuid.UUID) (*models.Project, error) {
	p, ok := f.projects[projectID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) GetProjectByImageID(_ context.Context, imageID uuid.UUID) (*models.Project, error) {
	for _, p := range f.projects {
		if p.GeneratedImageID == imageID {
			return p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) ListProjects(_ context.Context, clientID *uuid.UUID, filters models.ProjectFilters, limit, offset int) ([]models.Project, int, error) {
	var all []models.Project
	for _, p := range f.projects {
		if clientID != nil && p.ClientID != *clientID {
			continue
		}
		if filters.Status != "" && string(p.Status) != filters.Status {
			continue
		}
		all = append(all, *p)
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (f *fakeStore) CountProposals(_ context.Context, projectID uuid.UUID) (int, error) {
	count := 0
	for _, p := range f.proposals {
		if p.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) AcceptProposal(_ context.Context, projectID, proposalID uuid.UUID, price float64) (time.Time, error) {
	if f.acceptProposalErr != nil {
		return time.Time{}, f.acceptProposalErr
	}
	p, ok := f.projects[projectID]
	if !ok || p.Status != models.StatusOpen {
		return time.Time{}, sql.ErrNoRows
	}
	p.Status = models.StatusInProgress
	p.AcceptedProposalID = uuid.NullUUID{UUID: proposalID, Valid: true}
	p.AcceptedPrice = sql.NullFloat64{Float64: price, Valid: true}
	p.UpdatedAt = time.Now()
	return p.UpdatedAt, nil
}

func (f *fakeStore) UpdateProjectStatus(_ context.Context, projectID uuid.UUID, status models.ProjectStatus) (time.Time, error) {
	p, ok := f.projects[projectID]
	if !ok {
		return time.Time{}, sql.ErrNoRows
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return p.UpdatedAt, nil
}

// Proposals

func (f *fakeStore) CreateProposal(_ context.Context, p *models.Proposal) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	f.proposals[p.ID] = p
	return nil
}

func (f *fakeStore) GetProposal(_ context.Context, proposalID uuid.UUID) (*models.Proposal, error) {
	p, ok := f.proposals[proposalID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) ProposalExists(_ context.Context, projectID, artisanID uuid.UUID) (bool, error) {
	for _, p := range f.proposals {
		if p.ProjectID == projectID && p.ArtisanID == artisanID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ListProposalsByProject(_ context.Context, projectID uuid.UUID) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range f.proposals {
		if p.ProjectID == projectID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListProposalsByArtisan(_ context.Context, artisanID uuid.UUID) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range f.proposals {
		if p.ArtisanID == artisanID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// Reviews

func (f *fakeStore) CreateReview(_ context.Context, r *models.Review) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.reviews[reviewKey(r.ProjectID, r.ReviewerID)] = r
	return nil
}

func (f *fakeStore) GetReview(_ context.Context, projectID, reviewerID uuid.UUID) (*models.Review, error) {
	return f.reviews[reviewKey(projectID, reviewerID)], nil
}

func (f *fakeStore) ListReviewsByProject(_ context.Context, projectID uuid.UUID) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProjectID == projectID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetRatingStats(_ context.Context, _ uuid.UUID) (float64, int, error) {
	return f.ratingAvg, f.ratingCount, nil
}

// Profiles

func (f *fakeStore) GetUserIDByNIP(_ context.Context, nip string) (uuid.UUID, error) {
	return f.nips[nip], nil
}

func (f *fakeStore) UpsertProfile(_ context.Context, p *models.ArtisanProfile) error {
	p.UpdatedAt = time.Now()
	f.profiles[p.UserID] = p
	f.nips[p.NIP] = p.UserID
	return nil
}

func (f *fakeStore) GetProfile(_ context.Context, userID uuid.UUID) (*models.ArtisanProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) ListArtisanSpecializations(_ context.Context, artisanID uuid.UUID) ([]models.Specialization, error) {
	var out []models.Specialization
	for _, id := range f.artisanSpecs[artisanID] {
		out = append(out, f.specs[id])
	}
	return out, nil
}

func (f *fakeStore) AddArtisanSpecializations(_ context.Context, artisanID uuid.UUID, specializationIDs []uuid.UUID) error {
	for _, id := range specializationIDs {
		linked := false
		for _, existing := range f.artisanSpecs[artisanID] {
			if existing == id {
				linked = true
				break
			}
		}
		if !linked {
			f.artisanSpecs[artisanID] = append(f.artisanSpecs[artisanID], id)
		}
	}
	return nil
}

func (f *fakeStore) RemoveArtisanSpecialization(_ context.Context, artisanID, specializationID uuid.UUID) error {
	kept := f.artisanSpecs[artisanID][:0]
	for _, id := range f.artisanSpecs[artisanID] {
		if id != specializationID {
			kept = append(kept, id)
		}
	}
	f.artisanSpecs[artisanID] = kept
	return nil
}

// Portfolio

func (f *fakeStore) InsertPortfolioImage(_ context.Context, img *models.PortfolioImage) error {
	if f.insertPortfolioErr != nil {
		return f.insertPortfolioErr
	}
	img.ID = uuid.New()
	img.CreatedAt = time.Now()
	f.portfolio[img.ID] = img
	return nil
}

func (f *fakeStore) GetPortfolioImage(_ context.Context, imageID uuid.UUID) (*models.PortfolioImage, error) {
	img, ok := f.portfolio[imageID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return img, nil
}

func (f *fakeStore) ListPortfolioImages(_ context.Context, artisanID uuid.UUID) ([]models.PortfolioImage, error) {
	var out []models.PortfolioImage
	for _, img := range f.portfolio {
		if img.ArtisanID == artisanID {
			out = append(out, *img)
		}
	}
	return out, nil
}

func (f *fakeStore) CountPortfolioImages(_ context.Context, artisanID uuid.UUID) (int, error) {
	count := 0
	for _, img := range f.portfolio {
		if img.ArtisanID == artisanID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) DeletePortfolioImage(_ context.Context, imageID uuid.UUID) error {
	delete(f.portfolio, imageID)
	return nil
}

// fakeStorage records uploads and deletes instead of talking to the bucket.
type fakeStorage struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStorage) UploadPortfolioImage(userID uuid.UUID, filename string, _ []byte, _ string) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	path := "users/" + userID.String() + "/portfolio/" + filename
	f.uploaded = append(f.uploaded, path)
	return path, "https://storage.example.com/" + path, nil
}

func (f *fakeStorage) DeleteFile(storagePath string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, storagePath)
	return nil
}

// fakeDirectory resolves display names from a static map.
type fakeDirectory struct {
	names     map[uuid.UUID]string
	lookupErr error
}

func (f *fakeDirectory) GetUserDisplayName(userID uuid.UUID) (string, error) {
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	if name, ok := f.names[userID]; ok {
		return name, nil
	}
	return "", sql.ErrNoRows
}
