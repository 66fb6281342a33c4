package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient  Role = "client"
	RoleArtisan Role = "artisan"
)

type ProjectStatus string

const (
	StatusOpen       ProjectStatus = "open"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusClosed     ProjectStatus = "closed"
)

// AllowedStatusTransitions is the directed transition table for project
// statuses. Acceptance is the only way into in_progress and is handled
// separately by AcceptProposal.
var AllowedStatusTransitions = map[ProjectStatus][]ProjectStatus{
	StatusOpen:       {StatusClosed},
	StatusInProgress: {StatusCompleted, StatusClosed},
	StatusCompleted:  {StatusClosed},
	StatusClosed:     {},
}

type Project struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	GeneratedImageID   uuid.UUID
	CategoryID         uuid.UUID
	MaterialID         uuid.UUID
	Dimensions         sql.NullString
	BudgetRange        sql.NullString
	Status             ProjectStatus
	AcceptedProposalID uuid.NullUUID
	AcceptedPrice      sql.NullFloat64
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined data, populated on detail reads.
	Category *Category
	Material *Material
	Image    *GeneratedImage
}

type GeneratedImage struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Prompt    string
	ImageURL  string
	IsUsed    bool
	CreatedAt time.Time
}

type Category struct {
	ID   uuid.UUID
	Name string
}

type Material struct {
	ID   uuid.UUID
	Name string
}

// ProjectFilters holds the optional equality filters for project listings.
type ProjectFilters struct {
	Status     string
	CategoryID string
	MaterialID string
}
