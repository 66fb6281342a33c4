package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Proposal struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	ArtisanID     uuid.UUID
	Price         float64
	Message       sql.NullString
	AttachmentURL sql.NullString
	CreatedAt     time.Time

	// Company name of the submitting artisan, joined on listings.
	ArtisanCompanyName sql.NullString
}
