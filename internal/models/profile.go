package models

import (
	"time"

	"github.com/google/uuid"
)

// MinPublicPortfolioImages is the floor enforced on public profiles: a delete
// that would leave fewer images than this is rejected while is_public is true.
const MinPublicPortfolioImages = 5

type ArtisanProfile struct {
	UserID      uuid.UUID
	CompanyName string
	NIP         string
	IsPublic    bool
	UpdatedAt   time.Time

	Specializations []Specialization
	Portfolio       []PortfolioImage
	RatingAvg       float64
	RatingCount     int
}

type Specialization struct {
	ID   uuid.UUID
	Name string
}

type PortfolioImage struct {
	ID          uuid.UUID
	ArtisanID   uuid.UUID
	ImageURL    string
	StoragePath string
	CreatedAt   time.Time
}
