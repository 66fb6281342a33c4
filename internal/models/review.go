package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Rating     int
	Comment    sql.NullString
	CreatedAt  time.Time
}
