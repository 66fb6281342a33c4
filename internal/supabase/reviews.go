package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chairai-backend/internal/models"
)

func (d *DatabaseClient) CreateReview(ctx context.Context, r *models.Review) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO reviews (project_id, reviewer_id, reviewee_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.ProjectID, r.ReviewerID, r.RevieweeID, r.Rating, r.Comment).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetReview returns the review for the (project, reviewer) pair, or
// (nil, nil) when none exists.
func (d *DatabaseClient) GetReview(ctx context.Context, projectID, reviewerID uuid.UUID) (*models.Review, error) {
	var r models.Review
	err := d.db.QueryRowContext(ctx, `
		SELECT id, project_id, reviewer_id, reviewee_id, rating, comment, created_at
		FROM reviews
		WHERE project_id = $1 AND reviewer_id = $2
	`, projectID, reviewerID).Scan(&r.ID, &r.ProjectID, &r.ReviewerID, &r.RevieweeID, &r.Rating, &r.Comment, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &r, nil
}

func (d *DatabaseClient) ListReviewsByProject(ctx context.Context, projectID uuid.UUID) ([]models.Review, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, project_id, reviewer_id, reviewee_id, rating, comment, created_at
		FROM reviews
		WHERE project_id = $1
		ORDER BY created_at ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.ReviewerID, &r.RevieweeID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (d *DatabaseClient) GetRatingStats(ctx context.Context, revieweeID uuid.UUID) (float64, int, error) {
	var (
		avg   sql.NullFloat64
		count int
	)
	err := d.db.QueryRowContext(ctx, `
		SELECT AVG(rating), COUNT(*)
		FROM reviews
		WHERE reviewee_id = $1
	`, revieweeID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get rating stats: %w", err)
	}
	return avg.Float64, count, nil
}
