package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"chairai-backend/internal/models"
)

func (d *DatabaseClient) CreateGeneratedImage(ctx context.Context, img *models.GeneratedImage) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO generated_images (user_id, prompt, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, is_used, created_at
	`, img.UserID, img.Prompt, img.ImageURL).Scan(&img.ID, &img.IsUsed, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create generated image: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetGeneratedImage(ctx context.Context, imageID uuid.UUID) (*models.GeneratedImage, error) {
	var img models.GeneratedImage
	err := d.db.QueryRowContext(ctx, `
		SELECT id, user_id, prompt, image_url, is_used, created_at
		FROM generated_images
		WHERE id = $1
	`, imageID).Scan(&img.ID, &img.UserID, &img.Prompt, &img.ImageURL, &img.IsUsed, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (d *DatabaseClient) ListGeneratedImagesByUser(ctx context.Context, userID uuid.UUID) ([]models.GeneratedImage, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, user_id, prompt, image_url, is_used, created_at
		FROM generated_images
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated images: %w", err)
	}
	defer rows.Close()

	var images []models.GeneratedImage
	for rows.Next() {
		var img models.GeneratedImage
		if err := rows.Scan(&img.ID, &img.UserID, &img.Prompt, &img.ImageURL, &img.IsUsed, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// CountGeneratedImagesToday counts images the user created since local
// midnight; used for the daily generation quota.
func (d *DatabaseClient) CountGeneratedImagesToday(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM generated_images
		WHERE user_id = $1 AND created_at >= date_trunc('day', NOW())
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count generated images: %w", err)
	}
	return count, nil
}
