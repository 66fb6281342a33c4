package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chairai-backend/internal/models"
)

// GetUserIDByNIP returns the owner of the NIP, or uuid.Nil when the NIP is
// not registered.
func (d *DatabaseClient) GetUserIDByNIP(ctx context.Context, nip string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := d.db.QueryRowContext(ctx,
		`SELECT user_id FROM artisan_profiles WHERE nip = $1`, nip).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up NIP: %w", err)
	}
	return userID, nil
}

func (d *DatabaseClient) UpsertProfile(ctx context.Context, p *models.ArtisanProfile) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO artisan_profiles (user_id, company_name, nip, is_public, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET company_name = EXCLUDED.company_name,
		    nip = EXCLUDED.nip,
		    is_public = EXCLUDED.is_public,
		    updated_at = NOW()
		RETURNING updated_at
	`, p.UserID, p.CompanyName, p.NIP, p.IsPublic).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetProfile(ctx context.Context, userID uuid.UUID) (*models.ArtisanProfile, error) {
	var p models.ArtisanProfile
	err := d.db.QueryRowContext(ctx, `
		SELECT user_id, company_name, nip, is_public, updated_at
		FROM artisan_profiles
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.CompanyName, &p.NIP, &p.IsPublic, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DatabaseClient) ListArtisanSpecializations(ctx context.Context, artisanID uuid.UUID) ([]models.Specialization, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT s.id, s.name
		FROM artisan_specializations asp
		JOIN specializations s ON s.id = asp.specialization_id
		WHERE asp.artisan_id = $1
		ORDER BY s.name
	`, artisanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artisan specializations: %w", err)
	}
	defer rows.Close()

	var specs []models.Specialization
	for rows.Next() {
		var s models.Specialization
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan specialization: %w", err)
		}
		specs = append(specs, s)
	}
	return specs, rows.Err()
}

// AddArtisanSpecializations links the artisan to each specialization id.
// Repeated ids are no-ops via ON CONFLICT DO NOTHING.
func (d *DatabaseClient) AddArtisanSpecializations(ctx context.Context, artisanID uuid.UUID, specializationIDs []uuid.UUID) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, specID := range specializationIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO artisan_specializations (artisan_id, specialization_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, artisanID, specID); err != nil {
			return fmt.Errorf("failed to add specialization: %w", err)
		}
	}
	return tx.Commit()
}

func (d *DatabaseClient) RemoveArtisanSpecialization(ctx context.Context, artisanID, specializationID uuid.UUID) error {
	_, err := d.db.ExecContext(ctx, `
		DELETE FROM artisan_specializations
		WHERE artisan_id = $1 AND specialization_id = $2
	`, artisanID, specializationID)
	if err != nil {
		return fmt.Errorf("failed to remove specialization: %w", err)
	}
	return nil
}

func (d *DatabaseClient) InsertPortfolioImage(ctx context.Context, img *models.PortfolioImage) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO portfolio_images (artisan_id, image_url, storage_path)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, img.ArtisanID, img.ImageURL, img.StoragePath).Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio image: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetPortfolioImage(ctx context.Context, imageID uuid.UUID) (*models.PortfolioImage, error) {
	var img models.PortfolioImage
	err := d.db.QueryRowContext(ctx, `
		SELECT id, artisan_id, image_url, storage_path, created_at
		FROM portfolio_images
		WHERE id = $1
	`, imageID).Scan(&img.ID, &img.ArtisanID, &img.ImageURL, &img.StoragePath, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (d *DatabaseClient) ListPortfolioImages(ctx context.Context, artisanID uuid.UUID) ([]models.PortfolioImage, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, artisan_id, image_url, storage_path, created_at
		FROM portfolio_images
		WHERE artisan_id = $1
		ORDER BY created_at DESC
	`, artisanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio images: %w", err)
	}
	defer rows.Close()

	var images []models.PortfolioImage
	for rows.Next() {
		var img models.PortfolioImage
		if err := rows.Scan(&img.ID, &img.ArtisanID, &img.ImageURL, &img.StoragePath, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (d *DatabaseClient) CountPortfolioImages(ctx context.Context, artisanID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM portfolio_images WHERE artisan_id = $1`, artisanID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count portfolio images: %w", err)
	}
	return count, nil
}

func (d *DatabaseClient) DeletePortfolioImage(ctx context.Context, imageID uuid.UUID) error {
	_, err := d.db.ExecContext(ctx,
		`DELETE FROM portfolio_images WHERE id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio image: %w", err)
	}
	return nil
}
