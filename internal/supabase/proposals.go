package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"chairai-backend/internal/models"
)

func (d *DatabaseClient) CreateProposal(ctx context.Context, p *models.Proposal) error {
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO proposals (project_id, artisan_id, price, message, attachment_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, p.ProjectID, p.ArtisanID, p.Price, p.Message, p.AttachmentURL).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetProposal(ctx context.Context, proposalID uuid.UUID) (*models.Proposal, error) {
	var p models.Proposal
	err := d.db.QueryRowContext(ctx, `
		SELECT id, project_id, artisan_id, price, message, attachment_url, created_at
		FROM proposals
		WHERE id = $1
	`, proposalID).Scan(&p.ID, &p.ProjectID, &p.ArtisanID, &p.Price, &p.Message, &p.AttachmentURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (d *DatabaseClient) ProposalExists(ctx context.Context, projectID, artisanID uuid.UUID) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM proposals WHERE project_id = $1 AND artisan_id = $2)`,
		projectID, artisanID).Scan(&exists)
	return exists, err
}

func (d *DatabaseClient) ListProposalsByProject(ctx context.Context, projectID uuid.UUID) ([]models.Proposal, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT pr.id, pr.project_id, pr.artisan_id, pr.price, pr.message, pr.attachment_url, pr.created_at,
		       ap.company_name
		FROM proposals pr
		LEFT JOIN artisan_profiles ap ON ap.user_id = pr.artisan_id
		WHERE pr.project_id = $1
		ORDER BY pr.created_at ASC
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []models.Proposal
	for rows.Next() {
		var p models.Proposal
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.ArtisanID, &p.Price, &p.Message,
			&p.AttachmentURL, &p.CreatedAt, &p.ArtisanCompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (d *DatabaseClient) ListProposalsByArtisan(ctx context.Context, artisanID uuid.UUID) ([]models.Proposal, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, project_id, artisan_id, price, message, attachment_url, created_at
		FROM proposals
		WHERE artisan_id = $1
		ORDER BY created_at DESC
	`, artisanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []models.Proposal
	for rows.Next() {
		var p models.Proposal
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.ArtisanID, &p.Price, &p.Message,
			&p.AttachmentURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}
