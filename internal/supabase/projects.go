package supabase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chairai-backend/internal/models"
)

const projectColumns = `
	p.id, p.client_id, p.generated_image_id, p.category_id, p.material_id,
	p.dimensions, p.budget_range, p.status, p.accepted_proposal_id, p.accepted_price,
	p.created_at, p.updated_at,
	c.id, c.name, m.id, m.name,
	g.id, g.user_id, g.prompt, g.image_url, g.is_used, g.created_at`

const projectJoins = `
	FROM projects p
	JOIN categories c ON c.id = p.category_id
	JOIN materials m ON m.id = p.material_id
	JOIN generated_images g ON g.id = p.generated_image_id`

func scanProject(row interface{ Scan(...interface{}) error }) (*models.Project, error) {
	var (
		p   models.Project
		cat models.Category
		mat models.Material
		img models.GeneratedImage
	)
	err := row.Scan(
		&p.ID, &p.ClientID, &p.GeneratedImageID, &p.CategoryID, &p.MaterialID,
		&p.Dimensions, &p.BudgetRange, &p.Status, &p.AcceptedProposalID, &p.AcceptedPrice,
		&p.CreatedAt, &p.UpdatedAt,
		&cat.ID, &cat.Name, &mat.ID, &mat.Name,
		&img.ID, &img.UserID, &img.Prompt, &img.ImageURL, &img.IsUsed, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &cat
	p.Material = &mat
	p.Image = &img
	return &p, nil
}

// CreateProject inserts the project and consumes its generated image in one
// transaction. The image flip is conditional on is_used = false; zero affected
// rows means another project already took the image and the transaction is
// rolled back with ErrImageAlreadyConsumed.
func (d *DatabaseClient) CreateProject(ctx context.Context, p *models.Project) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE generated_images
		SET is_used = TRUE
		WHERE id = $1 AND is_used = FALSE
	`, p.GeneratedImageID)
	if err != nil {
		return fmt.Errorf("failed to consume generated image: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected != 1 {
		return ErrImageAlreadyConsumed
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO projects (client_id, generated_image_id, category_id, material_id, dimensions, budget_range, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'open')
		RETURNING id, status, created_at, updated_at
	`, p.ClientID, p.GeneratedImageID, p.CategoryID, p.MaterialID, p.Dimensions, p.BudgetRange).Scan(
		&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project insert: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+projectJoins+` WHERE p.id = $1`, projectID)
	return scanProject(row)
}

// GetProjectByImageID returns the project referencing the image, if any.
func (d *DatabaseClient) GetProjectByImageID(ctx context.Context, imageID uuid.UUID) (*models.Project, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+projectJoins+` WHERE p.generated_image_id = $1`, imageID)
	return scanProject(row)
}

// ListProjects returns one page of projects plus the unpaginated total.
// clientID, when non-nil, scopes the listing to that client's projects.
func (d *DatabaseClient) ListProjects(ctx context.Context, clientID *uuid.UUID, filters models.ProjectFilters, limit, offset int) ([]models.Project, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if clientID != nil {
		args = append(args, *clientID)
		where += fmt.Sprintf(" AND p.client_id = $%d", len(args))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		where += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filters.CategoryID != "" {
		args = append(args, filters.CategoryID)
		where += fmt.Sprintf(" AND p.category_id = $%d", len(args))
	}
	if filters.MaterialID != "" {
		args = append(args, filters.MaterialID)
		where += fmt.Sprintf(" AND p.material_id = $%d", len(args))
	}

	var total int
	if err := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects p"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + projectColumns + projectJoins + where +
		fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	return projects, total, rows.Err()
}

func (d *DatabaseClient) CountProposals(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM proposals WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count proposals: %w", err)
	}
	return count, nil
}

// AcceptProposal performs the open -> in_progress transition with a
// conditional predicate; sql.ErrNoRows means the project was not open at
// write time.
func (d *DatabaseClient) AcceptProposal(ctx context.Context, projectID, proposalID uuid.UUID, price float64) (time.Time, error) {
	var updatedAt time.Time
	err := d.db.QueryRowContext(ctx, `
		UPDATE projects
		SET status = 'in_progress', accepted_proposal_id = $2, accepted_price = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING updated_at
	`, projectID, proposalID, price).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, err
	}
	return updatedAt, nil
}

func (d *DatabaseClient) UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, status models.ProjectStatus) (time.Time, error) {
	var updatedAt time.Time
	err := d.db.QueryRowContext(ctx, `
		UPDATE projects
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, projectID, status).Scan(&updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, err
		}
		return time.Time{}, fmt.Errorf("failed to update project status: %w", err)
	}
	return updatedAt, nil
}
