package supabase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"chairai-backend/internal/models"
)

func (d *DatabaseClient) CategoryExists(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID).Scan(&exists)
	return exists, err
}

func (d *DatabaseClient) MaterialExists(ctx context.Context, materialID uuid.UUID) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM materials WHERE id = $1)`, materialID).Scan(&exists)
	return exists, err
}

func (d *DatabaseClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (d *DatabaseClient) ListMaterials(ctx context.Context) ([]models.Material, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (d *DatabaseClient) ListSpecializations(ctx context.Context) ([]models.Specialization, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT id, name FROM specializations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list specializations: %w", err)
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

func (d *DatabaseClient) ListSpecializationsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Specialization, error) {
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	rows, err := d.db.QueryContext(ctx,
		`SELECT id, name FROM specializations WHERE id = ANY($1)`, pq.Array(strIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to select specializations: %w", err)
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
