package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/lib/pq"
)

var (
	ErrSportNotFound     = errors.New("sport not found")
	ErrSportSlugConflict = errors.New("sport slug conflict")
	ErrSportNameConflict = errors.New("sport name conflict")
	ErrSportInUse        = errors.New("sport cannot be deleted as it is in use")
)

type SportRepository interface {
	Create(ctx context.Context, sport *models.Sport) error
	GetByID(ctx context.Context, id int) (*models.Sport, error)
	GetBySlug(ctx context.Context, slug string) (*models.Sport, error)
	GetAll(ctx context.Context) ([]models.Sport, error)
	Update(ctx context.Context, sport *models.Sport) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresSportRepository struct {
	db SQLExecutor
}

func NewPostgresSportRepository(db *sql.DB) SportRepository {
	return &postgresSportRepository{db: db}
}

const sportColumns = `id, name, slug, logo_key, created_at, updated_at`

func scanSport(row interface{ Scan(...interface{}) error }, sport *models.Sport) error {
	return row.Scan(
		&sport.ID,
		&sport.Name,
		&sport.Slug,
		&sport.LogoKey,
		&sport.CreatedAt,
		&sport.UpdatedAt,
	)
}

func (r *postgresSportRepository) Create(ctx context.Context, sport *models.Sport) error {
	query := `
		INSERT INTO sports (name, slug)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, sport.Name, sport.Slug).
		Scan(&sport.ID, &sport.CreatedAt, &sport.UpdatedAt)
	if err != nil {
		return r.handleSportError(err)
	}
	return nil
}

func (r *postgresSportRepository) GetByID(ctx context.Context, id int) (*models.Sport, error) {
	query := `SELECT ` + sportColumns + ` FROM sports WHERE id = $1`

	var sport models.Sport
	err := scanSport(r.db.QueryRowContext(ctx, query, id), &sport)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to scan sport by id %d: %w", id, err)
	}
	return &sport, nil
}

func (r *postgresSportRepository) GetBySlug(ctx context.Context, slug string) (*models.Sport, error) {
	query := `SELECT ` + sportColumns + ` FROM sports WHERE slug = $1`

	var sport models.Sport
	err := scanSport(r.db.QueryRowContext(ctx, query, slug), &sport)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to scan sport by slug %q: %w", slug, err)
	}
	return &sport, nil
}

func (r *postgresSportRepository) GetAll(ctx context.Context) ([]models.Sport, error) {
	query := `SELECT ` + sportColumns + ` FROM sports ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sports := make([]models.Sport, 0)
	for rows.Next() {
		var sport models.Sport
		if scanErr := scanSport(rows, &sport); scanErr != nil {
			return nil, fmt.Errorf("failed to scan sport row: %w", scanErr)
		}
		sports = append(sports, sport)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *postgresSportRepository) Update(ctx context.Context, sport *models.Sport) error {
	query := `
		UPDATE sports
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, sport.Name, sport.ID).Scan(&sport.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSportNotFound
		}
		return r.handleSportError(err)
	}
	return nil
}

func (r *postgresSportRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE sports SET logo_key = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return fmt.Errorf("failed to update sport logo key (id %d): %w", id, err)
	}
	return checkAffectedRows(result, ErrSportNotFound)
}

func (r *postgresSportRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM sports WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrSportInUse
		}
		return fmt.Errorf("failed to delete sport %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrSportNotFound)
}

func (r *postgresSportRepository) handleSportError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "sports_slug_key":
			return ErrSportSlugConflict
		case "sports_name_key":
			return ErrSportNameConflict
		}
	}
	return err
}
