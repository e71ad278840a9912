package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghs-carnival/carnival-server/models"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetByID(ctx context.Context, id int) (*models.Announcement, error)
	List(ctx context.Context, limit int) ([]models.Announcement, error)
	ListPinned(ctx context.Context, limit int) ([]models.Announcement, error)
	Update(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int) error
}

type postgresAnnouncementRepository struct {
	db SQLExecutor
}

func NewPostgresAnnouncementRepository(db *sql.DB) AnnouncementRepository {
	return &postgresAnnouncementRepository{db: db}
}

const announcementColumns = `id, title, body, pinned, created_at, updated_at`

func (r *postgresAnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, body, pinned)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		announcement.Title,
		announcement.Body,
		announcement.Pinned,
	).Scan(&announcement.ID, &announcement.CreatedAt, &announcement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

func (r *postgresAnnouncementRepository) GetByID(ctx context.Context, id int) (*models.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`

	var a models.Announcement
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Title, &a.Body, &a.Pinned, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to scan announcement by id %d: %w", id, err)
	}
	return &a, nil
}

// List returns recent announcements, pinned ones first.
func (r *postgresAnnouncementRepository) List(ctx context.Context, limit int) ([]models.Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		ORDER BY pinned DESC, updated_at DESC
		LIMIT $1`

	return r.queryAnnouncements(ctx, query, limit)
}

func (r *postgresAnnouncementRepository) ListPinned(ctx context.Context, limit int) ([]models.Announcement, error) {
	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		WHERE pinned = TRUE
		ORDER BY updated_at DESC
		LIMIT $1`

	return r.queryAnnouncements(ctx, query, limit)
}

func (r *postgresAnnouncementRepository) queryAnnouncements(ctx context.Context, query string, args ...interface{}) ([]models.Announcement, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	announcements := make([]models.Announcement, 0)
	for rows.Next() {
		var a models.Announcement
		if scanErr := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Pinned, &a.CreatedAt, &a.UpdatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", scanErr)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *postgresAnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $1, body = $2, pinned = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		announcement.Title,
		announcement.Body,
		announcement.Pinned,
		announcement.ID,
	).Scan(&announcement.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to update announcement %d: %w", announcement.ID, err)
	}
	return nil
}

func (r *postgresAnnouncementRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM announcements WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrAnnouncementNotFound)
}
