package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghs-carnival/carnival-server/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type postgresUserRepository struct {
	db SQLExecutor
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const userSelect = `
	SELECT u.id, u.email, u.username, u.password_hash, u.role, u.sport_id, u.created_at,
	       s.id, s.name, s.slug, s.logo_key, s.created_at, s.updated_at
	FROM users u
	LEFT JOIN sports s ON s.id = u.sport_id`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var (
		user         models.User
		sportID      sql.NullInt64
		sportName    sql.NullString
		sportSlug    sql.NullString
		sportLogoKey sql.NullString
		sportCreated sql.NullTime
		sportUpdated sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.SportID,
		&user.CreatedAt,
		&sportID,
		&sportName,
		&sportSlug,
		&sportLogoKey,
		&sportCreated,
		&sportUpdated,
	)
	if err != nil {
		return nil, err
	}

	if sportID.Valid {
		user.Sport = &models.Sport{
			ID:        int(sportID.Int64),
			Name:      sportName.String,
			Slug:      sportSlug.String,
			CreatedAt: sportCreated.Time,
			UpdatedAt: sportUpdated.Time,
		}
		if sportLogoKey.Valid {
			key := sportLogoKey.String
			user.Sport.LogoKey = &key
		}
	}
	return &user, nil
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := userSelect + ` WHERE u.email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user by email: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := userSelect + ` WHERE u.id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user by id %d: %w", id, err)
	}
	return user, nil
}
