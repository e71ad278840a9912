package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchSportInvalid = errors.New("match references an invalid sport")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context, filter models.MatchFilter) ([]*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	UpdateScore(ctx context.Context, id int, score models.Score) error
	UpdateStatus(ctx context.Context, id int, status models.MatchStatus) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db SQLExecutor
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchSelect = `
	SELECT m.id, m.sport_id, m.team_a, m.team_b, m.status, m.start_time, m.venue,
	       m.score, m.created_at, m.updated_at,
	       s.id, s.name, s.slug, s.logo_key, s.created_at, s.updated_at
	FROM matches m
	JOIN sports s ON s.id = m.sport_id`

func scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	match := &models.Match{Sport: &models.Sport{}}
	err := row.Scan(
		&match.ID,
		&match.SportID,
		&match.TeamA,
		&match.TeamB,
		&match.Status,
		&match.StartTime,
		&match.Venue,
		&match.Score,
		&match.CreatedAt,
		&match.UpdatedAt,
		&match.Sport.ID,
		&match.Sport.Name,
		&match.Sport.Slug,
		&match.Sport.LogoKey,
		&match.Sport.CreatedAt,
		&match.Sport.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (sport_id, team_a, team_b, status, start_time, venue, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		match.SportID,
		match.TeamA,
		match.TeamB,
		match.Status,
		match.StartTime,
		match.Venue,
		match.Score,
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrMatchSportInvalid
		}
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := matchSelect + ` WHERE m.id = $1`

	match, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return match, nil
}

// List applies the filter's non-nil fields. Upcoming-only listings come back
// in schedule order (start_time, nulls last); everything else is most
// recently updated first.
func (r *postgresMatchRepository) List(ctx context.Context, filter models.MatchFilter) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(matchSelect)
	queryBuilder.WriteString(" WHERE 1=1")

	args := []interface{}{}
	placeholderIndex := 1

	if filter.SportID != nil {
		queryBuilder.WriteString(" AND m.sport_id = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.SportID)
		placeholderIndex++
	}
	if filter.Status != nil {
		queryBuilder.WriteString(" AND m.status = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Status)
		placeholderIndex++
	}

	if filter.Status != nil && *filter.Status == models.MatchStatusUpcoming {
		queryBuilder.WriteString(" ORDER BY m.start_time ASC NULLS LAST, m.created_at ASC")
	} else {
		queryBuilder.WriteString(" ORDER BY m.updated_at DESC")
	}

	if filter.Limit > 0 {
		queryBuilder.WriteString(" LIMIT $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		match, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET team_a = $1, team_b = $2, status = $3, start_time = $4, venue = $5,
		    score = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		match.TeamA,
		match.TeamB,
		match.Status,
		match.StartTime,
		match.Venue,
		match.Score,
		match.ID,
	).Scan(&match.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to update match %d: %w", match.ID, err)
	}
	return nil
}

// UpdateScore replaces the stored score wholesale; there is no merge.
func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id int, score models.Score) error {
	query := `UPDATE matches SET score = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, score, id)
	if err != nil {
		return fmt.Errorf("failed to update match score (id %d): %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateStatus(ctx context.Context, id int, status models.MatchStatus) error {
	query := `UPDATE matches SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update match status (id %d): %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
