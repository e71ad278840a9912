package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/repositories"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// MatchNotifier receives every successful mutation so connected viewers can
// be updated without waiting for their next poll tick.
type MatchNotifier interface {
	MatchUpdated(match *models.Match)
	MatchDeleted(match *models.Match)
}

// MatchService is the authorized write path for matches (the admin mutation
// gateway) plus the public read path. Mutations apply synchronously; there is
// no queuing or retry, and concurrent score edits are last-write-wins.
type MatchService interface {
	CreateMatch(ctx context.Context, admin AdminContext, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context, filter MatchListFilter) ([]*models.Match, error)
	UpdateMatch(ctx context.Context, admin AdminContext, id int, input UpdateMatchInput) (*models.Match, error)
	UpdateScore(ctx context.Context, admin AdminContext, id int, score models.Score) (*models.Match, error)
	StartMatch(ctx context.Context, admin AdminContext, id int) (*models.Match, error)
	CompleteMatch(ctx context.Context, admin AdminContext, id int) (*models.Match, error)
	DeleteMatch(ctx context.Context, admin AdminContext, id int) error
}

type CreateMatchInput struct {
	SportSlug string              `json:"sport_slug"`
	TeamA     string              `json:"team_a"`
	TeamB     string              `json:"team_b"`
	Status    *models.MatchStatus `json:"status,omitempty"`
	StartTime *time.Time          `json:"start_time,omitempty"`
	Venue     *string             `json:"venue,omitempty"`
	Score     models.Score        `json:"score,omitempty"`
}

// UpdateMatchInput is a partial update; nil fields are left untouched. A
// provided Score replaces the stored one wholesale.
type UpdateMatchInput struct {
	TeamA     *string             `json:"team_a,omitempty"`
	TeamB     *string             `json:"team_b,omitempty"`
	Status    *models.MatchStatus `json:"status,omitempty"`
	StartTime *time.Time          `json:"start_time,omitempty"`
	Venue     *string             `json:"venue,omitempty"`
	Score     *models.Score       `json:"score,omitempty"`
}

type MatchListFilter struct {
	SportSlug string
	Status    *models.MatchStatus
	Limit     int
}

type matchService struct {
	matchRepo repositories.MatchRepository
	sportRepo repositories.SportRepository
	notifier  MatchNotifier
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	sportRepo repositories.SportRepository,
	notifier MatchNotifier,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		sportRepo: sportRepo,
		notifier:  notifier,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, admin AdminContext, input CreateMatchInput) (*models.Match, error) {
	teamA := strings.TrimSpace(input.TeamA)
	teamB := strings.TrimSpace(input.TeamB)
	if teamA == "" {
		return nil, ErrTeamARequired
	}
	if teamB == "" {
		return nil, ErrTeamBRequired
	}

	sport, err := s.resolveSportForCreate(ctx, admin, input.SportSlug)
	if err != nil {
		return nil, err
	}
	if !admin.CanManageSport(sport.ID) {
		return nil, ErrSportForbidden
	}

	status := models.MatchStatusUpcoming
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidMatchStatus
		}
		status = *input.Status
	}

	match := &models.Match{
		SportID:   sport.ID,
		Sport:     sport,
		TeamA:     teamA,
		TeamB:     teamB,
		Status:    status,
		StartTime: input.StartTime,
		Venue:     input.Venue,
		Score:     input.Score,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchSportInvalid) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.notify(match)
	return match, nil
}

// resolveSportForCreate resolves the target sport: explicit by slug, or the
// caller's assigned sport when a sport admin omits it.
func (s *matchService) resolveSportForCreate(ctx context.Context, admin AdminContext, slug string) (*models.Sport, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		if admin.SportID == nil {
			return nil, ErrSportSlugRequired
		}
		sport, err := s.sportRepo.GetByID(ctx, *admin.SportID)
		if err != nil {
			if errors.Is(err, repositories.ErrSportNotFound) {
				return nil, ErrSportNotFound
			}
			return nil, fmt.Errorf("failed to resolve assigned sport: %w", err)
		}
		return sport, nil
	}

	sport, err := s.sportRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to resolve sport by slug %q: %w", slug, err)
	}
	return sport, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, filter MatchListFilter) ([]*models.Match, error) {
	repoFilter := models.MatchFilter{Limit: clampLimit(filter.Limit)}

	if slug := strings.TrimSpace(filter.SportSlug); slug != "" {
		sport, err := s.sportRepo.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repositories.ErrSportNotFound) {
				return nil, ErrSportNotFound
			}
			return nil, fmt.Errorf("failed to resolve sport filter: %w", err)
		}
		repoFilter.SportID = &sport.ID
	}

	if filter.Status != nil {
		if !filter.Status.Valid() {
			return nil, ErrInvalidMatchStatus
		}
		repoFilter.Status = filter.Status
	}

	matches, err := s.matchRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	if matches == nil {
		return []*models.Match{}, nil
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, admin AdminContext, id int, input UpdateMatchInput) (*models.Match, error) {
	match, err := s.getScoped(ctx, admin, id)
	if err != nil {
		return nil, err
	}

	if input.TeamA != nil {
		teamA := strings.TrimSpace(*input.TeamA)
		if teamA == "" {
			return nil, ErrTeamARequired
		}
		match.TeamA = teamA
	}
	if input.TeamB != nil {
		teamB := strings.TrimSpace(*input.TeamB)
		if teamB == "" {
			return nil, ErrTeamBRequired
		}
		match.TeamB = teamB
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidMatchStatus
		}
		if *input.Status != match.Status {
			if !match.Status.CanTransitionTo(*input.Status) {
				return nil, ErrInvalidStatusTransition
			}
			match.Status = *input.Status
		}
	}
	if input.StartTime != nil {
		match.StartTime = input.StartTime
	}
	if input.Venue != nil {
		match.Venue = input.Venue
	}
	if input.Score != nil {
		// Wholesale replace, never a merge.
		match.Score = *input.Score
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}

	s.notify(match)
	return match, nil
}

func (s *matchService) UpdateScore(ctx context.Context, admin AdminContext, id int, score models.Score) (*models.Match, error) {
	match, err := s.getScoped(ctx, admin, id)
	if err != nil {
		return nil, err
	}

	// The score value is stored verbatim; shape correctness against the sport
	// category is a rendering concern, not a gateway one.
	if err := s.matchRepo.UpdateScore(ctx, id, score); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update score for match %d: %w", id, err)
	}

	match.Score = score
	s.notify(match)
	return match, nil
}

func (s *matchService) StartMatch(ctx context.Context, admin AdminContext, id int) (*models.Match, error) {
	return s.transition(ctx, admin, id, models.MatchStatusLive)
}

func (s *matchService) CompleteMatch(ctx context.Context, admin AdminContext, id int) (*models.Match, error) {
	return s.transition(ctx, admin, id, models.MatchStatusCompleted)
}

// transition moves a match forward in its lifecycle. The score is never
// touched: starting a match does not reset it and completing one keeps the
// final value.
func (s *matchService) transition(ctx context.Context, admin AdminContext, id int, next models.MatchStatus) (*models.Match, error) {
	match, err := s.getScoped(ctx, admin, id)
	if err != nil {
		return nil, err
	}

	if !match.Status.CanTransitionTo(next) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.matchRepo.UpdateStatus(ctx, id, next); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to transition match %d to %s: %w", id, next, err)
	}

	match.Status = next
	s.notify(match)
	return match, nil
}

// DeleteMatch removes the match from the viewable set entirely ("end match").
// Distinct from completing: a completed match stays visible, a deleted one is
// gone.
func (s *matchService) DeleteMatch(ctx context.Context, admin AdminContext, id int) error {
	match, err := s.getScoped(ctx, admin, id)
	if err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}

	if s.notifier != nil {
		s.notifier.MatchDeleted(match)
	}
	return nil
}

// getScoped loads the match and enforces the caller's sport scope.
func (s *matchService) getScoped(ctx context.Context, admin AdminContext, id int) (*models.Match, error) {
	match, err := s.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !admin.CanManageSport(match.SportID) {
		return nil, ErrSportForbidden
	}
	return match, nil
}

func (s *matchService) notify(match *models.Match) {
	if s.notifier != nil {
		s.notifier.MatchUpdated(match)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
