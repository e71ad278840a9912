package models

import "time"

type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "UPCOMING"
	MatchStatusLive      MatchStatus = "LIVE"
	MatchStatusCompleted MatchStatus = "COMPLETED"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusUpcoming, MatchStatusLive, MatchStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo enforces the forward-only lifecycle
// UPCOMING -> LIVE -> COMPLETED. No reverse transitions exist.
func (s MatchStatus) CanTransitionTo(next MatchStatus) bool {
	switch s {
	case MatchStatusUpcoming:
		return next == MatchStatusLive
	case MatchStatusLive:
		return next == MatchStatusCompleted
	}
	return false
}

// Match is one scheduled or in-progress contest between two named teams.
// Score carries the sport-dependent structure verbatim; its shape is decided
// by the owning sport's slug, not by anything stored alongside it.
type Match struct {
	ID        int         `json:"id" db:"id"`
	SportID   int         `json:"sport_id" db:"sport_id"`
	Sport     *Sport      `json:"sport,omitempty" db:"-"`
	TeamA     string      `json:"team_a" db:"team_a"`
	TeamB     string      `json:"team_b" db:"team_b"`
	Status    MatchStatus `json:"status" db:"status"`
	StartTime *time.Time  `json:"start_time,omitempty" db:"start_time"`
	Venue     *string     `json:"venue,omitempty" db:"venue"`
	Score     Score       `json:"score,omitempty" db:"score"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// MatchFilter narrows match listings. Nil fields are not applied.
type MatchFilter struct {
	SportID *int
	Status  *MatchStatus
	Limit   int
}
