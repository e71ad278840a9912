package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ghs-carnival/carnival-server/models"
	"github.com/ghs-carnival/carnival-server/repositories"
	"golang.org/x/sync/errgroup"
)

// ErrSportNotFound is returned when a sport-scoped subscription names a slug
// that does not exist.
var ErrSportNotFound = errors.New("sport not found")

const (
	DefaultSportInterval = 5 * time.Second
	MinSportInterval     = 2 * time.Second
	MaxSportInterval     = 30 * time.Second

	DefaultMatchInterval = 3 * time.Second
	MinMatchInterval     = 1 * time.Second
	MaxMatchInterval     = 15 * time.Second

	// DefaultUpcomingLimit caps the upcoming list in a sport snapshot.
	DefaultUpcomingLimit = 6
)

// Streamer drives the pull side of the live update channel: each
// subscription is an independent timer loop that re-reads authoritative state
// every tick. Nothing is event-driven here, so the staleness bound equals one
// interval; the websocket hub covers the push side.
type Streamer struct {
	matchRepo repositories.MatchRepository
	sportRepo repositories.SportRepository
	log       *slog.Logger
}

func NewStreamer(matchRepo repositories.MatchRepository, sportRepo repositories.SportRepository, log *slog.Logger) *Streamer {
	return &Streamer{
		matchRepo: matchRepo,
		sportRepo: sportRepo,
		log:       log,
	}
}

// SportSnapshot computes the current {live, upcoming} pair for one sport, or
// for all sports when slug is empty. The same queries back the one-shot list
// endpoint, so the pull fallback is data-equivalent to the stream.
func (s *Streamer) SportSnapshot(ctx context.Context, slug string, upcomingLimit int) (SportSnapshot, error) {
	if upcomingLimit <= 0 {
		upcomingLimit = DefaultUpcomingLimit
	}

	var sportID *int
	if slug != "" {
		sport, err := s.sportRepo.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repositories.ErrSportNotFound) {
				return SportSnapshot{}, ErrSportNotFound
			}
			return SportSnapshot{}, fmt.Errorf("failed to resolve sport %q: %w", slug, err)
		}
		sportID = &sport.ID
	}

	var (
		liveMatches []*models.Match
		upcoming    []*models.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status := models.MatchStatusLive
		var err error
		liveMatches, err = s.matchRepo.List(gctx, models.MatchFilter{SportID: sportID, Status: &status, Limit: 1})
		return err
	})
	g.Go(func() error {
		status := models.MatchStatusUpcoming
		var err error
		upcoming, err = s.matchRepo.List(gctx, models.MatchFilter{SportID: sportID, Status: &status, Limit: upcomingLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return SportSnapshot{}, fmt.Errorf("failed to compute sport snapshot: %w", err)
	}

	snapshot := SportSnapshot{
		Upcoming:  upcoming,
		Timestamp: time.Now().UTC(),
	}
	if snapshot.Upcoming == nil {
		snapshot.Upcoming = []*models.Match{}
	}
	if len(liveMatches) > 0 {
		snapshot.Live = liveMatches[0]
	}
	return snapshot, nil
}

// SubscribeSport starts a sport-scoped subscription. The initial snapshot is
// computed synchronously (and its error returned); after that a new snapshot
// arrives every interval until ctx is cancelled, at which point the channel
// closes and no further deliveries are attempted. Ticks that fail to read the
// store are skipped, not fatal.
func (s *Streamer) SubscribeSport(ctx context.Context, slug string, interval time.Duration, upcomingLimit int) (<-chan SportSnapshot, error) {
	interval = clampInterval(interval, DefaultSportInterval, MinSportInterval, MaxSportInterval)

	initial, err := s.SportSnapshot(ctx, slug, upcomingLimit)
	if err != nil {
		return nil, err
	}

	ch := make(chan SportSnapshot, 1)
	ch <- initial

	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				snapshot, err := s.SportSnapshot(ctx, slug, upcomingLimit)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					s.log.Error("sport snapshot tick failed", slog.String("sport", slug), slog.Any("error", err))
					continue
				}
				if !deliverSport(ctx, ch, snapshot) {
					return
				}
			}
		}
	}()

	return ch, nil
}

// SubscribeMatch starts a match-scoped subscription. A missing match yields a
// single null terminal snapshot instead of an error; a completed match yields
// a final snapshot. Either way the channel closes after the terminal
// delivery.
func (s *Streamer) SubscribeMatch(ctx context.Context, matchID int, interval time.Duration) <-chan MatchSnapshot {
	interval = clampInterval(interval, DefaultMatchInterval, MinMatchInterval, MaxMatchInterval)

	ch := make(chan MatchSnapshot, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			snapshot := s.matchSnapshot(ctx, matchID)
			if snapshot != nil {
				if !deliverMatch(ctx, ch, *snapshot) {
					return
				}
				if snapshot.Final {
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return ch
}

// matchSnapshot reads one tick's worth of state. A nil return means a
// transient read failure: skip the tick, keep the subscription alive.
func (s *Streamer) matchSnapshot(ctx context.Context, matchID int) *MatchSnapshot {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return &MatchSnapshot{Match: nil, Final: true, Timestamp: time.Now().UTC()}
		}
		if ctx.Err() == nil {
			s.log.Error("match snapshot tick failed", slog.Int("match_id", matchID), slog.Any("error", err))
		}
		return nil
	}

	return &MatchSnapshot{
		Match:     match,
		Final:     match.Status == models.MatchStatusCompleted,
		Timestamp: time.Now().UTC(),
	}
}

func deliverSport(ctx context.Context, ch chan<- SportSnapshot, snapshot SportSnapshot) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- snapshot:
		return true
	}
}

func deliverMatch(ctx context.Context, ch chan<- MatchSnapshot, snapshot MatchSnapshot) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- snapshot:
		return true
	}
}

func clampInterval(interval, fallback, min, max time.Duration) time.Duration {
	if interval <= 0 {
		return fallback
	}
	if interval < min {
		return min
	}
	if interval > max {
		return max
	}
	return interval
}
