package live

import (
	"time"

	"github.com/ghs-carnival/carnival-server/models"
)

// SportSnapshot is one delivery on a sport-scoped subscription. Live is
// explicitly null (never omitted) when no match is live, so subscribers can
// tell "no live match" from "no data yet".
type SportSnapshot struct {
	Live      *models.Match   `json:"live"`
	Upcoming  []*models.Match `json:"upcoming"`
	Timestamp time.Time       `json:"timestamp"`
}

// MatchSnapshot is one delivery on a match-scoped subscription. Final marks
// the last snapshot the subscription will ever deliver: either the match
// completed, or it no longer exists (Match is then null).
type MatchSnapshot struct {
	Match     *models.Match `json:"match"`
	Final     bool          `json:"final"`
	Timestamp time.Time     `json:"timestamp"`
}
