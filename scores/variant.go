package scores

import (
	"encoding/json"
	"strconv"

	"github.com/ghs-carnival/carnival-server/models"
)

// Variant is the decoded, typed form of a match score. One implementation
// exists per Category; all of them render a compact one-liner, the paired
// panel view, and encode back to the wire mapping.
type Variant interface {
	Category() Category
	Compact() string
	View(live bool) View
	Encode() models.Score
}

// CricketInnings is one side's tally in a box-cricket match.
type CricketInnings struct {
	Runs    int
	Wickets int
	Overs   float64
}

func (i CricketInnings) String() string {
	return strconv.Itoa(i.Runs) + "/" + strconv.Itoa(i.Wickets) + " (" + formatOvers(i.Overs) + " overs)"
}

type Cricket struct {
	TeamA   CricketInnings
	TeamB   CricketInnings
	Innings string // "1st", "2nd"; defaults to "1st"
}

type Chess struct {
	WinsA int
	WinsB int
	Draws int
	Round string
}

type Frames struct {
	FramesA int
	FramesB int
	Round   string
}

type Rounds struct {
	WinsA int
	WinsB int
	Round string
	Unit  string // "Rounds Won" for tug-of-war, "Score" for power-lifting
}

type Sets struct {
	SetsA       int
	SetsB       int
	CurrentSet  int // defaults to 1
	CurrentSetA int
	CurrentSetB int
}

type Clock struct {
	GoalsA int
	GoalsB int
	Period string // defaults to "1st Half"
	Clock  string // optional running clock, e.g. "12:30"
}

type Points struct {
	PointsA int
	PointsB int
	Period  string
}

func (Cricket) Category() Category { return CategoryCricket }
func (Chess) Category() Category   { return CategoryChess }
func (Frames) Category() Category  { return CategoryFrames }
func (Rounds) Category() Category  { return CategoryRounds }
func (Sets) Category() Category    { return CategorySets }
func (Clock) Category() Category   { return CategoryClock }
func (Points) Category() Category  { return CategoryPoints }

// Decode resolves the raw wire mapping into the typed variant for the given
// sport slug. It never fails: missing fields default to zero, missing labels
// to their category fallback, and each per-team value may be either a bare
// number or an object carrying the category's metric; both resolve to the
// same number. A nil mapping is treated as empty.
func Decode(slug string, raw models.Score) Variant {
	switch CategoryForSlug(slug) {
	case CategoryCricket:
		return Cricket{
			TeamA:   decodeInnings(raw, "teamA"),
			TeamB:   decodeInnings(raw, "teamB"),
			Innings: stringField(raw, "innings", "1st"),
		}
	case CategoryChess:
		return Chess{
			WinsA: teamMetric(raw, "teamA", "wins"),
			WinsB: teamMetric(raw, "teamB", "wins"),
			Draws: intField(raw, "draws"),
			Round: stringField(raw, "round", ""),
		}
	case CategoryFrames:
		return Frames{
			FramesA: teamMetric(raw, "teamA", "frames"),
			FramesB: teamMetric(raw, "teamB", "frames"),
			Round:   stringField(raw, "round", ""),
		}
	case CategoryRounds:
		unit := "Score"
		if slug == "tug-of-war" {
			unit = "Rounds Won"
		}
		return Rounds{
			WinsA: teamMetric(raw, "teamA", "wins"),
			WinsB: teamMetric(raw, "teamB", "wins"),
			Round: stringField(raw, "round", ""),
			Unit:  unit,
		}
	case CategorySets:
		set := intField(raw, "set")
		if set == 0 {
			set = 1
		}
		return Sets{
			SetsA:       teamMetric(raw, "teamA", "score"),
			SetsB:       teamMetric(raw, "teamB", "score"),
			CurrentSet:  set,
			CurrentSetA: intField(raw, "currentSetA"),
			CurrentSetB: intField(raw, "currentSetB"),
		}
	case CategoryClock:
		return Clock{
			GoalsA: teamMetric(raw, "teamA", "score"),
			GoalsB: teamMetric(raw, "teamB", "score"),
			Period: stringField(raw, "period", "1st Half"),
			Clock:  stringField(raw, "time", ""),
		}
	default:
		return Points{
			PointsA: teamMetric(raw, "teamA", "score"),
			PointsB: teamMetric(raw, "teamB", "score"),
			Period:  stringField(raw, "period", ""),
		}
	}
}

func decodeInnings(raw models.Score, team string) CricketInnings {
	return CricketInnings{
		Runs:    teamMetric(raw, team, "runs"),
		Wickets: int(teamObjectNumber(raw, team, "wickets")),
		Overs:   teamObjectNumber(raw, team, "overs"),
	}
}

// teamMetric resolves the dual number-or-object per-team shape: a bare number
// stands for the category's primary metric, an object carries it by key.
func teamMetric(raw models.Score, team, metric string) int {
	if raw == nil {
		return 0
	}
	switch v := raw[team].(type) {
	case map[string]interface{}:
		return int(number(v[metric]))
	default:
		return int(number(v))
	}
}

// teamObjectNumber reads a secondary metric, which only exists in the object
// shape.
func teamObjectNumber(raw models.Score, team, metric string) float64 {
	if raw == nil {
		return 0
	}
	if obj, ok := raw[team].(map[string]interface{}); ok {
		return number(obj[metric])
	}
	return 0
}

func number(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func intField(raw models.Score, key string) int {
	if raw == nil {
		return 0
	}
	return int(number(raw[key]))
}

func stringField(raw models.Score, key, fallback string) string {
	if raw == nil {
		return fallback
	}
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func formatOvers(overs float64) string {
	return strconv.FormatFloat(overs, 'f', -1, 64)
}

// Encode renders the variant back into its canonical wire shape. Labels that
// sit at their empty value are omitted; numeric fields are always written so
// a re-decode round-trips exactly.

func (c Cricket) Encode() models.Score {
	s := models.Score{
		"teamA": map[string]interface{}{"runs": c.TeamA.Runs, "wickets": c.TeamA.Wickets, "overs": c.TeamA.Overs},
		"teamB": map[string]interface{}{"runs": c.TeamB.Runs, "wickets": c.TeamB.Wickets, "overs": c.TeamB.Overs},
	}
	if c.Innings != "" {
		s["innings"] = c.Innings
	}
	return s
}

func (c Chess) Encode() models.Score {
	s := models.Score{
		"teamA": map[string]interface{}{"wins": c.WinsA},
		"teamB": map[string]interface{}{"wins": c.WinsB},
		"draws": c.Draws,
	}
	if c.Round != "" {
		s["round"] = c.Round
	}
	return s
}

func (f Frames) Encode() models.Score {
	s := models.Score{
		"teamA": map[string]interface{}{"frames": f.FramesA},
		"teamB": map[string]interface{}{"frames": f.FramesB},
	}
	if f.Round != "" {
		s["round"] = f.Round
	}
	return s
}

func (r Rounds) Encode() models.Score {
	s := models.Score{
		"teamA": map[string]interface{}{"wins": r.WinsA},
		"teamB": map[string]interface{}{"wins": r.WinsB},
	}
	if r.Round != "" {
		s["round"] = r.Round
	}
	return s
}

func (s Sets) Encode() models.Score {
	return models.Score{
		"teamA":       map[string]interface{}{"score": s.SetsA},
		"teamB":       map[string]interface{}{"score": s.SetsB},
		"set":         s.CurrentSet,
		"currentSetA": s.CurrentSetA,
		"currentSetB": s.CurrentSetB,
	}
}

func (c Clock) Encode() models.Score {
	s := models.Score{
		"teamA": map[string]interface{}{"score": c.GoalsA},
		"teamB": map[string]interface{}{"score": c.GoalsB},
	}
	if c.Period != "" {
		s["period"] = c.Period
	}
	if c.Clock != "" {
		s["time"] = c.Clock
	}
	return s
}

func (p Points) Encode() models.Score {
	s := models.Score{
		"teamA": map[string]interface{}{"score": p.PointsA},
		"teamB": map[string]interface{}{"score": p.PointsB},
	}
	if p.Period != "" {
		s["period"] = p.Period
	}
	return s
}
