package scores

import (
	"fmt"
	"strconv"
)

// Panel is one side of the paired score display: the big value plus an
// optional detail line under it.
type Panel struct {
	Value  string `json:"value"`
	Detail string `json:"detail,omitempty"`
}

// View is the full score display for a match: one panel per team and a
// status/period caption underneath. Live distinguishes the in-progress form
// from the completed one; the data is identical either way.
type View struct {
	TeamA   Panel  `json:"team_a"`
	TeamB   Panel  `json:"team_b"`
	Caption string `json:"caption"`
	Live    bool   `json:"live"`
}

func (c Cricket) Compact() string {
	return c.TeamA.String() + " vs " + c.TeamB.String() + " · " + c.inningsCaption()
}

func (c Cricket) View(live bool) View {
	return View{
		TeamA:   cricketPanel(c.TeamA),
		TeamB:   cricketPanel(c.TeamB),
		Caption: c.inningsCaption(),
		Live:    live,
	}
}

func cricketPanel(i CricketInnings) Panel {
	return Panel{
		Value:  strconv.Itoa(i.Runs) + "/" + strconv.Itoa(i.Wickets),
		Detail: "(" + formatOvers(i.Overs) + " overs)",
	}
}

func (c Cricket) inningsCaption() string {
	return c.Innings + " Innings"
}

// The compact line never shows the round label; with no draws the tally is
// tagged as plain wins.
func (c Chess) Compact() string {
	if c.Draws > 0 {
		return pair(c.WinsA, c.WinsB) + " · " + pluralDraws(c.Draws)
	}
	return pair(c.WinsA, c.WinsB) + " · Wins"
}

func (c Chess) View(live bool) View {
	return View{
		TeamA:   Panel{Value: strconv.Itoa(c.WinsA), Detail: "Wins"},
		TeamB:   Panel{Value: strconv.Itoa(c.WinsB), Detail: "Wins"},
		Caption: c.caption(),
		Live:    live,
	}
}

func (c Chess) caption() string {
	if c.Draws > 0 {
		return pluralDraws(c.Draws)
	}
	if c.Round != "" {
		return c.Round
	}
	return "In Progress"
}

func pluralDraws(n int) string {
	if n == 1 {
		return "1 Draw"
	}
	return fmt.Sprintf("%d Draws", n)
}

func (f Frames) Compact() string {
	return pair(f.FramesA, f.FramesB) + " · Frames"
}

func (f Frames) View(live bool) View {
	return View{
		TeamA:   Panel{Value: strconv.Itoa(f.FramesA), Detail: "Frames"},
		TeamB:   Panel{Value: strconv.Itoa(f.FramesB), Detail: "Frames"},
		Caption: roundCaption(f.Round),
		Live:    live,
	}
}

func (r Rounds) Compact() string {
	return pair(r.WinsA, r.WinsB) + " · " + r.Unit
}

func (r Rounds) View(live bool) View {
	return View{
		TeamA:   Panel{Value: strconv.Itoa(r.WinsA), Detail: r.Unit},
		TeamB:   Panel{Value: strconv.Itoa(r.WinsB), Detail: r.Unit},
		Caption: roundCaption(r.Round),
		Live:    live,
	}
}

func (s Sets) Compact() string {
	return pair(s.SetsA, s.SetsB) + " (Sets) · " + s.caption()
}

func (s Sets) View(live bool) View {
	return View{
		TeamA:   Panel{Value: strconv.Itoa(s.SetsA), Detail: "Sets Won"},
		TeamB:   Panel{Value: strconv.Itoa(s.SetsB), Detail: "Sets Won"},
		Caption: s.caption(),
		Live:    live,
	}
}

func (s Sets) caption() string {
	return fmt.Sprintf("Current Set %d: %d - %d", s.CurrentSet, s.CurrentSetA, s.CurrentSetB)
}

func (c Clock) Compact() string {
	return pair(c.GoalsA, c.GoalsB) + " · " + c.caption()
}

func (c Clock) View(live bool) View {
	return View{
		TeamA:   Panel{Value: strconv.Itoa(c.GoalsA)},
		TeamB:   Panel{Value: strconv.Itoa(c.GoalsB)},
		Caption: c.caption(),
		Live:    live,
	}
}

func (c Clock) caption() string {
	if c.Clock != "" {
		return c.Period + " • " + c.Clock
	}
	return c.Period
}

func (p Points) Compact() string {
	if p.Period != "" {
		return pair(p.PointsA, p.PointsB) + " · " + p.Period
	}
	return pair(p.PointsA, p.PointsB)
}

func (p Points) View(live bool) View {
	caption := p.Period
	if caption == "" {
		caption = "-"
	}
	return View{
		TeamA:   Panel{Value: strconv.Itoa(p.PointsA)},
		TeamB:   Panel{Value: strconv.Itoa(p.PointsB)},
		Caption: caption,
		Live:    live,
	}
}

func roundCaption(round string) string {
	if round != "" {
		return round
	}
	return "In Progress"
}

func pair(a, b int) string {
	return strconv.Itoa(a) + " - " + strconv.Itoa(b)
}
