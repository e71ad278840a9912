package scores

type FieldKind string

const (
	FieldNumber FieldKind = "number"
	FieldText   FieldKind = "text"
)

type FieldScope string

const (
	ScopeTeamA  FieldScope = "teamA"
	ScopeTeamB  FieldScope = "teamB"
	ScopeShared FieldScope = "shared"
)

// Field describes one editable score input for the admin back office. Key is
// the metric key inside the team object for team-scoped fields, or the
// top-level key for shared ones.
type Field struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Kind  FieldKind  `json:"kind"`
	Scope FieldScope `json:"scope"`
}

// Fields enumerates the exact editable field set for a category. Editing a
// category never requires knowledge of another category's fields.
func Fields(c Category) []Field {
	switch c {
	case CategoryCricket:
		return []Field{
			{Key: "runs", Label: "Runs", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "wickets", Label: "Wickets", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "overs", Label: "Overs", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "runs", Label: "Runs", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "wickets", Label: "Wickets", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "overs", Label: "Overs", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "innings", Label: "Innings", Kind: FieldText, Scope: ScopeShared},
		}
	case CategoryChess:
		return []Field{
			{Key: "wins", Label: "Wins", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "wins", Label: "Wins", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "draws", Label: "Draws", Kind: FieldNumber, Scope: ScopeShared},
			{Key: "round", Label: "Round", Kind: FieldText, Scope: ScopeShared},
		}
	case CategoryFrames:
		return []Field{
			{Key: "frames", Label: "Frames", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "frames", Label: "Frames", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "round", Label: "Round", Kind: FieldText, Scope: ScopeShared},
		}
	case CategoryRounds:
		return []Field{
			{Key: "wins", Label: "Wins", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "wins", Label: "Wins", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "round", Label: "Round", Kind: FieldText, Scope: ScopeShared},
		}
	case CategorySets:
		return []Field{
			{Key: "score", Label: "Sets Won", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "score", Label: "Sets Won", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "set", Label: "Current Set", Kind: FieldNumber, Scope: ScopeShared},
			{Key: "currentSetA", Label: "Current Set Points (A)", Kind: FieldNumber, Scope: ScopeShared},
			{Key: "currentSetB", Label: "Current Set Points (B)", Kind: FieldNumber, Scope: ScopeShared},
		}
	case CategoryClock:
		return []Field{
			{Key: "score", Label: "Goals", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "score", Label: "Goals", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "period", Label: "Period", Kind: FieldText, Scope: ScopeShared},
			{Key: "time", Label: "Clock", Kind: FieldText, Scope: ScopeShared},
		}
	default:
		return []Field{
			{Key: "score", Label: "Score", Kind: FieldNumber, Scope: ScopeTeamA},
			{Key: "score", Label: "Score", Kind: FieldNumber, Scope: ScopeTeamB},
			{Key: "period", Label: "Period", Kind: FieldText, Scope: ScopeShared},
		}
	}
}
