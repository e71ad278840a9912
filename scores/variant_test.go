package scores

import (
	"reflect"
	"testing"

	"github.com/ghs-carnival/carnival-server/models"
)

func TestCategoryForSlug(t *testing.T) {
	tests := []struct {
		slug string
		want Category
	}{
		{"box-cricket", CategoryCricket},
		{"chess", CategoryChess},
		{"pool", CategoryFrames},
		{"tug-of-war", CategoryRounds},
		{"power-lifting", CategoryRounds},
		{"volleyball", CategorySets},
		{"table-tennis", CategorySets},
		{"badminton", CategorySets},
		{"squash", CategorySets},
		{"futsal", CategoryClock},
		{"football", CategoryClock},
		{"basketball", CategoryPoints},
		{"kabaddi", CategoryPoints},
		{"", CategoryPoints},
	}

	for _, tt := range tests {
		if got := CategoryForSlug(tt.slug); got != tt.want {
			t.Errorf("CategoryForSlug(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestDecodeEmptyScoreDefaults(t *testing.T) {
	tests := []struct {
		slug string
		want Variant
	}{
		{"box-cricket", Cricket{Innings: "1st"}},
		{"chess", Chess{}},
		{"pool", Frames{}},
		{"tug-of-war", Rounds{Unit: "Rounds Won"}},
		{"power-lifting", Rounds{Unit: "Score"}},
		{"volleyball", Sets{CurrentSet: 1}},
		{"futsal", Clock{Period: "1st Half"}},
		{"basketball", Points{}},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got := Decode(tt.slug, nil)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q, nil) = %#v, want %#v", tt.slug, got, tt.want)
			}

			gotEmpty := Decode(tt.slug, models.Score{})
			if !reflect.DeepEqual(gotEmpty, tt.want) {
				t.Errorf("Decode(%q, empty) = %#v, want %#v", tt.slug, gotEmpty, tt.want)
			}
		})
	}
}

// Each per-team value may arrive as a bare number or as an object carrying
// the category's primary metric. Both shapes must decode identically.
func TestDecodeDualTeamShapes(t *testing.T) {
	tests := []struct {
		name   string
		slug   string
		number models.Score
		object models.Score
	}{
		{
			name:   "chess wins",
			slug:   "chess",
			number: models.Score{"teamA": float64(2), "teamB": float64(1)},
			object: models.Score{
				"teamA": map[string]interface{}{"wins": float64(2)},
				"teamB": map[string]interface{}{"wins": float64(1)},
			},
		},
		{
			name:   "pool frames",
			slug:   "pool",
			number: models.Score{"teamA": float64(4), "teamB": float64(3)},
			object: models.Score{
				"teamA": map[string]interface{}{"frames": float64(4)},
				"teamB": map[string]interface{}{"frames": float64(3)},
			},
		},
		{
			name:   "tug-of-war wins",
			slug:   "tug-of-war",
			number: models.Score{"teamA": float64(2), "teamB": float64(0)},
			object: models.Score{
				"teamA": map[string]interface{}{"wins": float64(2)},
				"teamB": map[string]interface{}{"wins": float64(0)},
			},
		},
		{
			name:   "volleyball sets",
			slug:   "volleyball",
			number: models.Score{"teamA": float64(2), "teamB": float64(1)},
			object: models.Score{
				"teamA": map[string]interface{}{"score": float64(2)},
				"teamB": map[string]interface{}{"score": float64(1)},
			},
		},
		{
			name:   "futsal goals",
			slug:   "futsal",
			number: models.Score{"teamA": float64(3), "teamB": float64(2)},
			object: models.Score{
				"teamA": map[string]interface{}{"score": float64(3)},
				"teamB": map[string]interface{}{"score": float64(2)},
			},
		},
		{
			name:   "basketball points",
			slug:   "basketball",
			number: models.Score{"teamA": float64(55), "teamB": float64(48)},
			object: models.Score{
				"teamA": map[string]interface{}{"score": float64(55)},
				"teamB": map[string]interface{}{"score": float64(48)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromNumber := Decode(tt.slug, tt.number)
			fromObject := Decode(tt.slug, tt.object)
			if !reflect.DeepEqual(fromNumber, fromObject) {
				t.Errorf("shapes diverge: number %#v, object %#v", fromNumber, fromObject)
			}
		})
	}
}

func TestDecodeCricket(t *testing.T) {
	raw := models.Score{
		"teamA":   map[string]interface{}{"runs": float64(127), "wickets": float64(9), "overs": float64(10)},
		"teamB":   map[string]interface{}{"runs": float64(24), "wickets": float64(2), "overs": 3.4},
		"innings": "2nd",
	}

	got := Decode("box-cricket", raw)
	want := Cricket{
		TeamA:   CricketInnings{Runs: 127, Wickets: 9, Overs: 10},
		TeamB:   CricketInnings{Runs: 24, Wickets: 2, Overs: 3.4},
		Innings: "2nd",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
}

// A bare number for a cricket team reads as runs; wickets and overs only
// exist in the object shape.
func TestDecodeCricketBareNumber(t *testing.T) {
	got := Decode("box-cricket", models.Score{"teamA": float64(80)})
	cricket, ok := got.(Cricket)
	if !ok {
		t.Fatalf("Decode returned %T, want Cricket", got)
	}
	if cricket.TeamA.Runs != 80 || cricket.TeamA.Wickets != 0 || cricket.TeamA.Overs != 0 {
		t.Errorf("TeamA = %+v, want runs 80 and zero wickets/overs", cricket.TeamA)
	}
}

func TestDecodeUnknownSlugFallsBackToPoints(t *testing.T) {
	got := Decode("underwater-hockey", models.Score{
		"teamA":  float64(7),
		"teamB":  float64(5),
		"period": "Q3",
	})
	want := Points{PointsA: 7, PointsB: 5, Period: "Q3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
}

func TestDecodeIgnoresMalformedValues(t *testing.T) {
	raw := models.Score{
		"teamA":  "not a number",
		"teamB":  map[string]interface{}{"score": []interface{}{1, 2}},
		"period": float64(3),
	}

	got := Decode("basketball", raw)
	want := Points{}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
}

func TestDecodeNumericStrings(t *testing.T) {
	got := Decode("basketball", models.Score{"teamA": "15", "teamB": "12"})
	want := Points{PointsA: 15, PointsB: 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		slug    string
		variant Variant
	}{
		{"box-cricket", Cricket{
			TeamA:   CricketInnings{Runs: 127, Wickets: 9, Overs: 10},
			TeamB:   CricketInnings{Runs: 24, Wickets: 2, Overs: 3.4},
			Innings: "2nd",
		}},
		{"chess", Chess{WinsA: 2, WinsB: 1, Draws: 3, Round: "Round 6"}},
		{"pool", Frames{FramesA: 4, FramesB: 2, Round: "Best of 9"}},
		{"tug-of-war", Rounds{WinsA: 2, WinsB: 1, Round: "Round 3", Unit: "Rounds Won"}},
		{"volleyball", Sets{SetsA: 2, SetsB: 1, CurrentSet: 4, CurrentSetA: 18, CurrentSetB: 21}},
		{"futsal", Clock{GoalsA: 3, GoalsB: 2, Period: "2nd Half", Clock: "12:30"}},
		{"basketball", Points{PointsA: 55, PointsB: 48, Period: "Q4"}},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			encoded := tt.variant.Encode()
			decoded := Decode(tt.slug, encoded)
			if !reflect.DeepEqual(decoded, tt.variant) {
				t.Errorf("round trip: got %#v, want %#v", decoded, tt.variant)
			}
		})
	}
}

func TestFieldsPerCategory(t *testing.T) {
	tests := []struct {
		category Category
		count    int
		shared   []string
	}{
		{CategoryCricket, 7, []string{"innings"}},
		{CategoryChess, 4, []string{"draws", "round"}},
		{CategoryFrames, 3, []string{"round"}},
		{CategoryRounds, 3, []string{"round"}},
		{CategorySets, 5, []string{"set", "currentSetA", "currentSetB"}},
		{CategoryClock, 4, []string{"period", "time"}},
		{CategoryPoints, 3, []string{"period"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			fields := Fields(tt.category)
			if len(fields) != tt.count {
				t.Fatalf("got %d fields, want %d", len(fields), tt.count)
			}

			var shared []string
			perTeam := map[FieldScope][]string{}
			for _, f := range fields {
				if f.Scope == ScopeShared {
					shared = append(shared, f.Key)
				} else {
					perTeam[f.Scope] = append(perTeam[f.Scope], f.Key)
				}
			}
			if !reflect.DeepEqual(shared, tt.shared) {
				t.Errorf("shared keys = %v, want %v", shared, tt.shared)
			}
			if !reflect.DeepEqual(perTeam[ScopeTeamA], perTeam[ScopeTeamB]) {
				t.Errorf("team field sets differ: A %v, B %v", perTeam[ScopeTeamA], perTeam[ScopeTeamB])
			}
		})
	}
}
