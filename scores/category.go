// Package scores translates the opaque score mapping carried by a match into
// sport-specific display and edit semantics. The shape of the mapping is
// selected purely by the sport slug; slugs without a dedicated category fall
// back to the plain points shape, and a missing mapping behaves like an empty
// one. Neither case is an error.
package scores

type Category string

const (
	CategoryCricket Category = "cricket" // runs/wickets/overs per side, innings label
	CategoryChess   Category = "chess"   // wins per side, draw count, round label
	CategoryFrames  Category = "frames"  // frames per side, round label
	CategoryRounds  Category = "rounds"  // round wins per side, unit label varies by sport
	CategorySets    Category = "sets"    // sets won per side plus the in-progress set tally
	CategoryClock   Category = "clock"   // goals per side, period label, optional running clock
	CategoryPoints  Category = "points"  // plain points per side, optional period label
)

// CategoryForSlug maps a sport slug to its score category. Unrecognized slugs
// get CategoryPoints.
func CategoryForSlug(slug string) Category {
	switch slug {
	case "box-cricket":
		return CategoryCricket
	case "chess":
		return CategoryChess
	case "pool":
		return CategoryFrames
	case "tug-of-war", "power-lifting":
		return CategoryRounds
	case "volleyball", "table-tennis", "badminton", "squash":
		return CategorySets
	case "futsal", "football":
		return CategoryClock
	default:
		return CategoryPoints
	}
}
