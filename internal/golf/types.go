package golf

import "time"

// DateLayout is the calendar date format used for match rows.
const DateLayout = "2006-01-02"

// Result is a match outcome from the tracked player's perspective.
type Result string

const (
	ResultWin  Result = "WIN"
	ResultLoss Result = "LOSS"
	ResultDraw Result = "DRAW"
	// ResultUnknown signals that the scores were insufficient to decide an
	// outcome automatically. The caller must pick a result manually; it is
	// never silently turned into a draw.
	ResultUnknown Result = "UNKNOWN"
)

// IsDecided reports whether r is a recordable outcome.
func (r Result) IsDecided() bool {
	return r == ResultWin || r == ResultLoss || r == ResultDraw
}

// Player is a tracked opponent. The name is the primary key; there is no
// surrogate id in the source data. Only opponents carry a handicap, the
// tracked player themselves has no roster row.
type Player struct {
	Name     string  `json:"name"`
	Handicap float64 `json:"handicap"`
	Photo    string  `json:"photo,omitempty"`
}

// Course is static reference data for where a round was played.
type Course struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Region string `json:"region"`
}

// Label renders the course the way the round-entry picker shows it.
func (c Course) Label() string {
	if c.City == "" {
		return c.Name
	}
	return c.Name + " (" + c.City + ")"
}

// Match is a single head-to-head pairing. A round against several opponents
// produces one Match row per opponent. The stored result is a snapshot of
// what was decided at save time; it is never recomputed against the
// opponent's current handicap.
type Match struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Course          string `json:"course"`
	Opponent        string `json:"opponent"`
	SelfScore       int    `json:"self_score"`
	OpponentScore   int    `json:"opponent_score"` // 0 when not recorded
	Result          Result `json:"result"`
	HandicapApplied bool   `json:"handicap_applied"`
}

// SeasonYear extracts the calendar year from a match date. Unparseable dates
// report ok=false so callers can exclude the row from season-scoped views
// instead of coercing it into some default year.
func SeasonYear(date string) (int, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
