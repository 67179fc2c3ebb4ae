package ledger

import "github.com/urojiuyu1986/my-golf-app/internal/golf"

// OpponentEntry is one opponent line of a proposed round. Score may be 0
// when the opponent's strokes were not recorded; Result, when set, overrides
// whatever the rule engine would compute.
type OpponentEntry struct {
	Name          string       `json:"name"`
	Score         int          `json:"score"`
	ApplyHandicap bool         `json:"apply_handicap"`
	Result        *golf.Result `json:"result,omitempty"`
}

// RoundEntry is a proposed round as submitted by the input layer: one date,
// one course, the tracked player's gross score and any number of opponents.
// Each opponent becomes its own Match row.
type RoundEntry struct {
	Date      string          `json:"date"`
	Course    string          `json:"course"`
	SelfScore int             `json:"self_score"`
	Opponents []OpponentEntry `json:"opponents"`
}

// RecordOutcome describes what a successful RecordRound did.
type RecordOutcome struct {
	// Matches are the newly appended history rows.
	Matches []golf.Match `json:"matches"`
	// Players is the full roster after handicap deltas were applied.
	Players []golf.Player `json:"players"`
	// SkippedOpponents lists opponents whose handicap update was skipped
	// because they are not on the roster. Their match rows were still
	// recorded.
	SkippedOpponents []string `json:"skipped_opponents,omitempty"`
}

// ReconcileOutcome describes what a reconciliation run did.
type ReconcileOutcome struct {
	// Deleted is the number of history rows removed by the edit.
	Deleted int `json:"deleted"`
	// Reversed is the number of handicap deltas that were rolled back.
	Reversed int `json:"reversed"`
	// Players is the roster after reversals.
	Players []golf.Player `json:"players"`
	// SkippedOpponents lists opponents of deleted rows who are no longer on
	// the roster, so their reversal could not be applied.
	SkippedOpponents []string `json:"skipped_opponents,omitempty"`
}
