package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors for round entries.
var (
	ErrNoOpponents = errors.New("round entry has no opponents")
	ErrMissingDate = errors.New("round entry has no date")
)

// IndeterminateError is returned when one or more opponent entries cannot be
// auto-decided (missing or non-positive scores) and no manual result was
// supplied. Nothing is written; the caller has to force a manual choice for
// the listed opponents. It is a signaled state, not a defaulted draw.
type IndeterminateError struct {
	Opponents []string
}

func (e *IndeterminateError) Error() string {
	return fmt.Sprintf("result cannot be auto-decided for %s: supply a manual result", strings.Join(e.Opponents, ", "))
}

// PartialSaveError reports that the match history was persisted but the
// subsequent player handicap write failed. The store has no transactions
// spanning collections, so the caller must know which half succeeded: a
// retry needs to redo only the player write.
type PartialSaveError struct {
	Err error
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("partially saved: matches recorded but player handicaps not updated: %v", e.Err)
}

func (e *PartialSaveError) Unwrap() error {
	return e.Err
}
