// Package ledger keeps the match history and the roster's handicaps
// consistent with each other: recording a round appends history rows and
// applies handicap deltas as one logical unit, and out-of-band history
// edits are reconciled by reversing the deltas of deleted rows.
package ledger

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/urojiuyu1986/my-golf-app/internal/events"
	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/metrics"
	"github.com/urojiuyu1986/my-golf-app/internal/notifier"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
)

// Ledger is the only writer of match history and engine-driven handicap
// updates.
type Ledger struct {
	store    store.RecordStore
	notifier notifier.Notifier
	metrics  metrics.Metrics
	events   events.Publisher
}

// New creates a new Ledger.
func New(store store.RecordStore, notifier notifier.Notifier, metrics metrics.Metrics, events events.Publisher) *Ledger {
	return &Ledger{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		events:   events,
	}
}

// RecordRound turns a round entry into one history row per opponent and
// applies the resulting handicap deltas to the roster.
//
// The two store writes are ordered: history first, then players. A history
// failure means nothing was saved; a player failure is surfaced as a
// *PartialSaveError so the caller knows the rows are already durable.
// Opponents missing from the roster get their row recorded anyway, with the
// handicap update skipped and the name reported back.
func (l *Ledger) RecordRound(entry RoundEntry, dryRun bool) (*RecordOutcome, error) {
	startTime := time.Now()

	if entry.Date == "" {
		return nil, ErrMissingDate
	}
	if len(entry.Opponents) == 0 {
		return nil, ErrNoOpponents
	}

	players, err := l.store.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	history, err := l.store.GetAllMatches()
	if err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	playerIdx := make(map[string]*golf.Player, len(players))
	for i := range players {
		playerIdx[players[i].Name] = &players[i]
	}

	// Decide every outcome before writing anything, so an indeterminate
	// entry rejects the whole round instead of leaving half of it behind.
	var newMatches []golf.Match
	var indeterminate []string
	for _, opp := range entry.Opponents {
		var handicap float64
		if p, ok := playerIdx[opp.Name]; ok {
			handicap = p.Handicap
		}

		result := golf.ComputeResult(entry.SelfScore, opp.Score, handicap, opp.ApplyHandicap)
		if opp.Result != nil && opp.Result.IsDecided() {
			result = *opp.Result
		}
		if !result.IsDecided() {
			indeterminate = append(indeterminate, opp.Name)
			continue
		}

		newMatches = append(newMatches, golf.Match{
			ID:              uuid.NewString(),
			Date:            entry.Date,
			Course:          entry.Course,
			Opponent:        opp.Name,
			SelfScore:       entry.SelfScore,
			OpponentScore:   opp.Score,
			Result:          result,
			HandicapApplied: opp.ApplyHandicap,
		})
	}
	if len(indeterminate) > 0 {
		return nil, &IndeterminateError{Opponents: indeterminate}
	}

	var skipped []string
	for _, m := range newMatches {
		delta := golf.HandicapDelta(m.Result, m.HandicapApplied)
		if delta == 0 {
			continue
		}
		p, ok := playerIdx[m.Opponent]
		if !ok {
			log.Warn("Opponent not on roster, skipping handicap update", "opponent", m.Opponent)
			skipped = append(skipped, m.Opponent)
			continue
		}
		p.Handicap = golf.ClampHandicap(p.Handicap + delta)
		l.metrics.IncHandicapAdjustments()
	}

	if !dryRun {
		if err := l.store.ReplaceMatches(append(history, newMatches...)); err != nil {
			return nil, fmt.Errorf("failed to record matches: %w", err)
		}
		if err := l.store.ReplacePlayers(players); err != nil {
			return nil, &PartialSaveError{Err: err}
		}
	}

	l.metrics.IncRoundsRecorded()
	l.metrics.AddMatchesRecorded(len(newMatches))
	l.metrics.ObserveRecordDuration(time.Since(startTime).Seconds())

	if err := l.notifier.SendRoundRecorded(entry.Date, entry.Course, newMatches, dryRun); err != nil {
		log.Error("Failed to send round notification", "error", err)
	}
	if !dryRun {
		if err := l.events.SendMessage(events.EventRoundRecorded, events.RoundRecorded{
			Date:    entry.Date,
			Course:  entry.Course,
			Matches: newMatches,
		}); err != nil {
			log.Error("Failed to publish round-recorded event", "error", err)
		}
	}

	log.Info("Round recorded", "date", entry.Date, "course", entry.Course, "matches", len(newMatches), "skipped", len(skipped))
	return &RecordOutcome{
		Matches:          newMatches,
		Players:          players,
		SkippedOpponents: skipped,
	}, nil
}

// Reconcile replaces the history with an edited row set and reverses the
// handicap deltas of rows that were deleted. Rows are matched by their id,
// assigned once at record time, so two otherwise identical matches stay
// distinguishable. Edits to a surviving row's result or handicap flag are
// deliberately not reconciled: history reflects what was decided at save
// time. When nothing was deleted this is a cheap no-op on the roster.
func (l *Ledger) Reconcile(edited []golf.Match, dryRun bool) (*ReconcileOutcome, error) {
	original, err := l.store.GetAllMatches()
	if err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	players, err := l.store.GetAllPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	playerIdx := make(map[string]*golf.Player, len(players))
	for i := range players {
		playerIdx[players[i].Name] = &players[i]
	}

	editedIDs := make(map[string]struct{}, len(edited))
	for _, m := range edited {
		editedIDs[m.ID] = struct{}{}
	}

	outcome := &ReconcileOutcome{}
	for _, m := range original {
		if _, kept := editedIDs[m.ID]; kept {
			continue
		}
		outcome.Deleted++

		delta := golf.HandicapDelta(m.Result, m.HandicapApplied)
		if delta == 0 {
			continue
		}
		p, ok := playerIdx[m.Opponent]
		if !ok {
			log.Warn("Opponent of deleted match not on roster, skipping reversal", "opponent", m.Opponent, "matchID", m.ID)
			outcome.SkippedOpponents = append(outcome.SkippedOpponents, m.Opponent)
			continue
		}
		p.Handicap = golf.ClampHandicap(p.Handicap - delta)
		outcome.Reversed++
		l.metrics.IncHandicapAdjustments()
	}

	if !dryRun {
		if err := l.store.ReplaceMatches(edited); err != nil {
			return nil, fmt.Errorf("failed to replace matches: %w", err)
		}
		if err := l.store.ReplacePlayers(players); err != nil {
			return nil, &PartialSaveError{Err: err}
		}
	}

	l.metrics.IncReconciliations()
	outcome.Players = players

	if !dryRun && outcome.Deleted > 0 {
		if err := l.events.SendMessage(events.EventHistoryReconciled, events.HistoryReconciled{
			Deleted:  outcome.Deleted,
			Reversed: outcome.Reversed,
			Players:  players,
		}); err != nil {
			log.Error("Failed to publish reconcile event", "error", err)
		}
	}

	log.Info("History reconciled", "deleted", outcome.Deleted, "reversed", outcome.Reversed)
	return outcome, nil
}
