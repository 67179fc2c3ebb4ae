package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urojiuyu1986/my-golf-app/internal/events"
	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/ledger"
	"github.com/urojiuyu1986/my-golf-app/internal/metrics"
	"github.com/urojiuyu1986/my-golf-app/internal/notifier"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
)

func setupLedger(t *testing.T) (*ledger.Ledger, *store.MockStore, *notifier.MockNotifier, *events.MockPublisher, *metrics.Mock) {
	t.Helper()
	mockStore := store.NewMock()
	mockNotifier := notifier.NewMock()
	mockEvents := events.NewMock()
	mockMetrics := metrics.NewMock()
	l := ledger.New(mockStore, mockNotifier, mockMetrics, mockEvents)
	return l, mockStore, mockNotifier, mockEvents, mockMetrics
}

func playerHandicap(t *testing.T, s *store.MockStore, name string) float64 {
	t.Helper()
	players, err := s.GetAllPlayers()
	require.NoError(t, err)
	for _, p := range players {
		if p.Name == name {
			return p.Handicap
		}
	}
	t.Fatalf("player %s not found", name)
	return 0
}

func TestRecordRound(t *testing.T) {
	l, s, n, e, m := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	outcome, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		Course:    "Pebble Creek",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{
			{Name: "Kenji", Score: 85, ApplyHandicap: true},
		},
	}, false)
	require.NoError(t, err)
	require.Len(t, outcome.Matches, 1)

	// net 90-10=80 beats 85
	match := outcome.Matches[0]
	assert.Equal(t, golf.ResultWin, match.Result)
	assert.NotEmpty(t, match.ID)
	assert.True(t, match.HandicapApplied)

	// winner's opponent tightens by the step
	assert.Equal(t, 8.0, playerHandicap(t, s, "Kenji"))

	matches, err := s.GetAllMatches()
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	assert.Len(t, n.SendRoundRecordedCalls, 1)
	assert.Len(t, e.SendMessageCalls, 1)
	assert.Equal(t, 1, m.RoundsRecorded())
	assert.Equal(t, 1, m.HandicapAdjustments())
}

func TestRecordRoundManualOverride(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	loss := golf.ResultLoss
	outcome, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{
			// auto-compute would say Win; the manual choice rules
			{Name: "Kenji", Score: 85, ApplyHandicap: true, Result: &loss},
		},
	}, false)
	require.NoError(t, err)
	assert.Equal(t, golf.ResultLoss, outcome.Matches[0].Result)
	assert.Equal(t, 12.0, playerHandicap(t, s, "Kenji"))
}

func TestRecordRoundIndeterminate(t *testing.T) {
	l, s, _, e, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	_, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{
			{Name: "Kenji", Score: 0, ApplyHandicap: true}, // no score, no manual result
		},
	}, false)

	var indeterminate *ledger.IndeterminateError
	require.ErrorAs(t, err, &indeterminate)
	assert.Equal(t, []string{"Kenji"}, indeterminate.Opponents)

	// nothing written, nothing published
	matches, _ := s.GetAllMatches()
	assert.Empty(t, matches)
	assert.Empty(t, s.ReplaceMatchesCalls)
	assert.Empty(t, e.SendMessageCalls)

	// a manual result unblocks the same entry
	draw := golf.ResultDraw
	outcome, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{
			{Name: "Kenji", Score: 0, ApplyHandicap: true, Result: &draw},
		},
	}, false)
	require.NoError(t, err)
	assert.Equal(t, golf.ResultDraw, outcome.Matches[0].Result)
	assert.Equal(t, 10.0, playerHandicap(t, s, "Kenji"), "draw leaves the handicap alone")
}

func TestRecordRoundUnknownOpponent(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	outcome, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{
			{Name: "Kenji", Score: 85, ApplyHandicap: true},
			{Name: "Stranger", Score: 95, ApplyHandicap: true},
		},
	}, false)
	require.NoError(t, err)

	// the stranger's match row is still recorded
	require.Len(t, outcome.Matches, 2)
	assert.Equal(t, []string{"Stranger"}, outcome.SkippedOpponents)

	matches, _ := s.GetAllMatches()
	assert.Len(t, matches, 2)

	// only the known opponent's handicap moved
	players, _ := s.GetAllPlayers()
	require.Len(t, players, 1)
	assert.Equal(t, 8.0, players[0].Handicap)
}

func TestRecordRoundHandicapFloor(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 1}}, nil, nil)

	entry := ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 80,
		Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: 95, ApplyHandicap: true}},
	}
	// Two wins against a 1.0 handicap clamp at 0, not -3.
	_, err := l.RecordRound(entry, false)
	require.NoError(t, err)
	_, err = l.RecordRound(entry, false)
	require.NoError(t, err)

	assert.Equal(t, 0.0, playerHandicap(t, s, "Kenji"))
}

func TestRecordRoundNotApplied(t *testing.T) {
	l, s, _, _, m := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	_, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 80,
		Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: 95, ApplyHandicap: false}},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 10.0, playerHandicap(t, s, "Kenji"))
	assert.Equal(t, 0, m.HandicapAdjustments())
}

func TestRecordRoundValidation(t *testing.T) {
	l, _, _, _, _ := setupLedger(t)

	_, err := l.RecordRound(ledger.RoundEntry{SelfScore: 90, Opponents: []ledger.OpponentEntry{{Name: "Kenji"}}}, false)
	assert.ErrorIs(t, err, ledger.ErrMissingDate)

	_, err = l.RecordRound(ledger.RoundEntry{Date: "2025-07-13", SelfScore: 90}, false)
	assert.ErrorIs(t, err, ledger.ErrNoOpponents)
}

func TestRecordRoundPartialSave(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)
	s.ReplacePlayersFunc = func([]golf.Player) error { return errors.New("sheet quota exceeded") }

	_, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: 85, ApplyHandicap: true}},
	}, false)

	var partial *ledger.PartialSaveError
	require.ErrorAs(t, err, &partial, "player-write failure must be distinguishable from a full failure")

	// the history half is durable
	assert.Len(t, s.ReplaceMatchesCalls, 1)
}

func TestRecordRoundHistoryWriteFails(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)
	s.ReplaceMatchesFunc = func([]golf.Match) error { return errors.New("boom") }

	_, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: 85, ApplyHandicap: true}},
	}, false)

	require.Error(t, err)
	var partial *ledger.PartialSaveError
	assert.False(t, errors.As(err, &partial), "history failure means nothing was saved")
	assert.Empty(t, s.ReplacePlayersCalls, "player write must not happen after a history failure")
}

func TestRecordRoundDryRun(t *testing.T) {
	l, s, n, e, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	outcome, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 90,
		Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: 85, ApplyHandicap: true}},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, golf.ResultWin, outcome.Matches[0].Result)

	assert.Empty(t, s.ReplaceMatchesCalls)
	assert.Empty(t, s.ReplacePlayersCalls)
	assert.Empty(t, e.SendMessageCalls)
	require.Len(t, n.SendRoundRecordedCalls, 1)
	assert.True(t, n.SendRoundRecordedCalls[0].DryRun)
}

func recordThree(t *testing.T, l *ledger.Ledger) {
	t.Helper()
	for _, m := range []struct {
		self, opp int
	}{
		{80, 95}, // win
		{99, 85}, // loss (handicap 8 after first win: 99-8=91 > 85)
		{80, 95}, // win
	} {
		_, err := l.RecordRound(ledger.RoundEntry{
			Date:      "2025-07-13",
			SelfScore: m.self,
			Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: m.opp, ApplyHandicap: true}},
		}, false)
		require.NoError(t, err)
	}
}

func TestReconcileDeletion(t *testing.T) {
	l, s, _, e, m := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	// Win, Loss, Win with handicap applied: 10 -2 +2 -2 = 8
	recordThree(t, l)
	require.Equal(t, 8.0, playerHandicap(t, s, "Kenji"))

	matches, err := s.GetAllMatches()
	require.NoError(t, err)
	require.Len(t, matches, 3)
	require.Equal(t, golf.ResultLoss, matches[1].Result)

	// Delete the middle (Loss) row: its +2 is reversed.
	edited := []golf.Match{matches[0], matches[2]}
	outcome, err := l.Reconcile(edited, false)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Deleted)
	assert.Equal(t, 1, outcome.Reversed)
	assert.Equal(t, 6.0, playerHandicap(t, s, "Kenji"))

	remaining, _ := s.GetAllMatches()
	assert.Len(t, remaining, 2)
	assert.Equal(t, 1, m.Reconciliations())
	assert.NotEmpty(t, e.SendMessageCalls)
}

func TestReconcileFullDeletionRestoresHandicap(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)

	recordThree(t, l)
	require.Equal(t, 8.0, playerHandicap(t, s, "Kenji"))

	outcome, err := l.Reconcile([]golf.Match{}, false)
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Deleted)

	// Deleting the whole history restores the pre-history handicap.
	assert.Equal(t, 10.0, playerHandicap(t, s, "Kenji"))
}

func TestReconcileNoop(t *testing.T) {
	l, s, _, e, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)
	recordThree(t, l)
	e.Reset()

	matches, _ := s.GetAllMatches()
	outcome, err := l.Reconcile(matches, false)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Deleted)
	assert.Equal(t, 0, outcome.Reversed)
	assert.Equal(t, 8.0, playerHandicap(t, s, "Kenji"))
	assert.Empty(t, e.SendMessageCalls, "no deletions, no event")
}

func TestReconcileEditedRowNotReconciled(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)
	recordThree(t, l)

	// Flipping a surviving row's result does not touch handicaps; only
	// deletions are reconciled.
	matches, _ := s.GetAllMatches()
	matches[0].Result = golf.ResultLoss
	outcome, err := l.Reconcile(matches, false)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Reversed)
	assert.Equal(t, 8.0, playerHandicap(t, s, "Kenji"))
}

func TestReconcileReversalClampsAtZero(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 1}}, nil, nil)

	// A loss with handicap applied: 1 + 2 = 3.
	_, err := l.RecordRound(ledger.RoundEntry{
		Date:      "2025-07-13",
		SelfScore: 99,
		Opponents: []ledger.OpponentEntry{{Name: "Kenji", Score: 85, ApplyHandicap: true}},
	}, false)
	require.NoError(t, err)
	require.Equal(t, 3.0, playerHandicap(t, s, "Kenji"))

	// Manually tighten the roster below the reversal amount, then delete
	// the loss: 0.5 - 2 clamps to 0.
	require.NoError(t, s.ReplacePlayers([]golf.Player{{Name: "Kenji", Handicap: 0.5}}))
	_, err = l.Reconcile([]golf.Match{}, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, playerHandicap(t, s, "Kenji"))
}

func TestReconcileUnknownOpponent(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed(
		[]golf.Player{{Name: "Kenji", Handicap: 10}},
		[]golf.Match{{ID: "m1", Date: "2025-05-01", Opponent: "Ghost", Result: golf.ResultWin, HandicapApplied: true}},
		nil,
	)

	outcome, err := l.Reconcile([]golf.Match{}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Deleted)
	assert.Equal(t, 0, outcome.Reversed)
	assert.Equal(t, []string{"Ghost"}, outcome.SkippedOpponents)
}

func TestReconcilePartialSave(t *testing.T) {
	l, s, _, _, _ := setupLedger(t)
	s.Seed([]golf.Player{{Name: "Kenji", Handicap: 10}}, nil, nil)
	recordThree(t, l)

	s.ReplacePlayersFunc = func([]golf.Player) error { return errors.New("sheet quota exceeded") }
	_, err := l.Reconcile([]golf.Match{}, false)

	var partial *ledger.PartialSaveError
	require.ErrorAs(t, err, &partial)
}
