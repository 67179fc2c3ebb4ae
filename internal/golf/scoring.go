package golf

// HandicapStep is how much an opponent's handicap moves after a match where
// the handicap was applied. It is the single tunable of the ruleset.
const HandicapStep = 2.0

// ComputeResult decides a match outcome from two gross scores. When the
// handicap is applied, the tracked player's gross is reduced by the
// opponent's handicap before comparing; net score is strokes taken, so the
// lower net wins. Missing or non-positive scores yield ResultUnknown rather
// than a guess, and the caller has to fall back to a manual choice.
//
// The computed result is only a suggestion; callers may always override it
// with a manually chosen value.
func ComputeResult(selfGross, opponentGross int, opponentHandicap float64, applyHandicap bool) Result {
	if selfGross <= 0 || opponentGross <= 0 {
		return ResultUnknown
	}

	netSelf := float64(selfGross)
	if applyHandicap {
		netSelf -= opponentHandicap
	}

	switch opp := float64(opponentGross); {
	case netSelf < opp:
		return ResultWin
	case netSelf > opp:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// HandicapDelta computes the adjustment to the opponent's handicap for a
// recorded outcome. Matches decided without the handicap never move it.
// Beating an opponent even with their handicap in play tightens it; losing
// to them loosens it.
func HandicapDelta(result Result, handicapApplied bool) float64 {
	if !handicapApplied {
		return 0
	}
	switch result {
	case ResultWin:
		return -HandicapStep
	case ResultLoss:
		return HandicapStep
	default:
		return 0
	}
}

// ClampHandicap enforces the floor of zero on engine-driven updates. Manual
// roster edits bypass this on purpose.
func ClampHandicap(h float64) float64 {
	if h < 0 {
		return 0
	}
	return h
}
