package notifier

import (
	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/standings"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendRoundRecorded announces the result rows of a freshly saved round.
	SendRoundRecorded(date, course string, matches []golf.Match, dryRun bool) error
	// SendStandings posts the current head-to-head board.
	SendStandings(rows []standings.PlayerStanding, season *int, dryRun bool) error
}
