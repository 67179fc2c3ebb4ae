package store

import "github.com/urojiuyu1986/my-golf-app/internal/golf"

// RecordStore persists the three collections the tracker works with. The
// backing store has no partial updates and no query language: every
// operation reads a fully materialized collection or replaces one wholesale,
// which is exactly how the spreadsheet-backed deployments behave.
type RecordStore interface {
	GetAllPlayers() ([]golf.Player, error)
	GetAllMatches() ([]golf.Match, error)
	GetAllCourses() ([]golf.Course, error)
	ReplacePlayers(players []golf.Player) error
	ReplaceMatches(matches []golf.Match) error
	ReplaceCourses(courses []golf.Course) error
	Clear() error
}
