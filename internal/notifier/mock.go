package notifier

import (
	"sync"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/standings"
)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	// Spies for method calls
	SendRoundRecordedFunc func(date, course string, matches []golf.Match, dryRun bool) error
	SendStandingsFunc     func(rows []standings.PlayerStanding, season *int, dryRun bool) error

	// Call records
	SendRoundRecordedCalls []SendRoundRecordedCall
	SendStandingsCalls     []SendStandingsCall
}

// SendRoundRecordedCall holds the arguments of a SendRoundRecorded call.
type SendRoundRecordedCall struct {
	Date    string
	Course  string
	Matches []golf.Match
	DryRun  bool
}

// SendStandingsCall holds the arguments of a SendStandings call.
type SendStandingsCall struct {
	Rows   []standings.PlayerStanding
	Season *int
	DryRun bool
}

var _ Notifier = (*MockNotifier)(nil)

// NewMock creates a new mock Notifier.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) SendRoundRecorded(date, course string, matches []golf.Match, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRoundRecordedCalls = append(m.SendRoundRecordedCalls, SendRoundRecordedCall{Date: date, Course: course, Matches: matches, DryRun: dryRun})
	if m.SendRoundRecordedFunc != nil {
		return m.SendRoundRecordedFunc(date, course, matches, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendStandings(rows []standings.PlayerStanding, season *int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, SendStandingsCall{Rows: rows, Season: season, DryRun: dryRun})
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(rows, season, dryRun)
	}
	return nil
}
