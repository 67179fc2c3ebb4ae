package store

import (
	"sync"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
)

// MockStore is an in-memory RecordStore for testing. It is safe for
// concurrent use. Behaviour can be overridden per method via the Func
// fields; by default it keeps the collections in memory.
type MockStore struct {
	mu sync.Mutex

	players []golf.Player
	matches []golf.Match
	courses []golf.Course

	// Spies for method calls
	GetAllPlayersFunc  func() ([]golf.Player, error)
	GetAllMatchesFunc  func() ([]golf.Match, error)
	GetAllCoursesFunc  func() ([]golf.Course, error)
	ReplacePlayersFunc func(players []golf.Player) error
	ReplaceMatchesFunc func(matches []golf.Match) error
	ReplaceCoursesFunc func(courses []golf.Course) error
	ClearFunc          func() error

	// Call records
	ReplacePlayersCalls [][]golf.Player
	ReplaceMatchesCalls [][]golf.Match
	ReplaceCoursesCalls [][]golf.Course
	ClearCalls          int
}

var _ RecordStore = (*MockStore)(nil)

// NewMock creates a new mock store.
func NewMock() *MockStore {
	return &MockStore{}
}

// Seed primes the in-memory collections without recording calls.
func (m *MockStore) Seed(players []golf.Player, matches []golf.Match, courses []golf.Course) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players = players
	m.matches = matches
	m.courses = courses
}

func (m *MockStore) GetAllPlayers() ([]golf.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return append([]golf.Player(nil), m.players...), nil
}

func (m *MockStore) GetAllMatches() ([]golf.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return append([]golf.Match(nil), m.matches...), nil
}

func (m *MockStore) GetAllCourses() ([]golf.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllCoursesFunc != nil {
		return m.GetAllCoursesFunc()
	}
	return append([]golf.Course(nil), m.courses...), nil
}

func (m *MockStore) ReplacePlayers(players []golf.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplacePlayersCalls = append(m.ReplacePlayersCalls, players)
	if m.ReplacePlayersFunc != nil {
		return m.ReplacePlayersFunc(players)
	}
	m.players = append([]golf.Player(nil), players...)
	return nil
}

func (m *MockStore) ReplaceMatches(matches []golf.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceMatchesCalls = append(m.ReplaceMatchesCalls, matches)
	if m.ReplaceMatchesFunc != nil {
		return m.ReplaceMatchesFunc(matches)
	}
	m.matches = append([]golf.Match(nil), matches...)
	return nil
}

func (m *MockStore) ReplaceCourses(courses []golf.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCoursesCalls = append(m.ReplaceCoursesCalls, courses)
	if m.ReplaceCoursesFunc != nil {
		return m.ReplaceCoursesFunc(courses)
	}
	m.courses = append([]golf.Course(nil), courses...)
	return nil
}

func (m *MockStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	m.players, m.matches, m.courses = nil, nil, nil
	return nil
}
