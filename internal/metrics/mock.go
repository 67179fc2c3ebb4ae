package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	roundsRecorded      int
	matchesRecorded     int
	handicapAdjustments int
	reconciliations     int
	recordDurations     []float64
	slackNotifSent      int
	slackNotifFailed    int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		recordDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRoundsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roundsRecorded++
}

func (m *Mock) AddMatchesRecorded(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded += count
}

func (m *Mock) IncHandicapAdjustments() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handicapAdjustments++
}

func (m *Mock) IncReconciliations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reconciliations++
}

func (m *Mock) ObserveRecordDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordDurations = append(m.recordDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RoundsRecorded returns the number of times IncRoundsRecorded was called.
func (m *Mock) RoundsRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roundsRecorded
}

// MatchesRecorded returns the accumulated match count.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// HandicapAdjustments returns the number of deltas applied.
func (m *Mock) HandicapAdjustments() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handicapAdjustments
}

// Reconciliations returns the number of reconciliation runs.
func (m *Mock) Reconciliations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reconciliations
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
