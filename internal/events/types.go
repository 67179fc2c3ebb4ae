package events

import (
	"cloud.google.com/go/pubsub"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventRoundRecorded     EventType = "round-recorded"
	EventHistoryReconciled EventType = "history-reconciled"
)

// RoundRecorded is the payload published after a round entry is saved.
type RoundRecorded struct {
	Date    string       `msgpack:"date"`
	Course  string       `msgpack:"course"`
	Matches []golf.Match `msgpack:"matches"`
}

// HistoryReconciled is the payload published after an out-of-band history
// edit has been reconciled.
type HistoryReconciled struct {
	Deleted  int           `msgpack:"deleted"`
	Reversed int           `msgpack:"reversed"`
	Players  []golf.Player `msgpack:"players"`
}
