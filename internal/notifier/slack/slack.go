package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/metrics"
	"github.com/urojiuyu1986/my-golf-app/internal/notifier"
	"github.com/urojiuyu1986/my-golf-app/internal/standings"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return err
	}
	s.metrics.IncSlackNotifSent()
	return nil
}

// SendRoundRecorded posts the per-opponent results of a saved round.
func (s *Notifier) SendRoundRecorded(date, course string, matches []golf.Match, dryRun bool) error {
	return s.sendMessage(FormatRoundRecorded(date, course, matches), dryRun)
}

// SendStandings posts the head-to-head board.
func (s *Notifier) SendStandings(rows []standings.PlayerStanding, season *int, dryRun bool) error {
	return s.sendMessage(FormatStandings(rows, season), dryRun)
}

// FormatRoundRecorded builds the block message for a recorded round.
func FormatRoundRecorded(date, course string, matches []golf.Match) slack.Message {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("⛳ Round recorded — %s", date), true, false),
	)

	var lines []string
	if course != "" {
		lines = append(lines, fmt.Sprintf("*Course:* %s", course))
	}
	for _, m := range matches {
		lines = append(lines, formatMatchLine(m))
	}

	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false),
		nil, nil,
	)
	return slack.NewBlockMessage(header, body)
}

// FormatStandings builds the block message for the standings board.
func FormatStandings(rows []standings.PlayerStanding, season *int) slack.Message {
	title := "🏆 Head-to-head standings"
	if season != nil {
		title = fmt.Sprintf("🏆 Standings — %d season", *season)
	}
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, title, true, false),
	)

	var lines []string
	for i, row := range rows {
		lines = append(lines, fmt.Sprintf("%d. *%s* — %dW %dL (HC %.1f)", i+1, row.Name, row.Wins, row.Losses, row.Handicap))
	}
	if len(lines) == 0 {
		lines = append(lines, "_No matches recorded yet._")
	}

	body := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false),
		nil, nil,
	)
	return slack.NewBlockMessage(header, body)
}

func formatMatchLine(m golf.Match) string {
	var verdict string
	switch m.Result {
	case golf.ResultWin:
		verdict = "🟢 Win"
	case golf.ResultLoss:
		verdict = "🔴 Loss"
	case golf.ResultDraw:
		verdict = "⚪ Draw"
	default:
		verdict = "❓ Undecided"
	}
	line := fmt.Sprintf("%s vs *%s* (%d–%d)", verdict, m.Opponent, m.SelfScore, m.OpponentScore)
	if m.HandicapApplied {
		line += " _handicap applied_"
	}
	return line
}
