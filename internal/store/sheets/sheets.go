// Package sheets implements the RecordStore on a Google Spreadsheet, which
// is what the hosted dashboard deployments actually persist to. Each
// collection lives on its own worksheet, read and rewritten wholesale.
package sheets

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
)

// Worksheet names, inherited from the spreadsheet the dashboard was built
// around.
const (
	SheetFriends = "friends"
	SheetHistory = "history"
	SheetCourses = "courses"
)

type recordStore struct {
	srv           *sheetsv4.Service
	spreadsheetID string
	mu            sync.Mutex
}

// New creates a Sheets-backed RecordStore authenticated with a service
// account key file.
func New(serviceAccountJSONPath, spreadsheetID string) (store.RecordStore, error) {
	if _, err := os.Stat(serviceAccountJSONPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	ctx := context.Background()
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(serviceAccountJSONPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, err
	}
	return &recordStore{srv: srv, spreadsheetID: spreadsheetID}, nil
}

func (s *recordStore) readAll(sheet string) ([][]any, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, sheet+"!A:Z").Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// replaceAll clears a worksheet and rewrites it with a header row plus the
// given rows.
func (s *recordStore) replaceAll(sheet string, header []any, rows [][]any) error {
	if _, err := s.srv.Spreadsheets.Values.Clear(s.spreadsheetID, sheet+"!A:Z", &sheetsv4.ClearValuesRequest{}).Do(); err != nil {
		return fmt.Errorf("failed to clear sheet %s: %w", sheet, err)
	}
	vr := &sheetsv4.ValueRange{Values: append([][]any{header}, rows...)}
	_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, sheet+"!A1", vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("failed to rewrite sheet %s: %w", sheet, err)
	}
	return nil
}

func (s *recordStore) GetAllPlayers() ([]golf.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readAll(SheetFriends)
	if err != nil {
		return nil, err
	}
	var players []golf.Player
	// header row at index 0
	for i := 1; i < len(values); i++ {
		row := values[i]
		name := get(row, 0)
		if name == "" {
			continue
		}
		players = append(players, golf.Player{
			Name:     name,
			Handicap: getFloat(row, 1),
			Photo:    get(row, 2),
		})
	}
	return players, nil
}

func (s *recordStore) GetAllMatches() ([]golf.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readAll(SheetHistory)
	if err != nil {
		return nil, err
	}
	var matches []golf.Match
	for i := 1; i < len(values); i++ {
		row := values[i]
		if get(row, 3) == "" { // no opponent means a blank filler row
			continue
		}
		matches = append(matches, golf.Match{
			ID:              get(row, 0),
			Date:            get(row, 1),
			Course:          get(row, 2),
			Opponent:        get(row, 3),
			SelfScore:       getInt(row, 4),
			OpponentScore:   getInt(row, 5),
			Result:          golf.Result(get(row, 6)),
			HandicapApplied: getBool(row, 7),
		})
	}
	return matches, nil
}

func (s *recordStore) GetAllCourses() ([]golf.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.readAll(SheetCourses)
	if err != nil {
		return nil, err
	}
	var courses []golf.Course
	for i := 1; i < len(values); i++ {
		row := values[i]
		name := get(row, 0)
		if name == "" {
			continue
		}
		courses = append(courses, golf.Course{
			Name:   name,
			City:   get(row, 1),
			Region: get(row, 2),
		})
	}
	return courses, nil
}

func (s *recordStore) ReplacePlayers(players []golf.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]any, 0, len(players))
	for _, p := range players {
		rows = append(rows, []any{p.Name, p.Handicap, p.Photo})
	}
	return s.replaceAll(SheetFriends, []any{"Name", "Handicap", "Photo"}, rows)
}

func (s *recordStore) ReplaceMatches(matches []golf.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]any, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []any{
			m.ID, m.Date, m.Course, m.Opponent,
			m.SelfScore, m.OpponentScore, string(m.Result),
			strconv.FormatBool(m.HandicapApplied),
		})
	}
	return s.replaceAll(SheetHistory, []any{"ID", "Date", "Course", "Opponent", "SelfScore", "OpponentScore", "Result", "HandicapApplied"}, rows)
}

func (s *recordStore) ReplaceCourses(courses []golf.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]any, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []any{c.Name, c.City, c.Region})
	}
	return s.replaceAll(SheetCourses, []any{"Name", "City", "Region"}, rows)
}

func (s *recordStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sheet := range []string{SheetHistory, SheetFriends, SheetCourses} {
		if _, err := s.srv.Spreadsheets.Values.Clear(s.spreadsheetID, sheet+"!A2:Z", &sheetsv4.ClearValuesRequest{}).Do(); err != nil {
			log.Error("Failed to clear sheet", "sheet", sheet, "error", err)
			return err
		}
	}
	return nil
}

func get(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return fmt.Sprint(row[i])
}

func getInt(row []any, i int) int {
	n, err := strconv.Atoi(get(row, i))
	if err != nil {
		return 0
	}
	return n
}

func getFloat(row []any, i int) float64 {
	f, err := strconv.ParseFloat(get(row, i), 64)
	if err != nil {
		return 0
	}
	return f
}

func getBool(row []any, i int) bool {
	b, err := strconv.ParseBool(get(row, i))
	if err != nil {
		return false
	}
	return b
}
