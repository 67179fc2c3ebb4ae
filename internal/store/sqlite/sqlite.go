// Package sqlite implements the RecordStore on a local or Turso-hosted
// SQLite database. Replacements are transactional delete-and-insert, which
// preserves the read/replace-whole-collection contract while keeping reads
// cheap.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/store"
)

type recordStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a sqlite-backed RecordStore.
func New(db *sql.DB) store.RecordStore {
	return &recordStore{db: db}
}

func (s *recordStore) GetAllPlayers() ([]golf.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT name, handicap, photo FROM players ORDER BY name")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []golf.Player
	for rows.Next() {
		var p golf.Player
		var photo sql.NullString
		if err := rows.Scan(&p.Name, &p.Handicap, &photo); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Photo = photo.String
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetAllMatches returns the history in recorded order. Rowid order is
// insertion order here because every write is a full replacement.
func (s *recordStore) GetAllMatches() ([]golf.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, date, course, opponent, self_score, opponent_score, result, handicap_applied
		FROM matches ORDER BY rowid
	`)
	if err != nil {
		log.Error("Failed to query matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var matches []golf.Match
	for rows.Next() {
		var m golf.Match
		var result string
		if err := rows.Scan(&m.ID, &m.Date, &m.Course, &m.Opponent, &m.SelfScore, &m.OpponentScore, &result, &m.HandicapApplied); err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		m.Result = golf.Result(result)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *recordStore) GetAllCourses() ([]golf.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT name, city, region FROM courses ORDER BY name")
	if err != nil {
		log.Error("Failed to query courses", "error", err)
		return nil, err
	}
	defer rows.Close()

	var courses []golf.Course
	for rows.Next() {
		var c golf.Course
		var city, region sql.NullString
		if err := rows.Scan(&c.Name, &city, &region); err != nil {
			log.Error("Failed to scan course row", "error", err)
			continue
		}
		c.City = city.String
		c.Region = region.String
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *recordStore) ReplacePlayers(players []golf.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear players: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO players (name, handicap, photo) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, p := range players {
		if _, err := stmt.Exec(p.Name, p.Handicap, p.Photo); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert player %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func (s *recordStore) ReplaceMatches(matches []golf.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT INTO matches (id, date, course, opponent, self_score, opponent_score, result, handicap_applied)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, m := range matches {
		if _, err := stmt.Exec(m.ID, m.Date, m.Course, m.Opponent, m.SelfScore, m.OpponentScore, string(m.Result), m.HandicapApplied); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert match %q: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

func (s *recordStore) ReplaceCourses(courses []golf.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM courses"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear courses: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO courses (name, city, region) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, c := range courses {
		if _, err := stmt.Exec(c.Name, c.City, c.Region); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert course %q: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

func (s *recordStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, table := range []string{"matches", "players", "courses"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
