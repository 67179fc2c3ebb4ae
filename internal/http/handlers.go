package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/ledger"
	"github.com/urojiuyu1986/my-golf-app/internal/standings"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

type errorResponse struct {
	Error     string   `json:"error"`
	Detail    string   `json:"detail,omitempty"`
	Opponents []string `json:"opponents,omitempty"`
}

// writeLedgerError maps ledger errors onto the API's error taxonomy. An
// indeterminate result is a 422 asking for a manual choice; a partial save
// tells the caller the history half is already durable.
func writeLedgerError(w http.ResponseWriter, err error) {
	var indeterminate *ledger.IndeterminateError
	if errors.As(err, &indeterminate) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:     "indeterminate_result",
			Detail:    indeterminate.Error(),
			Opponents: indeterminate.Opponents,
		})
		return
	}
	var partial *ledger.PartialSaveError
	if errors.As(err, &partial) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "partial_save",
			Detail: partial.Error(),
		})
		return
	}
	if errors.Is(err, ledger.ErrMissingDate) || errors.Is(err, ledger.ErrNoOpponents) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_entry", Detail: err.Error()})
		return
	}
	log.Error("Ledger operation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Detail: err.Error()})
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// RecordRoundHandler accepts a proposed round and runs it through the ledger.
func (s *Server) RecordRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry ledger.RoundEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Detail: err.Error()})
			return
		}

		outcome, err := s.Ledger.RecordRound(entry, isDryRunFromContext(r))
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, outcome)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.Store.GetAllMatches()
		if err != nil {
			log.Error("Failed to get matches from store", "error", err)
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			return
		}
		if matches == nil {
			matches = []golf.Match{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

// ReplaceMatchesHandler is the bulk history edit path: the submitted rows
// replace the whole collection and deletions are reconciled against the
// roster. Rows added by hand get an id assigned here.
func (s *Server) ReplaceMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var edited []golf.Match
		if err := json.NewDecoder(r.Body).Decode(&edited); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Detail: err.Error()})
			return
		}
		for i := range edited {
			if edited[i].ID == "" {
				edited[i].ID = uuid.NewString()
			}
		}

		outcome, err := s.Ledger.Reconcile(edited, isDryRunFromContext(r))
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, outcome)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		if players == nil {
			players = []golf.Player{}
		}
		writeJSON(w, http.StatusOK, players)
	}
}

// AddPlayerHandler adds a single player with an initial handicap
// (defaulting to 0 when omitted).
func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var player golf.Player
		if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Detail: err.Error()})
			return
		}
		if player.Name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_entry", Detail: "player name is required"})
			return
		}

		players, err := s.Store.GetAllPlayers()
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			return
		}
		for _, p := range players {
			if p.Name == player.Name {
				writeJSON(w, http.StatusConflict, errorResponse{Error: "duplicate_player", Detail: player.Name})
				return
			}
		}

		if !isDryRunFromContext(r) {
			if err := s.Store.ReplacePlayers(append(players, player)); err != nil {
				log.Error("Failed to add player", "error", err, "name", player.Name)
				http.Error(w, "Failed to add player", http.StatusInternalServerError)
				return
			}
		}
		log.Info("Player added", "name", player.Name, "handicap", player.Handicap)
		writeJSON(w, http.StatusCreated, player)
	}
}

// ReplacePlayersHandler is the administrative bulk edit: the submitted
// roster is accepted as-is, including handicaps the engine would never
// produce itself. No validation on purpose.
func (s *Server) ReplacePlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var players []golf.Player
		if err := json.NewDecoder(r.Body).Decode(&players); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Detail: err.Error()})
			return
		}
		if !isDryRunFromContext(r) {
			if err := s.Store.ReplacePlayers(players); err != nil {
				log.Error("Failed to replace players", "error", err)
				http.Error(w, "Failed to replace players", http.StatusInternalServerError)
				return
			}
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListCoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := s.Store.GetAllCourses()
		if err != nil {
			log.Error("Failed to get courses from store", "error", err)
			http.Error(w, "Failed to get courses", http.StatusInternalServerError)
			return
		}
		if courses == nil {
			courses = []golf.Course{}
		}
		writeJSON(w, http.StatusOK, courses)
	}
}

func (s *Server) AddCourseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var course golf.Course
		if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json", Detail: err.Error()})
			return
		}
		if course.Name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_entry", Detail: "course name is required"})
			return
		}

		courses, err := s.Store.GetAllCourses()
		if err != nil {
			http.Error(w, "Failed to get courses", http.StatusInternalServerError)
			return
		}
		for _, c := range courses {
			if c.Name == course.Name {
				writeJSON(w, http.StatusConflict, errorResponse{Error: "duplicate_course", Detail: course.Name})
				return
			}
		}

		if !isDryRunFromContext(r) {
			if err := s.Store.ReplaceCourses(append(courses, course)); err != nil {
				log.Error("Failed to add course", "error", err, "name", course.Name)
				http.Error(w, "Failed to add course", http.StatusInternalServerError)
				return
			}
		}
		log.Info("Course added", "name", course.Name, "city", course.City)
		writeJSON(w, http.StatusCreated, course)
	}
}

// StandingsHandler computes the head-to-head board, optionally scoped to a
// season via ?season=YYYY.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, ok := seasonParam(w, r)
		if !ok {
			return
		}

		rows, err := s.computeStandings(season)
		if err != nil {
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

// NotifyStandingsHandler posts the current board to the notification channel.
func (s *Server) NotifyStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, ok := seasonParam(w, r)
		if !ok {
			return
		}

		rows, err := s.computeStandings(season)
		if err != nil {
			http.Error(w, "Failed to compute standings", http.StatusInternalServerError)
			return
		}
		if err := s.Notifier.SendStandings(rows, season, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send standings notification", "error", err)
			http.Error(w, "Failed to send standings", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Standings sent!")
	}
}

func (s *Server) computeStandings(season *int) ([]standings.PlayerStanding, error) {
	matches, err := s.Store.GetAllMatches()
	if err != nil {
		log.Error("Failed to get matches from store", "error", err)
		return nil, err
	}
	players, err := s.Store.GetAllPlayers()
	if err != nil {
		log.Error("Failed to get players from store", "error", err)
		return nil, err
	}
	return standings.Compute(matches, players, season), nil
}

func seasonParam(w http.ResponseWriter, r *http.Request) (*int, bool) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_season", Detail: raw})
		return nil, false
	}
	return &year, true
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		if err := s.Store.Clear(); err != nil {
			log.Error("Failed to clear store", "error", err)
			http.Error(w, "Failed to clear store", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}
