package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/urojiuyu1986/my-golf-app/internal/database"
	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/store/sqlite"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "golf.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	recordStore := sqlite.New(db)

	players := []golf.Player{
		{Name: "Kenji", Handicap: 10},
		{Name: "Taro", Handicap: 6},
		{Name: "Yuki", Handicap: 14},
	}
	courses := []golf.Course{
		{Name: "Pebble Creek", City: "Springfield", Region: "IL"},
		{Name: "Lakeside Links", City: "Madison", Region: "WI"},
		{Name: "Cedar Ridge", City: "Tulsa", Region: "OK"},
	}
	if err := recordStore.ReplaceCourses(courses); err != nil {
		log.Fatalf("Failed to seed courses: %s", err)
	}

	// Generate a season of history, applying the handicap rules the same
	// way the ledger does so seeded handicaps stay consistent.
	handicaps := map[string]float64{}
	for _, p := range players {
		handicaps[p.Name] = p.Handicap
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var matches []golf.Match
	date := time.Date(time.Now().Year(), time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		opponent := players[rng.Intn(len(players))]
		course := courses[rng.Intn(len(courses))]
		selfScore := 82 + rng.Intn(16)
		oppScore := 82 + rng.Intn(16)
		applied := rng.Intn(3) > 0

		result := golf.ComputeResult(selfScore, oppScore, handicaps[opponent.Name], applied)
		matches = append(matches, golf.Match{
			ID:              uuid.NewString(),
			Date:            date.Format(golf.DateLayout),
			Course:          course.Name,
			Opponent:        opponent.Name,
			SelfScore:       selfScore,
			OpponentScore:   oppScore,
			Result:          result,
			HandicapApplied: applied,
		})
		delta := golf.HandicapDelta(result, applied)
		handicaps[opponent.Name] = golf.ClampHandicap(handicaps[opponent.Name] + delta)

		date = date.AddDate(0, 0, 7+rng.Intn(14))
	}

	if err := recordStore.ReplaceMatches(matches); err != nil {
		log.Fatalf("Failed to seed matches: %s", err)
	}

	for i := range players {
		players[i].Handicap = handicaps[players[i].Name]
	}
	if err := recordStore.ReplacePlayers(players); err != nil {
		log.Fatalf("Failed to seed players: %s", err)
	}

	log.Info("Seeding complete", "players", len(players), "courses", len(courses), "matches", len(matches))
}
