package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urojiuyu1986/my-golf-app/internal/golf"
	"github.com/urojiuyu1986/my-golf-app/internal/standings"
)

func testPlayers() []golf.Player {
	return []golf.Player{
		{Name: "Kenji", Handicap: 8},
		{Name: "Taro", Handicap: 12},
	}
}

func testMatches() []golf.Match {
	return []golf.Match{
		{ID: "m1", Date: "2025-04-12", Opponent: "Kenji", Result: golf.ResultWin},
		{ID: "m2", Date: "2025-05-03", Opponent: "Kenji", Result: golf.ResultLoss},
		{ID: "m3", Date: "2025-06-21", Opponent: "Kenji", Result: golf.ResultDraw},
		{ID: "m4", Date: "2024-10-02", Opponent: "Kenji", Result: golf.ResultWin},
		{ID: "m5", Date: "2025-05-03", Opponent: "Taro", Result: golf.ResultLoss},
		{ID: "m6", Date: "not-a-date", Opponent: "Taro", Result: golf.ResultWin},
		{ID: "m7", Date: "2025-07-01", Opponent: "Someone Unknown", Result: golf.ResultWin},
	}
}

func TestComputeAllTime(t *testing.T) {
	result := standings.Compute(testMatches(), testPlayers(), nil)
	require.Len(t, result, 2)

	// Kenji leads on wins and sorts first.
	assert.Equal(t, "Kenji", result[0].Name)
	assert.Equal(t, 2, result[0].Wins)
	assert.Equal(t, 1, result[0].Losses)
	assert.Equal(t, 4, result[0].Played) // draw counted as played
	assert.Equal(t, 8.0, result[0].Handicap)

	// The unparseable-date match still counts in the all-time view.
	assert.Equal(t, "Taro", result[1].Name)
	assert.Equal(t, 1, result[1].Wins)
	assert.Equal(t, 1, result[1].Losses)
}

func TestComputeSeasonFilter(t *testing.T) {
	season := 2025
	result := standings.Compute(testMatches(), testPlayers(), &season)
	require.Len(t, result, 2)

	var kenji, taro standings.PlayerStanding
	for _, s := range result {
		switch s.Name {
		case "Kenji":
			kenji = s
		case "Taro":
			taro = s
		}
	}

	assert.Equal(t, 1, kenji.Wins) // 2024 win excluded
	assert.Equal(t, 1, kenji.Losses)
	assert.Equal(t, 3, kenji.Played)

	// The bad-date win is excluded from every season, never coerced in.
	assert.Equal(t, 0, taro.Wins)
	assert.Equal(t, 1, taro.Losses)
}

func TestComputeEmptySeason(t *testing.T) {
	season := 1999
	result := standings.Compute(testMatches(), testPlayers(), &season)
	require.Len(t, result, 2)
	for _, s := range result {
		assert.Equal(t, 0, s.Wins)
		assert.Equal(t, 0, s.Losses)
		assert.Equal(t, 0, s.Played)
	}
}

func TestComputeIsPure(t *testing.T) {
	matches := testMatches()
	players := testPlayers()

	first := standings.Compute(matches, players, nil)
	second := standings.Compute(matches, players, nil)
	assert.Equal(t, first, second)

	// Inputs are untouched.
	assert.Equal(t, testMatches(), matches)
	assert.Equal(t, testPlayers(), players)
}

func TestComputeNoPlayers(t *testing.T) {
	result := standings.Compute(testMatches(), nil, nil)
	assert.Empty(t, result)
}
