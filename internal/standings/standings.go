// Package standings computes read-only win/loss tallies from the match
// history. Everything here is pure: collections in, standings out, no
// store access and no caching.
package standings

import (
	"sort"

	"github.com/urojiuyu1986/my-golf-app/internal/golf"
)

// PlayerStanding is one row of the head-to-head dashboard.
type PlayerStanding struct {
	Name     string  `json:"name"`
	Handicap float64 `json:"handicap"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Played   int     `json:"matches_played"`
}

// Compute tallies wins and losses per known player, from the tracked
// player's perspective recorded on each match row. Every roster player gets
// a row even with no matches. When season is non-nil only matches dated in
// that calendar year count; rows with unparseable dates are excluded from
// season-scoped views rather than being lumped into some default year.
func Compute(matches []golf.Match, players []golf.Player, season *int) []PlayerStanding {
	byName := make(map[string]*PlayerStanding, len(players))
	result := make([]PlayerStanding, len(players))
	for i, p := range players {
		result[i] = PlayerStanding{Name: p.Name, Handicap: p.Handicap}
		byName[p.Name] = &result[i]
	}

	for _, m := range matches {
		standing, ok := byName[m.Opponent]
		if !ok {
			continue
		}
		if season != nil {
			year, ok := golf.SeasonYear(m.Date)
			if !ok || year != *season {
				continue
			}
		}
		standing.Played++
		switch m.Result {
		case golf.ResultWin:
			standing.Wins++
		case golf.ResultLoss:
			standing.Losses++
		}
		// draws stay implicit: played - wins - losses
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Wins != result[j].Wins {
			return result[i].Wins > result[j].Wins
		}
		return result[i].Name < result[j].Name
	})
	return result
}
