// Package fixture holds the mock content shown on the dashboard pages: player statistics and
// a generated archive of historical games. It is seeding data, not part of the prediction path.
package fixture

import (
	"math"
	"sort"
)

// PlayerStats is a player's career summary.
type PlayerStats struct {
	Name             string   `json:"name"`
	Elo              int      `json:"elo"`
	GamesPlayed      int      `json:"gamesPlayed"`
	Wins             int      `json:"wins"`
	Losses           int      `json:"losses"`
	Draws            int      `json:"draws"`
	Accuracy         float64  `json:"accuracy"`
	FavoriteOpenings []string `json:"favoriteOpenings"`
}

// WinRate is the share of games won in whole percent.
func (p PlayerStats) WinRate() int {
	if p.GamesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(p.Wins) / float64(p.GamesPlayed) * 100))
}

var players = []PlayerStats{
	{
		Name:             "Magnus Carlsen",
		Elo:              2830,
		GamesPlayed:      1247,
		Wins:             892,
		Losses:           143,
		Draws:            212,
		Accuracy:         94.2,
		FavoriteOpenings: []string{"Ruy Lopez", "Italian Game", "Queen's Gambit"},
	},
	{
		Name:             "Hikaru Nakamura",
		Elo:              2794,
		GamesPlayed:      1532,
		Wins:             1043,
		Losses:           201,
		Draws:            288,
		Accuracy:         92.8,
		FavoriteOpenings: []string{"Sicilian Defense", "King's Indian", "Nimzo-Indian"},
	},
	{
		Name:             "Fabiano Caruana",
		Elo:              2786,
		GamesPlayed:      1089,
		Wins:             734,
		Losses:           156,
		Draws:            199,
		Accuracy:         93.5,
		FavoriteOpenings: []string{"Petroff Defense", "Berlin Defense", "Queen's Gambit"},
	},
	{
		Name:             "Ding Liren",
		Elo:              2780,
		GamesPlayed:      967,
		Wins:             651,
		Losses:           134,
		Draws:            182,
		Accuracy:         92.1,
		FavoriteOpenings: []string{"English Opening", "Catalan", "Grünfeld Defense"},
	},
}

// Players returns a copy of the static player statistics.
func Players() []PlayerStats {
	retVal := make([]PlayerStats, len(players))
	copy(retVal, players)
	return retVal
}

// Standing is a leaderboard row.
type Standing struct {
	Rank int `json:"rank"`
	PlayerStats
	WinRate int `json:"winRate"`
}

// byElo sorts the highest rated player first.
type byElo []PlayerStats

func (l byElo) Len() int           { return len(l) }
func (l byElo) Less(i, j int) bool { return l[i].Elo > l[j].Elo }
func (l byElo) Swap(i, j int)      { l[i], l[j] = l[j], l[i] }

// Leaderboard ranks ps by Elo, highest first. Ties keep their input order.
func Leaderboard(ps []PlayerStats) []Standing {
	sorted := make([]PlayerStats, len(ps))
	copy(sorted, ps)
	sort.Stable(byElo(sorted))

	retVal := make([]Standing, len(sorted))
	for i, p := range sorted {
		retVal[i] = Standing{Rank: i + 1, PlayerStats: p, WinRate: p.WinRate()}
	}
	return retVal
}
