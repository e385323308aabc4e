package scoring

import (
	"sort"

	"github.com/KirkDiggler/tabletally/internal/models"
)

// SortKey selects the column a leaderboard is ordered by
type SortKey string

const (
	SortByTotalGames  SortKey = "total_games"
	SortByTotalPoints SortKey = "total_points"
	SortByP3Points    SortKey = "p3_points"
	SortByP4Points    SortKey = "p4_points"
	SortByP3PPG       SortKey = "p3_ppg"
	SortByP4PPG       SortKey = "p4_ppg"
)

// SortKeys lists every supported key
var SortKeys = []SortKey{
	SortByTotalGames,
	SortByTotalPoints,
	SortByP3Points,
	SortByP4Points,
	SortByP3PPG,
	SortByP4PPG,
}

// IsValid reports whether the key is supported
func (k SortKey) IsValid() bool {
	for _, key := range SortKeys {
		if key == k {
			return true
		}
	}
	return false
}

// SortRows orders rows descending by the key. Rows without data for a
// points-per-game key sort last. Ties fall back to nickname, then ID.
// Unknown keys sort by total games.
func SortRows(rows []*models.LeaderboardRow, key SortKey) {
	if !key.IsValid() {
		key = SortByTotalGames
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]

		switch key {
		case SortByP3PPG:
			if c := comparePPG(a.P3PPG, b.P3PPG); c != 0 {
				return c > 0
			}
		case SortByP4PPG:
			if c := comparePPG(a.P4PPG, b.P4PPG); c != 0 {
				return c > 0
			}
		default:
			av, bv := intColumn(a, key), intColumn(b, key)
			if av != bv {
				return av > bv
			}
		}

		if a.Nickname != b.Nickname {
			return a.Nickname < b.Nickname
		}
		return a.ID < b.ID
	})
}

func intColumn(row *models.LeaderboardRow, key SortKey) int {
	switch key {
	case SortByTotalPoints:
		return row.P3Points + row.P4Points
	case SortByP3Points:
		return row.P3Points
	case SortByP4Points:
		return row.P4Points
	default:
		return row.TotalGamesPlayed
	}
}

// comparePPG returns 1 when a ranks above b, -1 when below, 0 when equal
func comparePPG(a, b models.PPG) int {
	switch {
	case a.Valid && !b.Valid:
		return 1
	case !a.Valid && b.Valid:
		return -1
	case !a.Valid && !b.Valid:
		return 0
	case a.Value > b.Value:
		return 1
	case a.Value < b.Value:
		return -1
	default:
		return 0
	}
}
