package models

import (
	"encoding/json"
	"math"
	"time"
)

// PPG is a points-per-game value. The zero value means "no data",
// which is distinct from a true average of 0.
type PPG struct {
	Value float64
	Valid bool
}

// Rounded returns the value rounded to two decimals
func (p PPG) Rounded() float64 {
	return math.Round(p.Value*100) / 100
}

// MarshalJSON encodes the value rounded to two decimals, or null for no data
func (p PPG) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Rounded())
}

// LeaderboardRow is the derived view of one ledger entry
type LeaderboardRow struct {
	ID               string `json:"id"`
	Nickname         string `json:"nickname"`
	AvatarURL        string `json:"avatar"`
	P3Points         int    `json:"p3_points"`
	P3GamesPlayed    int    `json:"p3_games_played"`
	P3PPG            PPG    `json:"p3_ppg"`
	P4Points         int    `json:"p4_points"`
	P4GamesPlayed    int    `json:"p4_games_played"`
	P4PPG            PPG    `json:"p4_ppg"`
	TotalGamesPlayed int    `json:"total_games_played"`
}

// NewLeaderboardRow derives a row from a ledger entry
func NewLeaderboardRow(entry *LedgerEntry) *LeaderboardRow {
	return &LeaderboardRow{
		ID:               entry.ID,
		Nickname:         entry.Nickname,
		AvatarURL:        entry.AvatarURL,
		P3Points:         entry.ThreePlayer.Points,
		P3GamesPlayed:    entry.ThreePlayer.GamesPlayed,
		P3PPG:            entry.ThreePlayer.PointsPerGame(),
		P4Points:         entry.FourPlayer.Points,
		P4GamesPlayed:    entry.FourPlayer.GamesPlayed,
		P4PPG:            entry.FourPlayer.PointsPerGame(),
		TotalGamesPlayed: entry.TotalGamesPlayed(),
	}
}

// MaxInt is a column maximum that may be absent when no row qualifies
type MaxInt struct {
	Value int
	Valid bool
}

// Observe folds a value into the maximum
func (m *MaxInt) Observe(v int) {
	if !m.Valid || v > m.Value {
		m.Value = v
		m.Valid = true
	}
}

// MaxPPG is a points-per-game column maximum
type MaxPPG struct {
	Value float64
	Valid bool
}

// Observe folds a value into the maximum at display precision, ignoring no data
func (m *MaxPPG) Observe(p PPG) {
	if !p.Valid {
		return
	}
	if v := p.Rounded(); !m.Valid || v > m.Value {
		m.Value = v
		m.Valid = true
	}
}

// Maxima holds the crowned column maximums of a leaderboard
type Maxima struct {
	P3Points MaxInt
	P3PPG    MaxPPG
	P4Points MaxInt
	P4PPG    MaxPPG
}

// Crowns marks which of a row's columns hold the maximum
type Crowns struct {
	P3Points bool
	P3PPG    bool
	P4Points bool
	P4PPG    bool
}

// Leaderboard is every derived row plus the column maximums
type Leaderboard struct {
	// Rows are in no particular order; callers sort
	Rows []*LeaderboardRow

	// Maxima are the per-column leaders
	Maxima Maxima

	// GeneratedAt is when the leaderboard was computed
	GeneratedAt time.Time
}

// Crowns reports which columns of the row are at the column maximum.
// Ties are all crowned. Modes the row has not played are never crowned.
// Points per game compare at two decimals, the precision they are shown at.
func (l *Leaderboard) Crowns(row *LeaderboardRow) Crowns {
	m := l.Maxima
	return Crowns{
		P3Points: row.P3GamesPlayed > 0 && m.P3Points.Valid && row.P3Points == m.P3Points.Value,
		P3PPG:    row.P3PPG.Valid && m.P3PPG.Valid && row.P3PPG.Rounded() == m.P3PPG.Value,
		P4Points: row.P4GamesPlayed > 0 && m.P4Points.Valid && row.P4Points == m.P4Points.Value,
		P4PPG:    row.P4PPG.Valid && m.P4PPG.Valid && row.P4PPG.Rounded() == m.P4PPG.Value,
	}
}
