package models

// ModeRecord holds a player's cumulative totals for one mode
type ModeRecord struct {
	// Points is the running point total, which may be negative
	Points int `json:"points"`

	// GamesPlayed is the number of games counted towards Points
	GamesPlayed int `json:"games_played"`
}

// PointsPerGame derives the average for the record
func (r ModeRecord) PointsPerGame() PPG {
	if r.GamesPlayed <= 0 {
		return PPG{}
	}
	return PPG{
		Value: float64(r.Points) / float64(r.GamesPlayed),
		Valid: true,
	}
}

// LedgerEntry is everything stored for a single player
type LedgerEntry struct {
	// ID is the player ID; it is the ledger key and is not stored in the entry body
	ID string `json:"-"`

	// Nickname is the cached display name
	Nickname string `json:"nickname"`

	// AvatarURL is the cached avatar
	AvatarURL string `json:"avatar_url"`

	// ThreePlayer holds totals for 3-player games
	ThreePlayer ModeRecord `json:"3"`

	// FourPlayer holds totals for 4-player games
	FourPlayer ModeRecord `json:"4"`
}

// NewLedgerEntry creates a zeroed entry for a player
func NewLedgerEntry(player *Player) *LedgerEntry {
	return &LedgerEntry{
		ID:        player.ID,
		Nickname:  player.Nickname,
		AvatarURL: player.AvatarURL,
	}
}

// Record returns the totals for a mode, or nil for an unsupported mode
func (e *LedgerEntry) Record(mode Mode) *ModeRecord {
	switch mode {
	case ModeThreePlayer:
		return &e.ThreePlayer
	case ModeFourPlayer:
		return &e.FourPlayer
	default:
		return nil
	}
}

// TotalGamesPlayed sums games played across every mode
func (e *LedgerEntry) TotalGamesPlayed() int {
	return e.ThreePlayer.GamesPlayed + e.FourPlayer.GamesPlayed
}

// Ledger maps player IDs to their entries
type Ledger map[string]*LedgerEntry

// NewLedger returns an empty ledger
func NewLedger() Ledger {
	return make(Ledger)
}

// Ensure returns the entry for the player, creating a zeroed one if needed.
// Display metadata of an existing entry is left untouched.
func (l Ledger) Ensure(player *Player) *LedgerEntry {
	if entry, ok := l[player.ID]; ok {
		return entry
	}
	entry := NewLedgerEntry(player)
	l[player.ID] = entry
	return entry
}

// Clone returns a deep copy of the ledger
func (l Ledger) Clone() Ledger {
	clone := make(Ledger, len(l))
	for id, entry := range l {
		copied := *entry
		clone[id] = &copied
	}
	return clone
}
