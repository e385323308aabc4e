package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
)

// handleLeaderboardAPI handles GET /api/leaderboard
func (s *Server) handleLeaderboardAPI(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := s.scoringService.ComputeLeaderboard(r.Context())
	if err != nil {
		log.Printf("Error computing leaderboard: %v", err)
		http.Error(w, "Failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	rows := leaderboard.Rows
	if rows == nil {
		rows = []*models.LeaderboardRow{}
	}
	scoring.SortRows(rows, scoring.SortKey(r.URL.Query().Get("sort")))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		log.Printf("Error encoding leaderboard: %v", err)
	}
}
