package web

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/KirkDiggler/tabletally/internal/common/display"
	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/a-h/templ"
)

// handlePage handles GET / with the rendered leaderboard
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := s.scoringService.ComputeLeaderboard(r.Context())
	if err != nil {
		log.Printf("Error computing leaderboard: %v", err)
		http.Error(w, "Failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	scoring.SortRows(leaderboard.Rows, scoring.SortByTotalGames)
	templ.Handler(LeaderboardPage(leaderboard)).ServeHTTP(w, r)
}

// LeaderboardPage renders the full leaderboard document
func LeaderboardPage(leaderboard *models.Leaderboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if err := LeaderboardRows(leaderboard).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageTail)
		return err
	})
}

// LeaderboardRows renders the table body rows
func LeaderboardRows(leaderboard *models.Leaderboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if len(leaderboard.Rows) == 0 {
			b.WriteString(`<tr><td colspan="8" class="empty">No games recorded yet.</td></tr>`)
		}
		for _, row := range leaderboard.Rows {
			crowns := leaderboard.Crowns(row)
			b.WriteString("<tr>")
			fmt.Fprintf(&b, `<td class="player"><img src="%s" alt="" width="32" height="32"> %s</td>`,
				templ.EscapeString(row.AvatarURL), templ.EscapeString(row.Nickname))
			writeCell(&b, display.Crowned(display.Int(row.P3Points), crowns.P3Points))
			writeCell(&b, display.Crowned(display.PPG(row.P3PPG), crowns.P3PPG))
			writeCell(&b, display.Int(row.P3GamesPlayed))
			writeCell(&b, display.Crowned(display.Int(row.P4Points), crowns.P4Points))
			writeCell(&b, display.Crowned(display.PPG(row.P4PPG), crowns.P4PPG))
			writeCell(&b, display.Int(row.P4GamesPlayed))
			writeCell(&b, display.Int(row.TotalGamesPlayed))
			b.WriteString("</tr>\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeCell(b *strings.Builder, value string) {
	fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(value))
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Leaderboard</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; background: #1e1f22; color: #f2f3f5; }
table { border-collapse: collapse; width: 100%; }
th, td { padding: .5rem .75rem; text-align: right; border-bottom: 1px solid #3a3c42; }
th.player, td.player { text-align: left; }
td.player img { border-radius: 50%; vertical-align: middle; }
td.empty { text-align: center; }
</style>
</head>
<body>
<h1>Leaderboard</h1>
<table>
<thead>
<tr><th class="player">Player</th><th>3P Points</th><th>3P PPG</th><th>3P Games</th><th>4P Points</th><th>4P PPG</th><th>4P Games</th><th>Total Games</th></tr>
</thead>
<tbody id="leaderboard">
`

// pageTail re-fetches the rows whenever the event stream signals a change.
// Crowns follow the server rules: only rows that played a mode compete, and
// points per game compare at the two decimals the API returns.
const pageTail = `</tbody>
</table>
<script>
(function () {
  const body = document.getElementById("leaderboard");
  const fmt = new Intl.NumberFormat("en", { maximumFractionDigits: 2 });

  function esc(s) {
    const d = document.createElement("div");
    d.textContent = s;
    return d.innerHTML;
  }

  function maxOf(rows, value, played) {
    let max = null;
    for (const r of rows) {
      if (r[played] > 0 && value(r) !== null && (max === null || value(r) > max)) {
        max = value(r);
      }
    }
    return max;
  }

  function cell(v, max, played) {
    const text = v === null ? "-" : fmt.format(v);
    const crown = played > 0 && v !== null && v === max ? " \u{1F451}" : "";
    return "<td>" + text + crown + "</td>";
  }

  function render(rows) {
    if (rows.length === 0) {
      body.innerHTML = '<tr><td colspan="8" class="empty">No games recorded yet.</td></tr>';
      return;
    }
    const m = {
      p3p: maxOf(rows, r => r.p3_points, "p3_games_played"),
      p3g: maxOf(rows, r => r.p3_ppg, "p3_games_played"),
      p4p: maxOf(rows, r => r.p4_points, "p4_games_played"),
      p4g: maxOf(rows, r => r.p4_ppg, "p4_games_played"),
    };
    body.innerHTML = rows.map(r =>
      "<tr>" +
      '<td class="player"><img src="' + esc(r.avatar) + '" alt="" width="32" height="32"> ' + esc(r.nickname) + "</td>" +
      cell(r.p3_points, m.p3p, r.p3_games_played) +
      cell(r.p3_ppg, m.p3g, r.p3_games_played) +
      "<td>" + fmt.format(r.p3_games_played) + "</td>" +
      cell(r.p4_points, m.p4p, r.p4_games_played) +
      cell(r.p4_ppg, m.p4g, r.p4_games_played) +
      "<td>" + fmt.format(r.p4_games_played) + "</td>" +
      "<td>" + fmt.format(r.total_games_played) + "</td>" +
      "</tr>"
    ).join("\n");
  }

  function refresh() {
    fetch("/api/leaderboard")
      .then(res => res.json())
      .then(render)
      .catch(err => console.error("leaderboard refresh failed", err));
  }

  const events = new EventSource("/events");
  events.onmessage = refresh;
})();
</script>
</body>
</html>
`
