package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/tabletally/internal/common/display"
	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Discord caps embeds per message, fields per embed, and the characters
// across every embed of one message
const (
	maxEmbeds         = 10
	maxFieldsPerEmbed = 25
	maxMessageChars   = 6000
)

const leaderboardTitle = "Leaderboard"

// zeroWidthSpace is used as a field name so only the value shows
const zeroWidthSpace = "\u200b"

// gameRecordedContent is the plain reply for a recorded game
func gameRecordedContent(playerCount int) string {
	return fmt.Sprintf("Game recorded for %d players. Use /leaderboard to see updated leaderboard.", playerCount)
}

// renderGameRecorded renders the reply for a recorded game
func renderGameRecorded(msg *messaging.GetGameRecordedMessageOutput, playerCount int) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: gameRecordedContent(playerCount),
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       msg.Title,
				Description: msg.Message,
				Color:       colorSuccess,
				Footer: &discordgo.MessageEmbedFooter{
					Text: msg.Flavor,
				},
			},
		},
	}
}

// webLinkMessage is the follow-up pointing at the web leaderboard
func webLinkMessage(publicURL string) string {
	if publicURL == "" {
		return "🌐 The web server is offline right now"
	}
	return fmt.Sprintf("🌐 You can also view the leaderboard here: %s", publicURL)
}

// renderLeaderboard renders one field per row, split across as many embeds
// as one Discord message allows. Rows that do not fit are counted in a footer
// on the last embed. Rows must already be sorted.
func renderLeaderboard(leaderboard *models.Leaderboard) []*discordgo.MessageEmbed {
	first := &discordgo.MessageEmbed{
		Title: leaderboardTitle,
		Color: colorInfo,
	}
	if len(leaderboard.Rows) == 0 {
		first.Description = "No games have been recorded yet. Use /addgame to get started."
		return []*discordgo.MessageEmbed{first}
	}

	// Room for the overflow footer is always kept back
	budget := maxMessageChars - utf8.RuneCountInString(first.Title) - utf8.RuneCountInString(overflowFooter(len(leaderboard.Rows)))

	embeds := []*discordgo.MessageEmbed{first}
	current := first
	shown := 0
	for _, row := range leaderboard.Rows {
		field := &discordgo.MessageEmbedField{
			Name:   zeroWidthSpace,
			Value:  leaderboardFieldValue(row, leaderboard.Crowns(row)),
			Inline: false,
		}

		cost := utf8.RuneCountInString(field.Name) + utf8.RuneCountInString(field.Value)
		if cost > budget {
			break
		}

		if len(current.Fields) == maxFieldsPerEmbed {
			if len(embeds) == maxEmbeds {
				break
			}
			current = &discordgo.MessageEmbed{Color: colorInfo}
			embeds = append(embeds, current)
		}

		current.Fields = append(current.Fields, field)
		budget -= cost
		shown++
	}

	if hidden := len(leaderboard.Rows) - shown; hidden > 0 {
		current.Footer = &discordgo.MessageEmbedFooter{
			Text: overflowFooter(hidden),
		}
	}

	return embeds
}

// overflowFooter points at the web page for rows left out of the message
func overflowFooter(hidden int) string {
	return fmt.Sprintf("…and %s more; see the web leaderboard", display.Int(hidden))
}

// leaderboardFieldValue renders a row's stats with crowns on column leaders
func leaderboardFieldValue(row *models.LeaderboardRow, crowns models.Crowns) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", mention(row.ID))
	writeModeStats(&b, models.ModeThreePlayer, row.P3Points, row.P3PPG, row.P3GamesPlayed, crowns.P3Points, crowns.P3PPG)
	writeModeStats(&b, models.ModeFourPlayer, row.P4Points, row.P4PPG, row.P4GamesPlayed, crowns.P4Points, crowns.P4PPG)
	fmt.Fprintf(&b, "**Total Games Played: %s**", display.Int(row.TotalGamesPlayed))
	return b.String()
}

func writeModeStats(b *strings.Builder, mode models.Mode, points int, ppg models.PPG, games int, pointsCrown, ppgCrown bool) {
	fmt.Fprintf(b, "**%d Player Stats**\n", mode.PlayerCount())
	fmt.Fprintf(b, "Points: %s\n", display.Crowned(display.Int(points), pointsCrown))
	fmt.Fprintf(b, "PPG: %s\n", display.Crowned(display.PPG(ppg), ppgCrown))
	fmt.Fprintf(b, "Games Played: %s\n", display.Int(games))
}

// renderPlayerStats renders a single player's stats
func renderPlayerStats(row *models.LeaderboardRow) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s's Stats", row.Nickname),
		Description: mention(row.ID),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			modeField(models.ModeThreePlayer, row.P3Points, row.P3PPG, row.P3GamesPlayed),
			modeField(models.ModeFourPlayer, row.P4Points, row.P4PPG, row.P4GamesPlayed),
			{
				Name:  "Total Games Played",
				Value: display.Int(row.TotalGamesPlayed),
			},
		},
	}
	if row.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: row.AvatarURL}
	}
	return embed
}

func modeField(mode models.Mode, points int, ppg models.PPG, games int) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name: fmt.Sprintf("%d Player Stats", mode.PlayerCount()),
		Value: fmt.Sprintf("Points: %s\nPPG: %s\nGames Played: %s",
			display.Int(points), display.PPG(ppg), display.Int(games)),
		Inline: true,
	}
}
