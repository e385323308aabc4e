package discord

import (
	"context"
	"log"

	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/bwmarrin/discordgo"
)

// LeaderboardCommand handles the /leaderboard command
type LeaderboardCommand struct {
	BaseCommand
	scoringService   scoring.Service
	messagingService messaging.Service
	publicURL        string
}

var sortChoiceNames = map[scoring.SortKey]string{
	scoring.SortByTotalGames:  "Total games played",
	scoring.SortByTotalPoints: "Total points",
	scoring.SortByP3Points:    "3-player points",
	scoring.SortByP4Points:    "4-player points",
	scoring.SortByP3PPG:       "3-player points per game",
	scoring.SortByP4PPG:       "4-player points per game",
}

// NewLeaderboardCommand creates a new leaderboard command handler
func NewLeaderboardCommand(scoringService scoring.Service, messagingService messaging.Service, publicURL string) *LeaderboardCommand {
	var sortChoices []*discordgo.ApplicationCommandOptionChoice
	for _, key := range scoring.SortKeys {
		sortChoices = append(sortChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  sortChoiceNames[key],
			Value: string(key),
		})
	}

	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Display the current leaderboard.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sort",
					Description: "Column to sort by (defaults to total games played)",
					Choices:     sortChoices,
				},
			},
		},
		scoringService:   scoringService,
		messagingService: messagingService,
		publicURL:        publicURL,
	}
}

// Handle processes a Discord interaction for the leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data, ok := c.respond(context.Background(), i.ApplicationCommandData())
	if err := Respond(s, i, data); err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return FollowupEphemeralMessage(s, i, webLinkMessage(c.publicURL))
}

// respond builds the leaderboard reply and reports whether it succeeded
func (c *LeaderboardCommand) respond(ctx context.Context, data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponseData, bool) {
	options := newOptionMap(data)

	leaderboard, err := c.scoringService.ComputeLeaderboard(ctx)
	if err != nil {
		log.Printf("Error computing leaderboard: %v", err)
		return errorResponse(friendlyError(ctx, c.messagingService, err)), false
	}

	scoring.SortRows(leaderboard.Rows, scoring.SortKey(options.stringValue("sort")))

	return &discordgo.InteractionResponseData{
		Embeds: renderLeaderboard(leaderboard),
		Flags:  discordgo.MessageFlagsEphemeral,
	}, true
}
