package discord

import (
	"context"
	"log"

	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/bwmarrin/discordgo"
)

// StatsCommand handles the /stats command
type StatsCommand struct {
	BaseCommand
	scoringService   scoring.Service
	messagingService messaging.Service
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(scoringService scoring.Service, messagingService messaging.Service) *StatsCommand {
	return &StatsCommand{
		BaseCommand: BaseCommand{
			Name:        "stats",
			Description: "Show one player's stats.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Player to look up",
					Required:    true,
				},
			},
		},
		scoringService:   scoringService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the stats command
func (c *StatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return Respond(s, i, c.respond(context.Background(), i.ApplicationCommandData()))
}

func (c *StatsCommand) respond(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponseData {
	options := newOptionMap(data)

	output, err := c.scoringService.GetPlayerStats(ctx, &scoring.GetPlayerStatsInput{
		PlayerID: options.userValue("player"),
	})
	if err != nil {
		log.Printf("Error getting player stats: %v", err)
		return errorResponse(friendlyError(ctx, c.messagingService, err))
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{renderPlayerStats(output.Row)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}
