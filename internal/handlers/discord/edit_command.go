package discord

import (
	"context"
	"log"

	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/bwmarrin/discordgo"
)

// EditCommand handles the /edit command
type EditCommand struct {
	BaseCommand
	scoringService   scoring.Service
	messagingService messaging.Service
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(scoringService scoring.Service, messagingService messaging.Service) *EditCommand {
	minGames := float64(0)

	var modeChoices []*discordgo.ApplicationCommandOptionChoice
	for _, mode := range models.Modes {
		modeChoices = append(modeChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  mode.String(),
			Value: int(mode),
		})
	}

	return &EditCommand{
		BaseCommand: BaseCommand{
			Name:        "edit",
			Description: "Edit a player's point total.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "player",
					Description: "Player to edit",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "player_count",
					Description: "Which game type to edit",
					Required:    true,
					Choices:     modeChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "points",
					Description: "New point total",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "game_count",
					Description: "New number of games played",
					Required:    true,
					MinValue:    &minGames,
				},
			},
		},
		scoringService:   scoringService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the edit command
func (c *EditCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return Respond(s, i, c.respond(context.Background(), i.ApplicationCommandData()))
}

func (c *EditCommand) respond(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponseData {
	options := newOptionMap(data)

	mode, _ := options.intValue("player_count")
	points, _ := options.intValue("points")
	games, _ := options.intValue("game_count")

	output, err := c.scoringService.EditPlayerTotals(ctx, &scoring.EditPlayerTotalsInput{
		Player:      resolvePlayer(data, options.userValue("player")),
		Mode:        models.Mode(mode),
		Points:      points,
		GamesPlayed: games,
	})
	if err != nil {
		log.Printf("Error editing player totals: %v", err)
		return errorResponse(friendlyError(ctx, c.messagingService, err))
	}

	edited, err := c.messagingService.GetTotalsEditedMessage(ctx, &messaging.GetTotalsEditedMessageInput{
		PlayerMention: mention(output.Player.ID),
		Mode:          output.Mode,
		Points:        output.Current.Points,
		GamesPlayed:   output.Current.GamesPlayed,
	})
	if err != nil {
		log.Printf("Error getting totals edited message: %v", err)
		return errorResponse(friendlyError(ctx, c.messagingService, err))
	}

	return &discordgo.InteractionResponseData{
		Content: edited.Message,
	}
}
