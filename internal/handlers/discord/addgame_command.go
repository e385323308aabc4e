package discord

import (
	"context"
	"log"

	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/KirkDiggler/tabletally/internal/services/scoring"
	"github.com/bwmarrin/discordgo"
)

// rankOptions are the addgame options in finishing order
var rankOptions = []string{"p1", "p2", "p3", "p4"}

// AddGameCommand handles the /addgame command
type AddGameCommand struct {
	BaseCommand
	scoringService   scoring.Service
	messagingService messaging.Service
}

// NewAddGameCommand creates a new addgame command handler
func NewAddGameCommand(scoringService scoring.Service, messagingService messaging.Service) *AddGameCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, len(rankOptions))
	for idx, name := range rankOptions {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        name,
			Description: placeDescriptions[idx],
			Required:    idx < models.ModeThreePlayer.PlayerCount(),
		})
	}

	return &AddGameCommand{
		BaseCommand: BaseCommand{
			Name:        "addgame",
			Description: "Add a game result for 3 or 4 players. List users in order of ranking.",
			Options:     options,
		},
		scoringService:   scoringService,
		messagingService: messagingService,
	}
}

var placeDescriptions = []string{
	"First place",
	"Second place",
	"Third place",
	"Fourth place (4-player games only)",
}

// Handle processes a Discord interaction for the addgame command
func (c *AddGameCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return Respond(s, i, c.respond(context.Background(), i.ApplicationCommandData()))
}

func (c *AddGameCommand) respond(ctx context.Context, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponseData {
	options := newOptionMap(data)

	var players []*models.Player
	for _, name := range rankOptions {
		userID := options.userValue(name)
		if userID == "" {
			continue
		}
		players = append(players, resolvePlayer(data, userID))
	}

	output, err := c.scoringService.RecordResult(ctx, &scoring.RecordResultInput{
		Players: players,
	})
	if err != nil {
		log.Printf("Error recording game: %v", err)
		return errorResponse(friendlyError(ctx, c.messagingService, err))
	}

	recorded, err := c.messagingService.GetGameRecordedMessage(ctx, &messaging.GetGameRecordedMessageInput{
		Result: output,
	})
	if err != nil {
		log.Printf("Error getting game recorded message: %v", err)
		return &discordgo.InteractionResponseData{
			Content: gameRecordedContent(len(output.Placements)),
		}
	}

	return renderGameRecorded(recorded, len(output.Placements))
}
