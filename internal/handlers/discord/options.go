package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/tabletally/internal/models"
	"github.com/KirkDiggler/tabletally/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptionMap(data discordgo.ApplicationCommandInteractionData) optionMap {
	options := make(optionMap, len(data.Options))
	for _, opt := range data.Options {
		options[opt.Name] = opt
	}
	return options
}

// userValue returns the snowflake of a user option, or "" when absent
func (o optionMap) userValue(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionUser {
		return ""
	}
	id, _ := opt.Value.(string)
	return id
}

// intValue returns an integer option and whether it was supplied
func (o optionMap) intValue(name string) (int, bool) {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	return int(opt.IntValue()), true
}

// stringValue returns a string option, or "" when absent
func (o optionMap) stringValue(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

// resolvePlayer builds a player from the resolved user and member data.
// The nickname prefers the guild nick, then the global name, then the username.
// The avatar is left empty when the user has none so the default is applied.
func resolvePlayer(data discordgo.ApplicationCommandInteractionData, userID string) *models.Player {
	player := &models.Player{ID: userID}
	if data.Resolved == nil {
		return player
	}

	if user, ok := data.Resolved.Users[userID]; ok && user != nil {
		player.Nickname = user.Username
		if user.GlobalName != "" {
			player.Nickname = user.GlobalName
		}
		if user.Avatar != "" {
			player.AvatarURL = user.AvatarURL("")
		}
	}

	if member, ok := data.Resolved.Members[userID]; ok && member != nil && member.Nick != "" {
		player.Nickname = member.Nick
	}

	return player
}

// mention formats a user mention
func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// friendlyError turns a service error into text for the user
func friendlyError(ctx context.Context, messagingService messaging.Service, err error) string {
	output, msgErr := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err: err,
	})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		return "Something went wrong! Try again later."
	}
	return output.Message
}
