package models

// Player identifies someone who took part in a recorded game
type Player struct {
	// ID is the Discord user ID of the player
	ID string

	// Nickname is the display name captured when the player was first seen
	Nickname string

	// AvatarURL is the avatar captured when the player was first seen
	AvatarURL string
}
