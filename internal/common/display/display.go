// Package display formats leaderboard numbers for people to read.
package display

import (
	"github.com/KirkDiggler/tabletally/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Crown marks a column leader
const Crown = "👑"

// NoData is shown in place of a points-per-game value with no games
const NoData = "-"

var printer = message.NewPrinter(language.English)

// Int formats an integer with thousands separators
func Int(v int) string {
	return printer.Sprint(number.Decimal(v))
}

// PPG formats a points-per-game value to at most two decimals
func PPG(p models.PPG) string {
	if !p.Valid {
		return NoData
	}
	return printer.Sprint(number.Decimal(p.Rounded(), number.MaxFractionDigits(2)))
}

// Crowned appends the crown to a formatted value when it leads its column
func Crowned(value string, crowned bool) string {
	if !crowned {
		return value
	}
	return value + " " + Crown
}
