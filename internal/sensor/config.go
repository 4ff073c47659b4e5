package sensor

import "strings"

// Format holds per-category display parameters: a human-readable name, an
// icon hint for the rendering layer, a unit suffix, and decimal precision.
type Format struct {
	Name      string
	Icon      string
	Suffix    string
	Precision int
}

// formats is the static per-category display table.
var formats = map[string]Format{
	"savepercentage":  {Name: "Save Percentage", Icon: "mdi:shield-check", Suffix: "%", Precision: 1},
	"shutouts":        {Name: "Shutouts", Icon: "mdi:shield-lock"},
	"goalsagainstavg": {Name: "Goals Against Avg", Icon: "mdi:hockey-puck", Precision: 2},
	"wins":            {Name: "Wins", Icon: "mdi:trophy"},
	"losses":          {Name: "Losses", Icon: "mdi:emoticon-sad"},
	"ties":            {Name: "Ties", Icon: "mdi:handshake"},
	"saves":           {Name: "Saves", Icon: "mdi:shield"},
	"xgea":            {Name: "Expected Goals Effect", Icon: "mdi:chart-line", Precision: 2},
	"games":           {Name: "Games", Icon: "mdi:calendar-check"},
}

// FormatFor returns the display format for a category, falling back to a
// generic entry (capitalized category id, integer precision) when the
// category is not in the table.
func FormatFor(category string) Format {
	if f, ok := formats[category]; ok {
		return f
	}
	return Format{Name: capitalize(category), Icon: "mdi:hockey-puck"}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
