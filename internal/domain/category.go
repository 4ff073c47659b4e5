package domain

// Direction controls how a category sorts. Most goalie stats rank higher
// values first; goals-against average ranks lower values first.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// CategorySpec maps an internal category identifier to the upstream field it
// reads and the direction it sorts. Category behavior is data, not code:
// adding a category means adding a table entry.
type CategorySpec struct {
	Field     string
	Direction Direction
}

// Categories is the default category table for the Liiga goalie feed.
var Categories = map[string]CategorySpec{
	"savepercentage":  {Field: "savePercentage"},
	"shutouts":        {Field: "shutOut"},
	"goalsagainstavg": {Field: "goalsAgainstAvg", Direction: Ascending},
	"wins":            {Field: "gkWins"},
	"losses":          {Field: "gkLosses"},
	"ties":            {Field: "gkTies"},
	"saves":           {Field: "blockedOrSavedShots"},
	"xgea":            {Field: "xgea"},
	"games":           {Field: "games"},
}

// LookupCategory returns the upstream field mapping for a category identifier.
func LookupCategory(category string) (CategorySpec, bool) {
	spec, ok := Categories[category]
	return spec, ok
}
