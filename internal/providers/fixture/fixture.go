package fixture

import (
	"context"

	"liiga-goalie-service/internal/domain"
)

// Provider returns a static set of goaltender records useful for local
// testing and bootstrapping without hitting the live feed.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGoalies returns a deterministic set of example goalie records,
// deliberately mixing the value encodings the live feed has produced.
func (p *Provider) FetchGoalies(ctx context.Context) ([]domain.Record, error) {
	_ = ctx

	return []domain.Record{
		{
			"goalkeeper":          true,
			"firstName":           "Matti",
			"lastName":            "Virta",
			"teamName":            "Kärpät",
			"savePercentage":      "92,3%",
			"goalsAgainstAvg":     "1,98",
			"shutOut":             4.0,
			"games":               30.0,
			"gkWins":              18.0,
			"gkLosses":            7.0,
			"gkTies":              3.0,
			"blockedOrSavedShots": 812.0,
			"role":                "GK",
			"jersey":              35.0,
			"playerId":            "fixture-1",
			"pictureUrl":          "https://liiga.fi/fixture-1.png",
		},
		{
			"goalkeeper":          true,
			"firstName":           "Jani",
			"lastName":            "Koski",
			"teamName":            "Tappara",
			"savePercentage":      91.0,
			"goalsAgainstAvg":     2.31,
			"shutOut":             2.0,
			"games":               28.0,
			"gkWins":              15.0,
			"gkLosses":            9.0,
			"gkTies":              2.0,
			"blockedOrSavedShots": 744.0,
			"role":                "GK",
			"jersey":              "1",
			"playerId":            "fixture-2",
			"pictureUrl":          "https://liiga.fi/fixture-2.png",
		},
		{
			"goalkeeper":      true,
			"firstName":       "Ville",
			"lastName":        "Niemi",
			"teamShortName":   "HIFK",
			"savePercentage":  "89,7",
			"goalsAgainstAvg": 2.75,
			"games":           12.0,
			"gkWins":          5.0,
			"gkLosses":        6.0,
			"playerId":        "fixture-3",
		},
	}, nil
}
