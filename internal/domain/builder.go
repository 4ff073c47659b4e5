package domain

import (
	"sort"
	"strings"
)

const unknownTeam = "Unknown"

// BuildLeaderboards ranks the given goaltender records for every configured
// category. Unknown category identifiers are skipped, records lacking a
// usable value for a category are excluded from that category only, and ties
// keep their original relative order (stable sort, no secondary key).
func BuildLeaderboards(goalies []Record, categories []string, topN int) map[string]Leaderboard {
	result := make(map[string]Leaderboard, len(categories))
	for _, category := range categories {
		spec, ok := LookupCategory(category)
		if !ok {
			continue
		}
		result[category] = buildBoard(goalies, spec, topN)
	}
	return result
}

type ranked struct {
	record Record
	value  float64
}

func buildBoard(goalies []Record, spec CategorySpec, topN int) Leaderboard {
	valid := make([]ranked, 0, len(goalies))
	for _, g := range goalies {
		if v, ok := Normalize(g, spec.Field); ok {
			valid = append(valid, ranked{record: g, value: v})
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if spec.Direction == Ascending {
			return valid[i].value < valid[j].value
		}
		return valid[i].value > valid[j].value
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(valid) {
		topN = len(valid)
	}

	board := make(Leaderboard, 0, topN)
	for i, r := range valid[:topN] {
		board = append(board, newEntry(i+1, r.record, r.value))
	}
	return board
}

func newEntry(rank int, rec Record, value float64) Entry {
	return Entry{
		Rank:     rank,
		Name:     displayName(rec),
		Team:     teamLabel(rec),
		Value:    value,
		Games:    int(NormalizeOr(rec, "games")),
		Position: rec.StringOr("role", ""),
		Number:   rec.StringOr("jersey", ""),
		PlayerID: rec.StringOr("playerId", ""),
		ImageURL: rec.StringOr("pictureUrl", ""),
		Wins:     int(NormalizeOr(rec, "gkWins")),
		Losses:   int(NormalizeOr(rec, "gkLosses")),
		Ties:     int(NormalizeOr(rec, "gkTies")),
	}
}

func displayName(rec Record) string {
	first := rec.StringOr("firstName", "")
	last := rec.StringOr("lastName", "")
	return strings.TrimSpace(first + " " + last)
}

func teamLabel(rec Record) string {
	if team := rec.StringOr("teamName", ""); team != "" {
		return team
	}
	if team := rec.StringOr("teamShortName", ""); team != "" {
		return team
	}
	return unknownTeam
}
