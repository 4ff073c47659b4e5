package liiga

import "liiga-goalie-service/internal/domain"

// playerListKeys are the nesting conventions the upstream has been seen to
// use for the player list, in lookup priority order.
var playerListKeys = []string{"playerStats", "players"}

// extractGoalies locates the player list in an arbitrary decoded payload and
// filters it to goaltender records. The second return reports whether a
// recognizable player list was found at all; an unrecognized shape yields an
// empty slice, never an error, so a shape drift upstream cannot fail a cycle.
func extractGoalies(payload any) ([]domain.Record, bool) {
	list, ok := resolvePlayerList(payload)
	if !ok {
		return nil, false
	}

	goalies := make([]domain.Record, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rec := domain.Record(fields)
		if rec.Bool("goalkeeper") {
			goalies = append(goalies, rec)
		}
	}
	return goalies, true
}

func resolvePlayerList(payload any) ([]any, bool) {
	switch v := payload.(type) {
	case []any:
		return v, true
	case map[string]any:
		for _, key := range playerListKeys {
			if list, ok := v[key].([]any); ok {
				return list, true
			}
		}
	}
	return nil, false
}
