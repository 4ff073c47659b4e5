package domain

import "time"

// Entry is one ranked goaltender in a category leaderboard. Entries are
// immutable once constructed.
type Entry struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Value    float64 `json:"value"`
	Games    int     `json:"games"`
	Position string  `json:"position"`
	Number   string  `json:"number"`
	PlayerID string  `json:"playerId"`
	ImageURL string  `json:"imageUrl"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Ties     int     `json:"ties"`
}

// Leaderboard is the ordered top-N for one category. Records without a usable
// value for the category are excluded, never ranked as zero.
type Leaderboard []Entry

// RefreshResult is the complete set of leaderboards produced by one
// successful fetch cycle. It is constructed wholesale and swapped atomically,
// so readers always see either the old or the new snapshot, never a mix.
type RefreshResult struct {
	Boards    map[string]Leaderboard
	UpdatedAt time.Time
}

// NewRefreshResult builds an immutable result from a full set of boards.
func NewRefreshResult(boards map[string]Leaderboard, at time.Time) *RefreshResult {
	return &RefreshResult{Boards: boards, UpdatedAt: at}
}

// Board returns one category's leaderboard if present in this result.
func (r *RefreshResult) Board(category string) (Leaderboard, bool) {
	if r == nil {
		return nil, false
	}
	board, ok := r.Boards[category]
	return board, ok
}
