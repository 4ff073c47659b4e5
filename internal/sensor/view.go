package sensor

import (
	"fmt"
	"time"

	"liiga-goalie-service/internal/domain"
)

// Sentinel states for views with nothing to show yet.
const (
	StateUnknown = "Unknown"
	StateNoData  = "No data"
)

// Source is the read side of the refresh coordinator. Views never mutate the
// result; they project whatever snapshot the source currently holds.
type Source interface {
	Result() *domain.RefreshResult
	LastSuccess() time.Time
}

// View is a read-only projection of one category's leaderboard into a
// display-ready state and attribute set.
type View struct {
	category string
	format   Format
	source   Source
}

// NewView constructs a view for a category backed by the given source.
func NewView(category string, source Source) *View {
	return &View{
		category: category,
		format:   FormatFor(category),
		source:   source,
	}
}

// Category returns the category identifier this view projects.
func (v *View) Category() string {
	return v.category
}

// State returns the primary display value: the name of the rank-1 goaltender,
// "No data" for an empty leaderboard, or "Unknown" when no result exists or
// the category is absent from it.
func (v *View) State() string {
	board, ok := v.source.Result().Board(v.category)
	if !ok {
		return StateUnknown
	}
	if len(board) == 0 {
		return StateNoData
	}
	return board[0].Name
}

// Leader is one formatted leaderboard row in a view's attribute payload.
type Leader struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Value    string `json:"value"`
	Games    int    `json:"games"`
	Position string `json:"position"`
	Number   string `json:"number"`
	ImageURL string `json:"image_url"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Ties     int    `json:"ties"`
	Record   string `json:"record"`
}

// Attributes is the full display payload for one category.
type Attributes struct {
	Leaders        []Leader `json:"leaders"`
	LastUpdated    string   `json:"last_updated,omitempty"`
	Category       string   `json:"category"`
	CategoryName   string   `json:"category_name"`
	Icon           string   `json:"icon"`
	LeaderImageURL string   `json:"leader_image_url"`
}

// Attributes returns the ordered leaderboard with values formatted to the
// category's precision and suffix, plus refresh metadata.
func (v *View) Attributes() Attributes {
	attrs := Attributes{
		Category:     v.category,
		CategoryName: v.format.Name,
		Icon:         v.format.Icon,
		Leaders:      []Leader{},
	}
	if last := v.source.LastSuccess(); !last.IsZero() {
		attrs.LastUpdated = last.Format(time.RFC3339)
	}

	board, ok := v.source.Result().Board(v.category)
	if !ok {
		return attrs
	}

	for _, e := range board {
		attrs.Leaders = append(attrs.Leaders, Leader{
			Rank:     e.Rank,
			Name:     e.Name,
			Team:     e.Team,
			Value:    v.formatValue(e.Value),
			Games:    e.Games,
			Position: e.Position,
			Number:   e.Number,
			ImageURL: e.ImageURL,
			Wins:     e.Wins,
			Losses:   e.Losses,
			Ties:     e.Ties,
			Record:   fmt.Sprintf("%d-%d-%d", e.Wins, e.Losses, e.Ties),
		})
	}
	if len(board) > 0 {
		attrs.LeaderImageURL = board[0].ImageURL
	}
	return attrs
}

func (v *View) formatValue(value float64) string {
	if v.format.Precision == 0 {
		return fmt.Sprintf("%d%s", int(value), v.format.Suffix)
	}
	return fmt.Sprintf("%.*f%s", v.format.Precision, value, v.format.Suffix)
}
