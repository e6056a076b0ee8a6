package models

// Event is a scheduled association activity. Events are transient: loaded
// once at startup (from the events file or the built-in defaults) and
// read-only for the process lifetime. Dates are ISO date strings, which
// sort chronologically under plain string comparison.
type Event struct {
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// NewsPost is one entry of the fixed in-memory news list.
type NewsPost struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// RankingEntry is one row of the fixed in-memory national ranking table.
type RankingEntry struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Points int    `json:"points"`
}
