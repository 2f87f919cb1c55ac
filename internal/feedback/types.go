package feedback

import "time"

// Entry is one "Was this page helpful?" response from a reader.
type Entry struct {
	ID        string    `json:"id"`
	Page      string    `json:"page"`
	Helpful   bool      `json:"helpful"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary aggregates responses for a page.
type Summary struct {
	Page       string `json:"page"`
	Helpful    int    `json:"helpful"`
	NotHelpful int    `json:"notHelpful"`
	Total      int    `json:"total"`
}
