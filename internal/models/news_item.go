package models

// NewsArticle is a single feed entry as shown by the presentation layer.
type NewsArticle struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Category Category `json:"category"`
	Source   string   `json:"source"`
	Time     string   `json:"time"`
	ImageURL string   `json:"imageUrl"`
	URL      string   `json:"url"`
}
