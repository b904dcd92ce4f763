package models

// FeedResult is the outcome of loading a category feed. Sources holds the
// renderable citations independently of the articles they may belong to.
type FeedResult struct {
	Category Category      `json:"category"`
	Articles []NewsArticle `json:"articles"`
	Sources  []Citation    `json:"sources"`
	Status   LoadState     `json:"status"`
	Error    string        `json:"error,omitempty"`
}

type MarketResult struct {
	Markets []MarketData `json:"markets"`
	Status  LoadState    `json:"status"`
	Error   string       `json:"error,omitempty"`
}

type WeatherResult struct {
	Weather WeatherData `json:"weather"`
	Status  LoadState   `json:"status"`
	Error   string      `json:"error,omitempty"`
}

// Dashboard combines the two independently loaded global panels.
type Dashboard struct {
	Markets MarketResult  `json:"markets"`
	Weather WeatherResult `json:"weather"`
}

type SearchResult struct {
	Query   string     `json:"query"`
	Text    string     `json:"text"`
	Sources []Citation `json:"sources"`
	Status  LoadState  `json:"status"`
	Error   string     `json:"error,omitempty"`
}
