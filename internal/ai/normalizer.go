package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bilgisen/newspulse/internal/models"
)

// ErrMalformedPayload is reported when a structured payload cannot be decoded.
// The accompanying value is always the fail-soft fallback.
var ErrMalformedPayload = errors.New("malformed payload")

// PlaceholderURL is the article link used when no citation lines up with it.
const PlaceholderURL = "#"

// Normalizer turns raw service payloads into display records.
type Normalizer struct {
	imageBaseURL string
	imageWidth   int
	imageHeight  int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		imageBaseURL: "https://picsum.photos/seed",
		imageWidth:   800,
		imageHeight:  600,
	}
}

type rawArticle struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Time    string `json:"time"`
}

// Articles decodes a category feed. Every record is stamped with category, a
// synthetic id when the payload has none, a seeded image URL, and the URL of
// the citation at the same index.
//
// Citation order is not guaranteed to match article order; the URL is a best
// guess and callers that need reliable attribution should use the citation
// list directly.
func (n *Normalizer) Articles(category models.Category, resp *Response) ([]models.NewsArticle, error) {
	articles := []models.NewsArticle{}
	if resp == nil {
		return articles, fmt.Errorf("%w: empty response", ErrMalformedPayload)
	}

	var raw []rawArticle
	if err := decodePayload(resp.Text, "[]", &raw); err != nil {
		return articles, err
	}

	for i, a := range raw {
		id := a.ID
		if id == "" {
			id = fmt.Sprintf("news-%s-%d", category, i)
		}
		articles = append(articles, models.NewsArticle{
			ID:       id,
			Title:    a.Title,
			Summary:  a.Summary,
			Category: category,
			Source:   a.Source,
			Time:     a.Time,
			ImageURL: n.ImageURL(a.Title),
			URL:      citationURL(resp.Citations, i),
		})
	}
	return articles, nil
}

// Markets decodes a market snapshot.
func (n *Normalizer) Markets(resp *Response) ([]models.MarketData, error) {
	markets := []models.MarketData{}
	if resp == nil {
		return markets, fmt.Errorf("%w: empty response", ErrMalformedPayload)
	}

	var raw []models.MarketData
	if err := decodePayload(resp.Text, "[]", &raw); err != nil {
		return markets, err
	}
	return append(markets, raw...), nil
}

// Weather decodes a weather snapshot. Any failure yields the sentinel record
// for location.
func (n *Normalizer) Weather(location string, resp *Response) (models.WeatherData, error) {
	if resp == nil {
		return models.WeatherSentinel(location), fmt.Errorf("%w: empty response", ErrMalformedPayload)
	}

	var weather models.WeatherData
	if err := decodePayload(resp.Text, "", &weather); err != nil {
		return models.WeatherSentinel(location), err
	}
	if weather.Condition == "" && weather.Location == "" {
		return models.WeatherSentinel(location), fmt.Errorf("%w: empty weather record", ErrMalformedPayload)
	}
	return weather, nil
}

// Search shapes a free-text answer. Citations without a web page are dropped.
func (n *Normalizer) Search(query string, resp *Response) models.SearchResult {
	result := models.SearchResult{
		Query:   query,
		Sources: []models.Citation{},
	}
	if resp == nil {
		return result
	}
	result.Text = strings.TrimSpace(resp.Text)
	result.Sources = models.WebSources(resp.Citations)
	return result
}

// ImageURL derives a deterministic placeholder image from title.
func (n *Normalizer) ImageURL(title string) string {
	return fmt.Sprintf("%s/%s/%d/%d", n.imageBaseURL, encodeURIComponent(title), n.imageWidth, n.imageHeight)
}

func citationURL(citations []models.Citation, i int) string {
	if i < len(citations) && citations[i].Web != nil && citations[i].Web.URI != "" {
		return citations[i].Web.URI
	}
	return PlaceholderURL
}

// decodePayload unmarshals text into v. An empty text is replaced with
// emptyValue; when emptyValue is "" an empty text is an error.
func decodePayload(text, emptyValue string, v interface{}) error {
	cleaned := cleanJSONPayload(text)
	if cleaned == "" {
		if emptyValue == "" {
			return fmt.Errorf("%w: empty text", ErrMalformedPayload)
		}
		cleaned = emptyValue
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// cleanJSONPayload strips markdown fences and any prose around the JSON value.
func cleanJSONPayload(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.IndexAny(text, "[{")
	if start < 0 {
		return text
	}
	closer := "}"
	if text[start] == '[' {
		closer = "]"
	}
	if end := strings.LastIndex(text, closer); end > start {
		text = text[start : end+1]
	}
	return text
}

// encodeURIComponent escapes s the way browsers do for a URI component.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponentChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreservedComponentChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
