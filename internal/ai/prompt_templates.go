package ai

import (
	"fmt"
	"strings"

	"github.com/bilgisen/newspulse/internal/models"
)

// FeedArticleCount is how many stories a category feed asks for.
const FeedArticleCount = 8

// MarketSymbols is the fixed ticker set of the market snapshot.
var MarketSymbols = []string{"S&P 500", "Dow Jones", "Nasdaq", "Bitcoin", "Crude Oil"}

// PromptTemplates contains the instructions for each request intent
var PromptTemplates = struct {
	CategoryFeed    string
	MarketSnapshot  string
	WeatherSnapshot string
	LiveSearch      string
}{
	CategoryFeed: `Find the top %d latest news stories for the category: %s.
Provide a title, summary, source, and relative time (e.g., '2h ago').
Respond with a JSON array.`,

	MarketSnapshot: `Get the latest prices and daily changes for %s. Return as JSON array.`,

	WeatherSnapshot: `Get the current weather for %s including temp, condition, high, and low. Return as JSON object.`,

	LiveSearch: `Search for the latest news about: %s. Summarize the top findings into individual news items with titles and sources.`,
}

// CategoryFeedRequest asks for the latest stories of one category.
func CategoryFeedRequest(category models.Category) Request {
	return Request{
		Intent:      IntentCategoryFeed,
		Instruction: fmt.Sprintf(PromptTemplates.CategoryFeed, FeedArticleCount, escapeForPrompt(string(category))),
		Schema: arrayOf(objectOf(map[string]*Schema{
			"id":      {Type: TypeString},
			"title":   {Type: TypeString},
			"summary": {Type: TypeString},
			"source":  {Type: TypeString},
			"time":    {Type: TypeString},
		}, "title", "summary", "source", "time")),
	}
}

// MarketSnapshotRequest asks for prices of MarketSymbols.
func MarketSnapshotRequest() Request {
	return Request{
		Intent:      IntentMarketSnapshot,
		Instruction: fmt.Sprintf(PromptTemplates.MarketSnapshot, joinList(MarketSymbols)),
		Schema: arrayOf(objectOf(map[string]*Schema{
			"symbol":     {Type: TypeString},
			"price":      {Type: TypeString},
			"change":     {Type: TypeString},
			"isPositive": {Type: TypeBoolean},
		}, "symbol", "price", "change", "isPositive")),
	}
}

// WeatherSnapshotRequest asks for current conditions at location.
func WeatherSnapshotRequest(location string) Request {
	return Request{
		Intent:      IntentWeatherSnapshot,
		Instruction: fmt.Sprintf(PromptTemplates.WeatherSnapshot, escapeForPrompt(location)),
		Schema: objectOf(map[string]*Schema{
			"temp":      {Type: TypeNumber},
			"condition": {Type: TypeString},
			"location":  {Type: TypeString},
			"high":      {Type: TypeNumber},
			"low":       {Type: TypeNumber},
		}, "temp", "condition", "location", "high", "low"),
	}
}

// LiveSearchRequest asks for a free-text summary of query. It carries no schema.
func LiveSearchRequest(query string) Request {
	return Request{
		Intent:      IntentLiveSearch,
		Instruction: fmt.Sprintf(PromptTemplates.LiveSearch, escapeForPrompt(query)),
	}
}

func arrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func objectOf(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}

// joinList renders "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// escapeForPrompt flattens user text onto a single line
func escapeForPrompt(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.Join(strings.Fields(s), " ")
}
