package ai

import (
	"errors"
	"testing"

	"github.com/bilgisen/newspulse/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestArticlesRoundTrip(t *testing.T) {
	n := NewNormalizer()
	resp := &Response{Text: `[{"title":"A","summary":"B","source":"C","time":"1h ago"}]`}

	articles, err := n.Articles(models.CategoryWorld, resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.NewsArticle{{
		ID:       "news-World-0",
		Title:    "A",
		Summary:  "B",
		Category: models.CategoryWorld,
		Source:   "C",
		Time:     "1h ago",
		ImageURL: "https://picsum.photos/seed/A/800/600",
		URL:      "#",
	}}
	if diff := cmp.Diff(want, articles); diff != "" {
		t.Errorf("articles mismatch (-want +got):\n%s", diff)
	}
}

func TestArticlesSyntheticIDUsesCategoryAndIndex(t *testing.T) {
	n := NewNormalizer()
	resp := &Response{Text: `[{"title":"x"},{"title":"y"}]`}

	articles, _ := n.Articles(models.CategoryForYou, resp)

	if articles[0].ID != "news-For You-0" || articles[1].ID != "news-For You-1" {
		t.Errorf("unexpected ids %q, %q", articles[0].ID, articles[1].ID)
	}
}

func TestArticlesMalformedPayload(t *testing.T) {
	n := NewNormalizer()

	for _, text := range []string{"not json", `{"title":"object"}`, `[{"title":1}]`} {
		articles, err := n.Articles(models.CategoryMoney, &Response{Text: text})
		if !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("%q: expected ErrMalformedPayload, got %v", text, err)
		}
		if articles == nil || len(articles) != 0 {
			t.Errorf("%q: expected empty non-nil slice, got %#v", text, articles)
		}
	}
}

func TestArticlesEmptyTextIsEmptyFeed(t *testing.T) {
	articles, err := NewNormalizer().Articles(models.CategoryMoney, &Response{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("expected no articles, got %d", len(articles))
	}
}

func TestArticlesPositionalCitations(t *testing.T) {
	n := NewNormalizer()
	resp := &Response{
		Text: "```json\n[{\"title\":\"a\"},{\"title\":\"b\"},{\"title\":\"c\"}]\n```",
		Citations: []models.Citation{
			{Web: &models.WebCitation{URI: "https://one.example"}},
			{},
		},
	}

	articles, err := n.Articles(models.CategorySports, resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{articles[0].URL, articles[1].URL, articles[2].URL}
	want := []string{"https://one.example", "#", "#"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("urls mismatch (-want +got):\n%s", diff)
	}
}

func TestImageURLIsDeterministic(t *testing.T) {
	n := NewNormalizer()

	first := n.ImageURL("Rates & Bonds: what's next?")
	second := n.ImageURL("Rates & Bonds: what's next?")

	if first != second {
		t.Errorf("image url not deterministic: %q vs %q", first, second)
	}
	want := "https://picsum.photos/seed/Rates%20%26%20Bonds%3A%20what's%20next%3F/800/600"
	if first != want {
		t.Errorf("got %q, want %q", first, want)
	}
}

func TestMarkets(t *testing.T) {
	n := NewNormalizer()
	resp := &Response{Text: `[{"symbol":"S&P 500","price":"5,100.20","change":"-0.4%","isPositive":false}]`}

	markets, err := n.Markets(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.MarketData{{Symbol: "S&P 500", Price: "5,100.20", Change: "-0.4%", IsPositive: false}}
	if diff := cmp.Diff(want, markets); diff != "" {
		t.Errorf("markets mismatch (-want +got):\n%s", diff)
	}

	markets, err = n.Markets(&Response{Text: "not json"})
	if err == nil || len(markets) != 0 {
		t.Errorf("expected empty markets with error, got %v, %v", markets, err)
	}
}

func TestWeatherParisScenario(t *testing.T) {
	n := NewNormalizer()
	resp := &Response{Text: `{"temp":15,"condition":"Cloudy","location":"Paris","high":18,"low":10}`}

	weather, err := n.Weather("Paris", resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.WeatherData{Temp: 15, Condition: "Cloudy", Location: "Paris", High: 18, Low: 10}
	if diff := cmp.Diff(want, weather); diff != "" {
		t.Errorf("weather mismatch (-want +got):\n%s", diff)
	}
}

func TestWeatherMalformedYieldsSentinel(t *testing.T) {
	n := NewNormalizer()

	for _, resp := range []*Response{{Text: "not json"}, {Text: ""}, {Text: "null"}, {Text: "{}"}, nil} {
		weather, err := n.Weather("Oslo", resp)
		if !errors.Is(err, ErrMalformedPayload) {
			t.Errorf("expected ErrMalformedPayload, got %v", err)
		}
		if diff := cmp.Diff(models.WeatherSentinel("Oslo"), weather); diff != "" {
			t.Errorf("sentinel mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSearchDropsNonWebCitations(t *testing.T) {
	result := NewNormalizer().Search("q", &Response{
		Text:      "answer",
		Citations: []models.Citation{{}, {Web: &models.WebCitation{URI: "u", Title: "t"}}},
	})

	if result.Text != "answer" || result.Query != "q" {
		t.Errorf("unexpected result %+v", result)
	}
	if len(result.Sources) != 1 {
		t.Errorf("expected 1 source, got %d", len(result.Sources))
	}
}

func TestCleanJSONPayload(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain array unchanged", input: `[{"a":1}]`, want: `[{"a":1}]`},
		{name: "strips json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "strips plain fence", input: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "drops surrounding prose", input: "Here you go: [1] enjoy", want: `[1]`},
		{name: "object containing array", input: `{"a":[1]}`, want: `{"a":[1]}`},
		{name: "no json", input: "  not json ", want: "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONPayload(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
