package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bilgisen/newspulse/internal/cache"
	"github.com/bilgisen/newspulse/internal/models"
)

type countingGenerator struct {
	calls int
	resp  *Response
	err   error
}

func (c *countingGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	c.calls++
	return c.resp, c.err
}

func TestCachedGeneratorServesRepeatFromCache(t *testing.T) {
	next := &countingGenerator{resp: &Response{
		Text:      "[]",
		Citations: []models.Citation{{Web: &models.WebCitation{URI: "https://a.example", Title: "a"}}},
	}}
	gen := NewCachedGenerator(next, cache.NewMemoryStore(), time.Minute, "model-a")
	ctx := context.Background()

	first, err := gen.Generate(ctx, CategoryFeedRequest(models.CategoryWorld))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.Generate(ctx, CategoryFeedRequest(models.CategoryWorld))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", next.calls)
	}
	if second.Text != first.Text || second.Citations[0].Web.URI != "https://a.example" {
		t.Errorf("cached response differs: %+v", second)
	}

	if _, err := gen.Generate(ctx, CategoryFeedRequest(models.CategorySports)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.calls != 2 {
		t.Errorf("different request should miss the cache, calls=%d", next.calls)
	}
}

func TestCachedGeneratorDoesNotCacheErrors(t *testing.T) {
	next := &countingGenerator{err: errors.New("boom")}
	gen := NewCachedGenerator(next, cache.NewMemoryStore(), time.Minute, "m")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := gen.Generate(ctx, MarketSnapshotRequest()); err == nil {
			t.Fatal("expected error")
		}
	}
	if next.calls != 2 {
		t.Errorf("errors must not be cached, calls=%d", next.calls)
	}
}

func TestCachedGeneratorKeyIncludesScope(t *testing.T) {
	a := NewCachedGenerator(nil, nil, 0, "model-a")
	b := NewCachedGenerator(nil, nil, 0, "model-b")
	req := WeatherSnapshotRequest("Paris")

	if a.key(req) == b.key(req) {
		t.Error("keys of different scopes should differ")
	}
	if a.key(req) != a.key(WeatherSnapshotRequest("Paris")) {
		t.Error("keys should be stable")
	}
}
