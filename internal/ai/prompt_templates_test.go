package ai

import (
	"strings"
	"testing"

	"github.com/bilgisen/newspulse/internal/models"
	"github.com/google/go-cmp/cmp"
)

func TestCategoryFeedRequest(t *testing.T) {
	req := CategoryFeedRequest(models.CategoryTechnology)

	if req.Intent != IntentCategoryFeed {
		t.Errorf("unexpected intent %q", req.Intent)
	}
	if !strings.Contains(req.Instruction, "top 8 latest news stories") {
		t.Errorf("instruction should ask for 8 stories: %q", req.Instruction)
	}
	if !strings.Contains(req.Instruction, "Technology") {
		t.Errorf("instruction should name the category: %q", req.Instruction)
	}
	if req.Schema.Type != TypeArray || req.Schema.Items.Type != TypeObject {
		t.Fatalf("expected array of objects, got %+v", req.Schema)
	}
	if diff := cmp.Diff([]string{"title", "summary", "source", "time"}, req.Schema.Items.Required); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}
	if _, ok := req.Schema.Items.Properties["id"]; !ok {
		t.Error("id should be an optional property")
	}
}

func TestMarketSnapshotRequest(t *testing.T) {
	req := MarketSnapshotRequest()

	want := "Get the latest prices and daily changes for S&P 500, Dow Jones, Nasdaq, Bitcoin, and Crude Oil. Return as JSON array."
	if req.Instruction != want {
		t.Errorf("got %q, want %q", req.Instruction, want)
	}
	if req.Schema.Items.Properties["isPositive"].Type != TypeBoolean {
		t.Error("isPositive should be boolean")
	}
	if req.Schema.Items.Properties["price"].Type != TypeString {
		t.Error("price should stay a pre-formatted string")
	}
	if len(req.Schema.Items.Required) != 4 {
		t.Errorf("expected 4 required fields, got %v", req.Schema.Items.Required)
	}
}

func TestWeatherSnapshotRequest(t *testing.T) {
	req := WeatherSnapshotRequest("Paris")

	if req.Schema.Type != TypeObject {
		t.Fatalf("expected object schema, got %s", req.Schema.Type)
	}
	for _, field := range []string{"temp", "high", "low"} {
		if req.Schema.Properties[field].Type != TypeNumber {
			t.Errorf("%s should be a number", field)
		}
	}
	if !strings.Contains(req.Instruction, "current weather for Paris") {
		t.Errorf("unexpected instruction %q", req.Instruction)
	}
}

func TestLiveSearchRequestHasNoSchema(t *testing.T) {
	req := LiveSearchRequest("central\nbanks\t today")

	if req.Structured() {
		t.Error("search request must be unstructured")
	}
	if !strings.Contains(req.Instruction, "latest news about: central banks today.") {
		t.Errorf("query should be flattened into the instruction: %q", req.Instruction)
	}
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a, and b"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
	}
	for _, tt := range tests {
		if got := joinList(tt.items); got != tt.want {
			t.Errorf("joinList(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}
