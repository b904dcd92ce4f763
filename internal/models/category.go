package models

import (
	"fmt"
	"strings"
)

// Category is the closed set of feed filters.
type Category string

const (
	CategoryForYou        Category = "For You"
	CategoryWorld         Category = "World"
	CategoryPolitics      Category = "Politics"
	CategoryTechnology    Category = "Technology"
	CategorySports        Category = "Sports"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryMoney         Category = "Money"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryForYou,
	CategoryWorld,
	CategoryPolitics,
	CategoryTechnology,
	CategorySports,
	CategoryEntertainment,
	CategoryHealth,
	CategoryMoney,
}

// Slug returns the URL form of the category, e.g. "for-you".
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts a display name or slug, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
