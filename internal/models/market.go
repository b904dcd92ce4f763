package models

// MarketData is one ticker entry. Price and Change arrive pre-formatted and are
// never parsed.
type MarketData struct {
	Symbol     string `json:"symbol"`
	Price      string `json:"price"`
	Change     string `json:"change"`
	IsPositive bool   `json:"isPositive"`
}
