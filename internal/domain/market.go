package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Market sources
const (
	MarketSourceKalshi   = "kalshi"
	MarketSourceFallback = "fallback"
	MarketSourceManual   = "manual"
)

// Market is a yes/no question published in a weekly cohort.
// Resolution is nil while the market is unresolved.
type Market struct {
	ID         string          `json:"market_id"`
	Title      string          `json:"title"`
	Category   string          `json:"category"`
	CloseTime  time.Time       `json:"close_time"`
	WeekStart  time.Time       `json:"week_start"`
	Resolution *bool           `json:"resolution,omitempty"`
	ResolvedAt *time.Time      `json:"resolved_at,omitempty"`
	YesPrice   decimal.Decimal `json:"yes_price"`
	NoPrice    decimal.Decimal `json:"no_price"`
	Volume     decimal.Decimal `json:"volume"`
	Source     string          `json:"source"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsResolved reports whether an outcome has been recorded.
func (m Market) IsResolved() bool {
	return m.Resolution != nil
}

// IsOpen reports whether predictions are still accepted at now.
func (m Market) IsOpen(now time.Time) bool {
	return !m.IsResolved() && m.CloseTime.After(now)
}

// ChoiceProbability returns the snapshot price of the chosen side.
func (m Market) ChoiceProbability(choice bool) decimal.Decimal {
	if choice {
		return m.YesPrice
	}
	return m.NoPrice
}

// CandidateMarket is a market as delivered by a feed, before it joins a cohort.
type CandidateMarket struct {
	ID        string          `json:"market_id" validate:"required,max=128"`
	Title     string          `json:"title" validate:"required,max=500"`
	Category  string          `json:"category" validate:"max=100"`
	CloseTime time.Time       `json:"close_time" validate:"required"`
	YesPrice  decimal.Decimal `json:"yes_price"`
	NoPrice   decimal.Decimal `json:"no_price"`
	Volume    decimal.Decimal `json:"volume"`
	Source    string          `json:"source"`
}

var (
	priceFloor = decimal.Zero
	priceCeil  = decimal.NewFromInt(1)
)

// Validate checks the candidate's required fields and price ranges.
func (c CandidateMarket) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("%w: market id is empty", ErrDataInvalid)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: market %s has no title", ErrDataInvalid, c.ID)
	}
	if c.CloseTime.IsZero() {
		return fmt.Errorf("%w: market %s has no close time", ErrDataInvalid, c.ID)
	}
	for _, p := range []decimal.Decimal{c.YesPrice, c.NoPrice} {
		if p.LessThan(priceFloor) || p.GreaterThan(priceCeil) {
			return fmt.Errorf("%w: market %s price %s outside [0,1]", ErrDataInvalid, c.ID, p)
		}
	}
	if c.Volume.IsNegative() {
		return fmt.Errorf("%w: market %s has negative volume", ErrDataInvalid, c.ID)
	}
	return nil
}

// ToMarket assigns the candidate to a cohort week.
func (c CandidateMarket) ToMarket(weekStart time.Time) Market {
	source := c.Source
	if source == "" {
		source = MarketSourceManual
	}
	return Market{
		ID:        strings.TrimSpace(c.ID),
		Title:     strings.TrimSpace(c.Title),
		Category:  c.Category,
		CloseTime: c.CloseTime.UTC(),
		WeekStart: weekStart,
		YesPrice:  c.YesPrice,
		NoPrice:   c.NoPrice,
		Volume:    c.Volume,
		Source:    source,
	}
}
