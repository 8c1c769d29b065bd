package feed

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/validation"
)

// FallbackMarket is one entry of the demo list published when the feed is down
type FallbackMarket struct {
	Title        string          `json:"title"`
	Category     string          `json:"category,omitempty"`
	CloseInHours int             `json:"close_in_hours"`
	Volume       int64           `json:"volume,omitempty"`
	YesPrice     decimal.Decimal `json:"yes_price"`
}

type fallbackFile struct {
	Markets []FallbackMarket `json:"markets"`
}

// DefaultFallback is the built-in demo list
var DefaultFallback = []FallbackMarket{
	{"Will Bitcoin close the month above $100,000?", "Crypto", 30 * 24, 15420, decimal.RequireFromString("0.65")},
	{"Will US GDP growth exceed 3% next quarter?", "Economics", 45 * 24, 8930, decimal.RequireFromString("0.42")},
	{"Will any team score 50+ points in the next NFL game?", "Sports", 3 * 24, 5670, decimal.RequireFromString("0.28")},
	{"Will Apple announce a new product line this year?", "Technology", 60 * 24, 12100, decimal.RequireFromString("0.73")},
	{"Will temperature exceed 100°F in NYC this week?", "Weather", 7 * 24, 3450, decimal.RequireFromString("0.15")},
}

// LoadFallbackFile reads an operator-supplied demo list. The file is checked
// against the embedded schema before it is decoded.
func LoadFallbackFile(path string, v validation.SchemaValidator) ([]FallbackMarket, error) {
	data, err := v.ValidateFile(path, validation.SchemaFallbackMarkets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFallbackFile, err)
	}
	var f fallbackFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFallbackFile, err)
	}
	return f.Markets, nil
}

// FallbackID derives the id of a demo market from its week and title, so
// each week publishes fresh markets and a republish within a week is a no-op.
func FallbackID(weekStart time.Time, title string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return fmt.Sprintf("%s%s-%06d", FallbackIDPrefix, weekStart.UTC().Format(FallbackIDDateLayout), h.Sum32()%FallbackIDMod)
}

// FallbackMarkets returns the built-in demo list for the week containing now.
func FallbackMarkets(now time.Time) []domain.CandidateMarket {
	return BuildFallback(DefaultFallback, domain.WeekStart(now))
}

// BuildFallback turns demo entries into candidates for the week starting at
// weekStart. Close times count from weekStart, not from the time of the
// refresh, so republishing leaves them untouched.
func BuildFallback(entries []FallbackMarket, weekStart time.Time) []domain.CandidateMarket {
	weekStart = weekStart.UTC()
	one := decimal.NewFromInt(1)
	markets := make([]domain.CandidateMarket, 0, len(entries))
	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = DefaultCategory
		}
		markets = append(markets, domain.CandidateMarket{
			ID:        FallbackID(weekStart, e.Title),
			Title:     e.Title,
			Category:  category,
			CloseTime: weekStart.Add(time.Duration(e.CloseInHours) * time.Hour),
			YesPrice:  e.YesPrice,
			NoPrice:   one.Sub(e.YesPrice),
			Volume:    decimal.NewFromInt(e.Volume),
			Source:    domain.MarketSourceFallback,
		})
	}
	return markets
}
