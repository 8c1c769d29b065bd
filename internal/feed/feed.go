// Package feed supplies candidate markets and settled outcomes from an
// external prediction-market source.
package feed

import (
	"context"
	"errors"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Typed feed failures. Callers decide on fallback based on the kind.
var (
	// ErrUnavailable covers transport failures, auth failures, 5xx and a missing configuration
	ErrUnavailable = errors.New(ErrMsgUnavailable)
	// ErrMalformed means the feed answered but nothing usable could be decoded
	ErrMalformed = errors.New(ErrMsgMalformed)
)

// Feed is a source of candidate markets
type Feed interface {
	// FetchMarkets returns up to limit open markets
	FetchMarkets(ctx context.Context, limit int) ([]domain.CandidateMarket, error)
	// FetchOutcome returns the settled outcome of a market, or nil while unsettled
	FetchOutcome(ctx context.Context, marketID string) (*bool, error)
}

// Disabled is the feed used when no credentials are configured
type Disabled struct{}

func (Disabled) FetchMarkets(context.Context, int) ([]domain.CandidateMarket, error) {
	return nil, ErrUnavailable
}

func (Disabled) FetchOutcome(context.Context, string) (*bool, error) {
	return nil, ErrUnavailable
}
