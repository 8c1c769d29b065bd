package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// KalshiConfig holds the client settings
type KalshiConfig struct {
	BaseURL    string
	APIKeyID   string
	PrivateKey string
	Timeout    time.Duration
	RateLimit  float64
	RateBurst  int
}

// KalshiClient implements Feed against the Kalshi trade API
type KalshiClient struct {
	baseURL    string
	signer     *Signer
	httpClient *http.Client
	limiter    *rate.Limiter
	newBackoff func() backoff.BackOff
	now        func() time.Time
}

// KalshiOption configures the client
type KalshiOption func(*KalshiClient)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) KalshiOption {
	return func(c *KalshiClient) {
		c.httpClient = client
	}
}

// WithBackoff replaces the retry policy
func WithBackoff(newBackoff func() backoff.BackOff) KalshiOption {
	return func(c *KalshiClient) {
		c.newBackoff = newBackoff
	}
}

// WithClock sets the time source used for request timestamps
func WithClock(now func() time.Time) KalshiOption {
	return func(c *KalshiClient) {
		c.now = now
	}
}

// NewKalshiClient parses the key and builds a client
func NewKalshiClient(cfg KalshiConfig, opts ...KalshiOption) (*KalshiClient, error) {
	if cfg.APIKeyID == "" || cfg.PrivateKey == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, ErrMsgNotConfigured)
	}
	key, err := ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultKalshiBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultHTTPTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = DefaultRateBurst
	}

	c := &KalshiClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		signer:     NewSigner(cfg.APIKeyID, key),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		newBackoff: defaultBackoff,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func defaultBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = DefaultRetryInitial
	b.MaxInterval = DefaultRetryMaxDelay
	b.MaxElapsedTime = DefaultRetryMaxWindow
	return b
}

type kalshiMarket struct {
	Ticker    string          `json:"ticker"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Status    string          `json:"status"`
	Result    string          `json:"result"`
	CloseTime time.Time       `json:"close_time"`
	YesBid    decimal.Decimal `json:"yes_bid"`
	NoBid     decimal.Decimal `json:"no_bid"`
	Volume    decimal.Decimal `json:"volume"`
}

type kalshiMarketsResponse struct {
	Markets []kalshiMarket `json:"markets"`
	Cursor  string         `json:"cursor"`
}

type kalshiMarketResponse struct {
	Market kalshiMarket `json:"market"`
}

var (
	centsPerDollar = decimal.NewFromInt(100)
	evenOdds       = decimal.RequireFromString("0.5")
)

// toCandidate converts cents to probabilities; a market with no quotes gets even odds
func (m kalshiMarket) toCandidate() domain.CandidateMarket {
	yes, no := m.YesBid.Div(centsPerDollar), m.NoBid.Div(centsPerDollar)
	if yes.IsZero() && no.IsZero() {
		yes, no = evenOdds, evenOdds
	}
	category := m.Category
	if category == "" {
		category = DefaultCategory
	}
	return domain.CandidateMarket{
		ID:        m.Ticker,
		Title:     m.Title,
		Category:  category,
		CloseTime: m.CloseTime.UTC(),
		YesPrice:  yes,
		NoPrice:   no,
		Volume:    m.Volume,
		Source:    domain.MarketSourceKalshi,
	}
}

// FetchMarkets lists open markets. Individually invalid markets are skipped;
// if none survive the response counts as malformed.
func (c *KalshiClient) FetchMarkets(ctx context.Context, limit int) ([]domain.CandidateMarket, error) {
	params := url.Values{}
	params.Set("status", MarketStatusOpen)
	params.Set("limit", strconv.Itoa(limit))

	var resp kalshiMarketsResponse
	if err := c.get(ctx, PathMarkets, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Markets) == 0 {
		return []domain.CandidateMarket{}, nil
	}

	log := logger.FromContext(ctx)
	candidates := make([]domain.CandidateMarket, 0, len(resp.Markets))
	for _, m := range resp.Markets {
		candidate := m.toCandidate()
		if err := candidate.Validate(); err != nil {
			log.Warn(LogMsgMarketSkipped, "ticker", m.Ticker, "error", err)
			continue
		}
		candidates = append(candidates, candidate)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: all %d markets invalid", ErrMalformed, len(resp.Markets))
	}

	log.Info(LogMsgMarketsFetched, "count", len(candidates))
	return candidates, nil
}

// FetchOutcome reads a single market's result
func (c *KalshiClient) FetchOutcome(ctx context.Context, marketID string) (*bool, error) {
	var resp kalshiMarketResponse
	if err := c.get(ctx, PathMarkets+"/"+url.PathEscape(marketID), nil, &resp); err != nil {
		return nil, err
	}

	var outcome bool
	switch strings.ToLower(resp.Market.Result) {
	case ResultYes:
		outcome = true
	case ResultNo:
		outcome = false
	default:
		logger.FromContext(ctx).Debug(LogMsgOutcomeUnsettled, "ticker", marketID, "status", resp.Market.Status)
		return nil, nil
	}
	return &outcome, nil
}

// get performs a signed, rate-limited GET. Transport errors, 429 and 5xx are
// retried; everything else fails at once.
func (c *KalshiClient) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	u.RawQuery = params.Encode()

	var body []byte
	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		timestamp, signature, err := c.signer.Sign(c.now(), http.MethodGet, u.Path)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set(HeaderAccessKey, c.signer.keyID)
		req.Header.Set(HeaderAccessSignature, signature)
		req.Header.Set(HeaderAccessTimestamp, timestamp)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%s %d", ErrMsgUnexpectedState, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("%s %d", ErrMsgUnexpectedState, resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
		return err
	}

	notify := func(err error, next time.Duration) {
		logger.FromContext(ctx).Warn(LogMsgRequestRetry, "path", path, "next", next, "error", err)
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(c.newBackoff(), ctx), notify); err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
