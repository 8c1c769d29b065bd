package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

var _ chat.Core = (*APIClient)(nil)

// APIClient talks to the prediction league HTTP API. It implements chat.Core
// so the Discord process runs the same dispatcher as the in-process bots.
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultAPITimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultAPIRetries,
		RetryDelay: DefaultAPIRetryDelay,
	}
}

// StatusError is returned for a failed call whose body carried no known code
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %d", ErrMsgAPIStatus, e.Status)
	}
	return fmt.Sprintf("%s %d: %s", ErrMsgAPIStatus, e.Status, e.Message)
}

// do performs one API call and decodes a 2xx body into out. retry enables
// retries on transport errors and 5xx responses; only idempotent calls set it.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any, retry bool) error {
	var reqBody []byte
	if body != nil {
		var err error
		if reqBody, err = json.Marshal(body); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgMarshalBody, err)
		}
	}

	attempts := 1
	if retry {
		attempts += c.MaxRetries
	}
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + time.Duration(rand.Int64N(int64(c.RetryDelay)/4+1))
			log.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgCreateRequest, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}
		if id := logger.GetRequestID(ctx); id != "" {
			req.Header.Set(HeaderRequestID, id)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			log.Warn(LogWarnRequestFailed, "error", err, "attempt", attempt, "path", path)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError && attempt+1 < attempts {
			lastErr = decodeError(resp)
			resp.Body.Close()
			log.Warn(LogWarnServerError, "status", resp.StatusCode, "attempt", attempt, "path", path)
			continue
		}
		return c.finish(resp, out)
	}

	return fmt.Errorf("%s: %w", ErrMsgRetriesExceeded, lastErr)
}

func (c *APIClient) finish(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeResponse, err)
	}
	return nil
}

// decodeError turns an error body back into the domain error it came from
func decodeError(resp *http.Response) error {
	var apiErr domain.APIError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyBytes))
	if err := json.Unmarshal(data, &apiErr); err != nil {
		return &StatusError{Status: resp.StatusCode, Message: string(bytes.TrimSpace(data))}
	}
	if sentinel := domain.ErrorFromCode(apiErr.Code); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, apiErr.Error)
	}
	return &StatusError{Status: resp.StatusCode, Message: apiErr.Error}
}

func leagueQuery(leagueID int64, limit int) string {
	q := url.Values{}
	q.Set("league_id", strconv.FormatInt(leagueID, 10))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q.Encode()
}

// RegisterUser registers or retrieves a user
func (c *APIClient) RegisterUser(ctx context.Context, platform, platformUserID, displayName string) (*domain.User, error) {
	req := domain.RegisterUserRequest{
		Platform:       platform,
		PlatformUserID: platformUserID,
		DisplayName:    displayName,
	}
	var user domain.User
	if err := c.do(ctx, http.MethodPost, PathRegisterUser, req, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCurrentCohort returns this week's markets
func (c *APIClient) GetCurrentCohort(ctx context.Context) ([]domain.Market, error) {
	var resp domain.CohortResponse
	if err := c.do(ctx, http.MethodGet, PathCohort, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Markets, nil
}

// GetUserLeaguePredictions returns the user's choices on the given markets in one league
func (c *APIClient) GetUserLeaguePredictions(ctx context.Context, userID string, leagueID int64, marketIDs []string) (map[string]bool, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("league_id", strconv.FormatInt(leagueID, 10))
	for _, id := range marketIDs {
		q.Add("market_id", id)
	}
	var resp domain.PicksResponse
	if err := c.do(ctx, http.MethodGet, PathPredictions+"?"+q.Encode(), nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Picks == nil {
		resp.Picks = map[string]bool{}
	}
	return resp.Picks, nil
}

// SubmitPrediction records a prediction. Submissions are upserts, so retrying is safe.
func (c *APIClient) SubmitPrediction(ctx context.Context, req domain.SubmitPredictionRequest) (*domain.Prediction, error) {
	var p domain.Prediction
	if err := c.do(ctx, http.MethodPost, PathPredictions, req, &p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetLeaderboard returns the all-time leaderboard of a league
func (c *APIClient) GetLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error) {
	var lb domain.Leaderboard
	if err := c.do(ctx, http.MethodGet, PathLeaderboard+"?"+leagueQuery(leagueID, limit), nil, &lb, true); err != nil {
		return nil, err
	}
	return &lb, nil
}

// GetWeeklyLeaderboard returns the current week's leaderboard of a league
func (c *APIClient) GetWeeklyLeaderboard(ctx context.Context, leagueID int64, limit int) (*domain.Leaderboard, error) {
	var lb domain.Leaderboard
	if err := c.do(ctx, http.MethodGet, PathWeeklyLeaderboard+"?"+leagueQuery(leagueID, limit), nil, &lb, true); err != nil {
		return nil, err
	}
	return &lb, nil
}

// GetUserStats returns a user's personal stats
func (c *APIClient) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var s domain.UserStats
	path := fmt.Sprintf(PathUserStats, url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &s, true); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetLeague looks a league up by id or name
func (c *APIClient) GetLeague(ctx context.Context, ref domain.LeagueRef) (*domain.League, error) {
	q := url.Values{}
	if ref.ID > 0 {
		q.Set("league_id", strconv.FormatInt(ref.ID, 10))
	} else {
		q.Set("name", ref.Name)
	}
	var league domain.League
	if err := c.do(ctx, http.MethodGet, PathLeagueLookup+"?"+q.Encode(), nil, &league, true); err != nil {
		return nil, err
	}
	return &league, nil
}

// ListUserLeagues lists the leagues a user belongs to
func (c *APIClient) ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	var resp domain.LeaguesResponse
	if err := c.do(ctx, http.MethodGet, PathLeagues+"?"+q.Encode(), nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Leagues, nil
}

// CreateLeague creates a league. It is never retried: a retry after a lost
// response would report the league's own name as taken.
func (c *APIClient) CreateLeague(ctx context.Context, name, creatorID string) (*domain.League, error) {
	req := domain.CreateLeagueRequest{Name: name, CreatorID: creatorID}
	var league domain.League
	if err := c.do(ctx, http.MethodPost, PathLeagues, req, &league, false); err != nil {
		return nil, err
	}
	return &league, nil
}

// JoinLeague joins a league; joining twice reports joined=false
func (c *APIClient) JoinLeague(ctx context.Context, userID string, ref domain.LeagueRef) (*domain.League, bool, error) {
	req := domain.JoinLeagueRequest{UserID: userID, LeagueID: ref.ID, Name: ref.Name}
	var resp domain.JoinLeagueResponse
	if err := c.do(ctx, http.MethodPost, PathJoinLeague, req, &resp, true); err != nil {
		return nil, false, err
	}
	return &resp.League, resp.Joined, nil
}

// GetSystemStatus returns the activity snapshot
func (c *APIClient) GetSystemStatus(ctx context.Context) (*domain.SystemStatus, error) {
	var s domain.SystemStatus
	if err := c.do(ctx, http.MethodGet, PathStatus, nil, &s, true); err != nil {
		return nil, err
	}
	return &s, nil
}

// Ping checks the API's liveness endpoint
func (c *APIClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, PathHealthz, nil, nil, false)
}
