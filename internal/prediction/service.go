package prediction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
	"github.com/osse101/PredictionLeague_Go/internal/scoring"
)

// Service defines the prediction ledger
type Service interface {
	// Submit records or replaces the user's call on a market within a league.
	// Resubmitting the same call is idempotent.
	Submit(ctx context.Context, req domain.SubmitPredictionRequest, now time.Time) (*domain.Prediction, error)
	// GetUserPredictions returns the latest choice per market across leagues
	GetUserPredictions(ctx context.Context, userID string, marketIDs []string) (map[string]bool, error)
	GetUserLeaguePredictions(ctx context.Context, userID string, leagueID int64, marketIDs []string) (map[string]bool, error)
}

// MembershipChecker resolves the league a prediction is filed under
type MembershipChecker interface {
	RequireMember(ctx context.Context, leagueID int64, userID string) (*domain.League, error)
}

type service struct {
	repo     repository.Prediction
	markets  repository.Market
	leagues  MembershipChecker
	eventBus event.Bus
	scoring  scoring.Config
}

// NewService creates a new prediction service. eventBus may be a
// ResilientPublisher so delivery failures are retried in the background.
func NewService(
	repo repository.Prediction,
	markets repository.Market,
	leagues MembershipChecker,
	eventBus event.Bus,
	scoringCfg scoring.Config,
) Service {
	return &service{
		repo:     repo,
		markets:  markets,
		leagues:  leagues,
		eventBus: eventBus,
		scoring:  scoringCfg,
	}
}

func (s *service) Submit(ctx context.Context, req domain.SubmitPredictionRequest, now time.Time) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	if err := normalizeRequest(&req); err != nil {
		return nil, err
	}

	market, err := s.markets.GetMarket(ctx, req.MarketID)
	if err != nil {
		return nil, err
	}
	if !market.IsOpen(now) {
		log.Debug(LogMsgSubmitRejected, "market_id", req.MarketID, "reason", domain.ErrMsgMarketClosed)
		return nil, fmt.Errorf("%w: %s", domain.ErrMarketClosed, req.MarketID)
	}

	if _, err := s.leagues.RequireMember(ctx, req.LeagueID, req.UserID); err != nil {
		return nil, err
	}

	flags := scoring.DeriveFlags(*market, req.Choice, now, s.scoring)
	p := &domain.Prediction{
		UserID:           req.UserID,
		MarketID:         req.MarketID,
		LeagueID:         req.LeagueID,
		Choice:           req.Choice,
		Confidence:       req.Confidence,
		OddsAtPrediction: flags.Odds,
		IsContrarian:     flags.IsContrarian,
		IsEarlyBird:      flags.IsEarlyBird,
	}

	inserted, err := s.repo.UpsertPrediction(ctx, p, now)
	if err != nil {
		if !isRejection(err) {
			log.Error(LogErrFailedToUpsert, "error", err, "user_id", req.UserID, "market_id", req.MarketID)
		}
		return nil, err
	}

	log.Info(LogMsgPredictionStored,
		"user_id", p.UserID,
		"market_id", p.MarketID,
		"league_id", p.LeagueID,
		"choice", p.Choice,
		"inserted", inserted,
		"contrarian", p.IsContrarian,
		"early_bird", p.IsEarlyBird)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewPredictionSubmittedEvent(p, inserted)); err != nil {
			log.Warn(LogWarnFailedToPublish, "error", err, "prediction_id", p.ID)
		}
	}
	return p, nil
}

func (s *service) GetUserPredictions(ctx context.Context, userID string, marketIDs []string) (map[string]bool, error) {
	return s.repo.GetUserPredictions(ctx, userID, nil, marketIDs)
}

func (s *service) GetUserLeaguePredictions(ctx context.Context, userID string, leagueID int64, marketIDs []string) (map[string]bool, error) {
	if leagueID <= 0 {
		leagueID = domain.DefaultLeagueID
	}
	return s.repo.GetUserPredictions(ctx, userID, &leagueID, marketIDs)
}

// normalizeRequest applies defaults and rejects malformed input
func normalizeRequest(req *domain.SubmitPredictionRequest) error {
	req.UserID = strings.TrimSpace(req.UserID)
	req.MarketID = strings.TrimSpace(req.MarketID)
	if req.UserID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingUser)
	}
	if req.MarketID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingMarket)
	}
	if req.Confidence == 0 {
		req.Confidence = domain.ConfidenceNeutral
	}
	if req.Confidence < domain.ConfidenceMin || req.Confidence > domain.ConfidenceMax {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidConfidence, req.Confidence)
	}
	if req.LeagueID <= 0 {
		req.LeagueID = domain.DefaultLeagueID
	}
	return nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrMarketClosed) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput)
}
