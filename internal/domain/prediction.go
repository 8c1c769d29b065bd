package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Confidence bounds. Confidence is recorded but never affects scoring.
const (
	ConfidenceMin     = 1
	ConfidenceMax     = 100
	ConfidenceNeutral = 50
)

// Prediction status values derived from the stored row
const (
	PredictionStatusPending   = "pending"
	PredictionStatusCorrect   = "correct"
	PredictionStatusIncorrect = "incorrect"
)

// Prediction is one user's YES/NO call on a market within a league.
// ScoredAt is nil while the prediction is pending.
type Prediction struct {
	ID               int64           `json:"prediction_id"`
	UserID           string          `json:"user_id"`
	MarketID         string          `json:"market_id"`
	LeagueID         int64           `json:"league_id"`
	Choice           bool            `json:"choice"`
	Confidence       int             `json:"confidence"`
	OddsAtPrediction decimal.Decimal `json:"odds_at_prediction"`
	IsContrarian     bool            `json:"is_contrarian"`
	IsEarlyBird      bool            `json:"is_early_bird"`
	PointsEarned     int             `json:"points_earned"`
	IsCorrect        *bool           `json:"is_correct,omitempty"`
	ScoredAt         *time.Time      `json:"scored_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// IsScored reports whether settlement has written this prediction.
func (p Prediction) IsScored() bool {
	return p.ScoredAt != nil
}

// Status returns pending, correct or incorrect.
func (p Prediction) Status() string {
	if p.ScoredAt == nil || p.IsCorrect == nil {
		return PredictionStatusPending
	}
	if *p.IsCorrect {
		return PredictionStatusCorrect
	}
	return PredictionStatusIncorrect
}

// SubmitPredictionRequest is the input to the ledger's submit operation.
type SubmitPredictionRequest struct {
	UserID     string `json:"user_id" validate:"required,max=128"`
	MarketID   string `json:"market_id" validate:"required,max=128"`
	LeagueID   int64  `json:"league_id" validate:"omitempty,min=1"`
	Choice     bool   `json:"choice"`
	Confidence int    `json:"confidence" validate:"omitempty,min=1,max=100"`
}

// PredictionView is a prediction joined with its market title, used in stats.
type PredictionView struct {
	MarketID     string    `json:"market_id"`
	MarketTitle  string    `json:"market_title"`
	LeagueID     int64     `json:"league_id"`
	Choice       bool      `json:"choice"`
	Status       string    `json:"status"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}
