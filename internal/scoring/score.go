package scoring

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// Flags are the derived properties of a prediction, fixed when it is submitted.
type Flags struct {
	Odds         decimal.Decimal
	IsContrarian bool
	IsEarlyBird  bool
}

// DeriveFlags computes the contrarian and early-bird flags for a choice on
// market at submission time now, using the market's stored price snapshot.
func DeriveFlags(market domain.Market, choice bool, now time.Time, cfg Config) Flags {
	odds := market.ChoiceProbability(choice)
	return Flags{
		Odds:         odds,
		IsContrarian: odds.LessThan(decimal.NewFromFloat(cfg.ContrarianThreshold)),
		IsEarlyBird:  market.CloseTime.Sub(now) > cfg.EarlyBirdWindow,
	}
}

// Input is everything ComputeScore needs, all of it frozen.
type Input struct {
	Choice       bool
	Outcome      bool
	IsContrarian bool
	IsEarlyBird  bool
	// Streak is the consecutive-correct run including this prediction.
	// Ignored when the prediction is wrong.
	Streak int
}

// Score is the breakdown of a computed point value.
type Score struct {
	Correct         bool
	Base            int
	ContrarianBonus int
	EarlyBirdBonus  int
	StreakBonus     int
	Streak          int
	Points          int
}

// ComputeScore is a pure function of its inputs and the policy.
func ComputeScore(in Input, cfg Config) Score {
	if in.Choice != in.Outcome {
		return Score{
			Base:   cfg.BaseWrongPoints,
			Points: cfg.BaseWrongPoints,
		}
	}

	s := Score{
		Correct: true,
		Base:    cfg.BaseCorrectPoints,
		Streak:  in.Streak,
	}
	if in.IsContrarian {
		s.ContrarianBonus = int(math.Floor(float64(cfg.BaseCorrectPoints) * cfg.ContrarianMultiplier))
	}
	if in.IsEarlyBird {
		s.EarlyBirdBonus = cfg.EarlyBirdBonus
	}
	if in.Streak >= cfg.StreakThreshold {
		s.StreakBonus = (in.Streak - cfg.StreakThreshold + 1) * cfg.StreakBonusPerCorrect
	}
	s.Points = s.Base + s.ContrarianBonus + s.EarlyBirdBonus + s.StreakBonus
	return s
}

// StreakFromHistory counts consecutive correct outcomes from the newest one.
func StreakFromHistory(newestFirst []bool) int {
	streak := 0
	for _, correct := range newestFirst {
		if !correct {
			break
		}
		streak++
	}
	return streak
}
