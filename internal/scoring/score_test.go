package scoring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

func TestComputeScore_ContrarianEarlyBird(t *testing.T) {
	cfg := DefaultConfig()
	closeTime := time.Date(2024, 6, 7, 18, 0, 0, 0, time.UTC)
	market := domain.Market{
		CloseTime: closeTime,
		YesPrice:  decimal.RequireFromString("0.20"),
		NoPrice:   decimal.RequireFromString("0.80"),
	}

	flags := DeriveFlags(market, true, closeTime.Add(-30*time.Hour), cfg)
	require.True(t, flags.IsContrarian)
	require.True(t, flags.IsEarlyBird)

	in := Input{Choice: true, Outcome: true, IsContrarian: flags.IsContrarian, IsEarlyBird: flags.IsEarlyBird, Streak: 1}
	score := ComputeScore(in, cfg)
	assert.Equal(t, 28, score.Points)
	assert.Equal(t, 10, score.Base)
	assert.Equal(t, 15, score.ContrarianBonus)
	assert.Equal(t, 3, score.EarlyBirdBonus)
	assert.Equal(t, 0, score.StreakBonus)

	for i := 0; i < 10; i++ {
		assert.Equal(t, score, ComputeScore(in, cfg))
	}
}

func TestComputeScore_Wrong(t *testing.T) {
	cfg := DefaultConfig()
	score := ComputeScore(Input{Choice: true, Outcome: false, IsContrarian: true, IsEarlyBird: true, Streak: 9}, cfg)
	assert.False(t, score.Correct)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, 0, score.Streak)

	cfg.BaseWrongPoints = -2
	assert.Equal(t, -2, ComputeScore(Input{Choice: false, Outcome: true}, cfg).Points)
}

func TestComputeScore_StreakBonus(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		streak int
		bonus  int
	}{
		{1, 0},
		{2, 0},
		{3, 2},
		{4, 4},
		{7, 10},
	}
	for _, tt := range tests {
		score := ComputeScore(Input{Choice: false, Outcome: false, Streak: tt.streak}, cfg)
		assert.Equal(t, tt.bonus, score.StreakBonus, "streak %d", tt.streak)
		assert.Equal(t, 10+tt.bonus, score.Points, "streak %d", tt.streak)
	}
}

func TestComputeScore_MultiplierFloors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseCorrectPoints = 7
	score := ComputeScore(Input{Choice: true, Outcome: true, IsContrarian: true}, cfg)
	assert.Equal(t, 10, score.ContrarianBonus) // floor(10.5)
	assert.Equal(t, 17, score.Points)
}

func TestDeriveFlags(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)
	market := domain.Market{
		CloseTime: now.Add(24 * time.Hour),
		YesPrice:  decimal.RequireFromString("0.30"),
		NoPrice:   decimal.RequireFromString("0.70"),
	}

	yes := DeriveFlags(market, true, now, cfg)
	assert.False(t, yes.IsContrarian, "price equal to threshold is not contrarian")
	assert.False(t, yes.IsEarlyBird, "exactly the window is not early")
	assert.True(t, yes.Odds.Equal(decimal.RequireFromString("0.30")))

	no := DeriveFlags(market, false, now.Add(-time.Minute), cfg)
	assert.False(t, no.IsContrarian)
	assert.True(t, no.IsEarlyBird)
	assert.True(t, no.Odds.Equal(decimal.RequireFromString("0.70")))

	market.NoPrice = decimal.RequireFromString("0.05")
	assert.True(t, DeriveFlags(market, false, now, cfg).IsContrarian)
}

func TestStreakFromHistory(t *testing.T) {
	assert.Equal(t, 0, StreakFromHistory(nil))
	assert.Equal(t, 0, StreakFromHistory([]bool{false, true, true}))
	assert.Equal(t, 2, StreakFromHistory([]bool{true, true, false, true}))
	assert.Equal(t, 3, StreakFromHistory([]bool{true, true, true}))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.ContrarianThreshold = 1.2
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.StreakThreshold = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.StreakPageSize = 0
	assert.Error(t, cfg.Validate())
}
