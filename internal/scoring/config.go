package scoring

import (
	"fmt"
	"time"
)

// Config holds the scoring policy. Every constant is configurable.
type Config struct {
	BaseCorrectPoints     int           `mapstructure:"base_correct_points" validate:"min=0"`
	BaseWrongPoints       int           `mapstructure:"base_wrong_points"`
	ContrarianThreshold   float64       `mapstructure:"contrarian_threshold" validate:"gt=0,lt=1"`
	ContrarianMultiplier  float64       `mapstructure:"contrarian_multiplier" validate:"gte=0"`
	EarlyBirdWindow       time.Duration `mapstructure:"early_bird_window" validate:"gte=0"`
	EarlyBirdBonus        int           `mapstructure:"early_bird_bonus" validate:"gte=0"`
	StreakThreshold       int           `mapstructure:"streak_threshold" validate:"min=1"`
	StreakBonusPerCorrect int           `mapstructure:"streak_bonus_per_correct" validate:"gte=0"`
	StreakPageSize        int           `mapstructure:"streak_page_size" validate:"min=1"`
}

// DefaultConfig returns the standard scoring policy.
func DefaultConfig() Config {
	return Config{
		BaseCorrectPoints:     DefaultBaseCorrectPoints,
		BaseWrongPoints:       DefaultBaseWrongPoints,
		ContrarianThreshold:   DefaultContrarianThreshold,
		ContrarianMultiplier:  DefaultContrarianMultiplier,
		EarlyBirdWindow:       DefaultEarlyBirdWindow,
		EarlyBirdBonus:        DefaultEarlyBirdBonus,
		StreakThreshold:       DefaultStreakThreshold,
		StreakBonusPerCorrect: DefaultStreakBonusPerCorrect,
		StreakPageSize:        DefaultStreakPageSize,
	}
}

// Validate checks the policy for values that would make scoring meaningless.
func (c Config) Validate() error {
	if c.ContrarianThreshold <= 0 || c.ContrarianThreshold >= 1 {
		return fmt.Errorf("contrarian threshold must be in (0,1), got %v", c.ContrarianThreshold)
	}
	if c.StreakThreshold < 1 {
		return fmt.Errorf("streak threshold must be at least 1, got %d", c.StreakThreshold)
	}
	if c.StreakPageSize < 1 {
		return fmt.Errorf("streak page size must be at least 1, got %d", c.StreakPageSize)
	}
	return nil
}
