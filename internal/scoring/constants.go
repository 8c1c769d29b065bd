package scoring

import "time"

// Default scoring policy
const (
	DefaultBaseCorrectPoints     = 10
	DefaultBaseWrongPoints       = 0
	DefaultContrarianThreshold   = 0.30
	DefaultContrarianMultiplier  = 1.5
	DefaultEarlyBirdWindow       = 24 * time.Hour
	DefaultEarlyBirdBonus        = 3
	DefaultStreakThreshold       = 3
	DefaultStreakBonusPerCorrect = 2
	DefaultStreakPageSize        = 50
)

// Log messages
const (
	LogMsgSettlementStarted   = "Settling market"
	LogMsgSettlementNoop      = "Market resolved with no predictions"
	LogMsgAlreadyScored       = "Prediction already scored, skipping"
	LogMsgPredictionScored    = "Prediction scored"
	LogMsgAchievementAwarded  = "Achievement awarded"
	LogMsgSettlementCompleted = "Settlement completed"
)
