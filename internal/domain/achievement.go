package domain

import "time"

// Achievement keys
const (
	AchievementFirstPrediction  = "first_prediction"
	AchievementCenturyClub      = "century_club"
	AchievementHotStreak        = "hot_streak_5"
	AchievementContrarianGenius = "contrarian_genius"
)

// Achievement thresholds
const (
	CenturyClubPoints  = 100
	HotStreakThreshold = 5
)

// Achievement is a badge earned by a user.
type Achievement struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awarded_at"`
}

// AchievementAward is a newly granted achievement.
type AchievementAward struct {
	UserID string `json:"user_id"`
	Key    string `json:"key"`
}

var achievementNames = map[string]string{
	AchievementFirstPrediction:  "First Prediction",
	AchievementCenturyClub:      "Century Club",
	AchievementHotStreak:        "Hot Streak",
	AchievementContrarianGenius: "Contrarian Genius",
}

// AchievementName returns the display name for key.
func AchievementName(key string) string {
	if name, ok := achievementNames[key]; ok {
		return name
	}
	return key
}
