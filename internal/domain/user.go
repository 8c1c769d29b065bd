package domain

import (
	"fmt"
	"strings"
	"time"
)

// Supported chat platforms
const (
	PlatformTelegram = "telegram"
	PlatformDiscord  = "discord"
)

// User is a chat participant. ID is platform-qualified and opaque to the core.
type User struct {
	ID                 string    `json:"user_id"`
	Platform           string    `json:"platform"`
	DisplayName        string    `json:"display_name"`
	TotalPoints        int       `json:"total_points"`
	WeeklyPoints       int       `json:"weekly_points"`
	PredictionsMade    int       `json:"predictions_made"`
	PredictionsCorrect int       `json:"predictions_correct"`
	Streak             int       `json:"streak"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Accuracy returns the user's lifetime accuracy percentage.
func (u User) Accuracy() float64 {
	return Accuracy(u.PredictionsCorrect, u.PredictionsMade)
}

// QualifiedUserID builds the storage id for a platform user, e.g. "telegram:42".
func QualifiedUserID(platform, platformUserID string) string {
	return fmt.Sprintf("%s:%s", platform, platformUserID)
}

// PlatformOf returns the platform prefix of a qualified id.
func PlatformOf(userID string) string {
	platform, _, found := strings.Cut(userID, ":")
	if !found {
		return ""
	}
	return platform
}
