package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// validPlatforms defines the supported platform values
var validPlatforms = map[string]bool{
	domain.PlatformTelegram: true,
	domain.PlatformDiscord:  true,
}

// Service defines the interface for user operations
type Service interface {
	// RegisterUser makes sure the platform user exists, creating it (and its
	// default league membership) on first interaction.
	RegisterUser(ctx context.Context, platform, platformUserID, displayName string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetCacheStats() CacheStats
}

// service implements the Service interface
type service struct {
	repo      repository.User
	userCache *userCache
}

// NewService creates a new user service
func NewService(repo repository.User, cacheCfg CacheConfig) Service {
	return &service{
		repo:      repo,
		userCache: newUserCache(cacheCfg),
	}
}

// RegisterUser registers a user on first sight. A cached user whose display
// name has not changed skips the database round trip.
func (s *service) RegisterUser(ctx context.Context, platform, platformUserID, displayName string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	platform = strings.ToLower(strings.TrimSpace(platform))
	platformUserID = strings.TrimSpace(platformUserID)
	if err := validateIdentity(platform, platformUserID); err != nil {
		return nil, err
	}
	displayName = normalizeDisplayName(displayName, platformUserID)
	userID := domain.QualifiedUserID(platform, platformUserID)

	if cached, ok := s.userCache.Get(userID); ok && cached.DisplayName == displayName {
		log.Debug(LogMsgUserCacheHit, "user_id", userID)
		return cached, nil
	}

	log.Debug(LogMsgRegisterUserCalled, "user_id", userID)
	u := &domain.User{ID: userID, Platform: platform, DisplayName: displayName}
	created, err := s.repo.UpsertUser(ctx, u)
	if err != nil {
		log.Error(LogErrFailedToUpsertUser, "error", err, "user_id", userID)
		return nil, err
	}
	if created {
		log.Info(LogMsgUserRegistered, "user_id", userID, "display_name", displayName)
	}

	s.userCache.Set(u)
	return u, nil
}

// GetUser always reads through to storage so point totals are current
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *service) GetCacheStats() CacheStats {
	return s.userCache.GetStats()
}

func validateIdentity(platform, platformUserID string) error {
	if !validPlatforms[platform] {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnsupportedPlatform, platform)
	}
	if platformUserID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPlatformID)
	}
	if len(platformUserID) > MaxPlatformIDLength {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlatformIDTooLong)
	}
	return nil
}

// normalizeDisplayName trims and truncates the name, falling back to the platform id
func normalizeDisplayName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if r := []rune(name); len(r) > MaxDisplayNameLength {
		return string(r[:MaxDisplayNameLength])
	}
	return name
}
