package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/user"
	"github.com/osse101/PredictionLeague_Go/mocks"
)

func TestRegisterUser(t *testing.T) {
	t.Run("creates qualified user then serves from cache", func(t *testing.T) {
		repo := mocks.NewMockRepositoryUser(t)
		svc := user.NewService(repo, user.DefaultCacheConfig())

		repo.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "telegram:42" && u.Platform == domain.PlatformTelegram && u.DisplayName == "Ann"
		})).Return(true, nil).Once()

		u, err := svc.RegisterUser(context.Background(), "Telegram", " 42 ", " Ann ")
		require.NoError(t, err)
		assert.Equal(t, "telegram:42", u.ID)

		again, err := svc.RegisterUser(context.Background(), "telegram", "42", "Ann")
		require.NoError(t, err)
		assert.Equal(t, u.ID, again.ID)
		assert.Equal(t, int64(1), svc.GetCacheStats().Hits)
	})

	t.Run("display name change refreshes storage", func(t *testing.T) {
		repo := mocks.NewMockRepositoryUser(t)
		svc := user.NewService(repo, user.DefaultCacheConfig())
		repo.On("UpsertUser", mock.Anything, mock.Anything).Return(false, nil).Twice()

		_, err := svc.RegisterUser(context.Background(), domain.PlatformDiscord, "7", "old")
		require.NoError(t, err)
		u, err := svc.RegisterUser(context.Background(), domain.PlatformDiscord, "7", "new")
		require.NoError(t, err)
		assert.Equal(t, "new", u.DisplayName)
	})

	t.Run("empty display name falls back to platform id", func(t *testing.T) {
		repo := mocks.NewMockRepositoryUser(t)
		svc := user.NewService(repo, user.DefaultCacheConfig())
		repo.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.DisplayName == "99"
		})).Return(true, nil)

		_, err := svc.RegisterUser(context.Background(), domain.PlatformTelegram, "99", "  ")
		require.NoError(t, err)
	})

	t.Run("invalid identities", func(t *testing.T) {
		repo := mocks.NewMockRepositoryUser(t)
		svc := user.NewService(repo, user.DefaultCacheConfig())

		for _, tc := range []struct{ platform, id string }{
			{"twitch", "1"},
			{domain.PlatformTelegram, ""},
			{domain.PlatformTelegram, strings.Repeat("9", user.MaxPlatformIDLength+1)},
		} {
			_, err := svc.RegisterUser(context.Background(), tc.platform, tc.id, "x")
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s/%s", tc.platform, tc.id)
		}
	})

	t.Run("storage failure is not cached", func(t *testing.T) {
		repo := mocks.NewMockRepositoryUser(t)
		svc := user.NewService(repo, user.DefaultCacheConfig())
		repo.On("UpsertUser", mock.Anything, mock.Anything).Return(false, errors.New("db down")).Once()
		repo.On("UpsertUser", mock.Anything, mock.Anything).Return(true, nil).Once()

		_, err := svc.RegisterUser(context.Background(), domain.PlatformTelegram, "5", "eve")
		require.Error(t, err)
		_, err = svc.RegisterUser(context.Background(), domain.PlatformTelegram, "5", "eve")
		require.NoError(t, err)
	})
}

func TestGetUser(t *testing.T) {
	repo := mocks.NewMockRepositoryUser(t)
	svc := user.NewService(repo, user.DefaultCacheConfig())
	repo.On("GetUserByID", mock.Anything, "telegram:1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), "telegram:1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
