package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

func TestWrapErr_MapsForeignKeyViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"predictions_user_id_fkey", domain.ErrUserNotFound},
		{"leagues_creator_id_fkey", domain.ErrUserNotFound},
		{"league_members_user_id_fkey", domain.ErrUserNotFound},
		{"predictions_market_id_fkey", domain.ErrMarketNotFound},
		{"league_members_league_id_fkey", domain.ErrLeagueNotFound},
		{"something_else", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: PgErrorCodeForeignKeyViolation, ConstraintName: tt.constraint}
			err := wrapErr("insert failed", pgErr)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestWrapErr_OtherErrors(t *testing.T) {
	err := wrapErr("query failed", &pgconn.PgError{Code: PgErrorCodeUniqueViolation})
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	err = wrapErr("query failed", context.DeadlineExceeded)
	assert.ErrorIs(t, err, domain.ErrStorageTimeout)
}
