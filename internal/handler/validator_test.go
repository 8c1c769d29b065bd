package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(&domain.CreateLeagueRequest{Name: "ab"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at least 3", fields["name"])
	assert.Equal(t, "This field is required", fields["creator_id"])
}

func TestFormatValidationError_Nested(t *testing.T) {
	err := GetValidator().ValidateStruct(&domain.PublishCohortRequest{
		WeekStart: "June 10",
		Markets:   []domain.CandidateMarket{{ID: "KX-1"}},
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Contains(t, fields["week_start"], "2006-01-02")
	assert.Equal(t, "This field is required", fields["markets[0].title"])
}

func TestFormatValidationError_NotValidation(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
