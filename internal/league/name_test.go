package league

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in          string
		wantDisplay string
		wantKey     string
		wantErr     bool
	}{
		{in: "  Office   Pool ", wantDisplay: "Office Pool", wantKey: "office pool"},
		{in: "CRYPTO Bros", wantDisplay: "CRYPTO Bros", wantKey: "crypto bros"},
		{in: "ÉQUIPE Rouge", wantDisplay: "ÉQUIPE Rouge", wantKey: "équipe rouge"},
		{in: "abc", wantDisplay: "abc", wantKey: "abc"},
		{in: "ab", wantErr: true},
		{in: "   ", wantErr: true},
		{in: strings.Repeat("x", 51), wantErr: true},
		{in: strings.Repeat("é", 50), wantDisplay: strings.Repeat("é", 50), wantKey: strings.Repeat("é", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			display, key, err := NormalizeName(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDisplay, display)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestNameKey_CaseInsensitiveLookup(t *testing.T) {
	assert.Equal(t, NameKey("My League"), NameKey("my league"))
	assert.Equal(t, NameKey("My League"), NameKey("  MY   LEAGUE "))
	assert.NotEqual(t, NameKey("My League"), NameKey("My Leagues"))
}
