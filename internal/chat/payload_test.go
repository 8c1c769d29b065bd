package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Action
		wantErr string
	}{
		{name: "markets", payload: "markets", want: Action{Name: ActionMarkets}},
		{name: "refresh", payload: "refresh", want: Action{Name: ActionRefresh}},
		{name: "leaderboard", payload: "leaderboard", want: Action{Name: ActionLeaderboard}},
		{name: "mystats", payload: " mystats ", want: Action{Name: ActionMyStats}},
		{name: "predict yes", payload: "p:1:y:KXBTC-24", want: Action{Name: ActionPredict, LeagueID: 1, Choice: true, MarketID: "KXBTC-24"}},
		{name: "predict no", payload: "p:7:n:DEMO-1", want: Action{Name: ActionPredict, LeagueID: 7, MarketID: "DEMO-1"}},
		{name: "market id with colons", payload: "p:2:y:A:B:C", want: Action{Name: ActionPredict, LeagueID: 2, Choice: true, MarketID: "A:B:C"}},
		{name: "join", payload: "j:12", want: Action{Name: ActionJoin, LeagueID: 12}},
		{name: "league markets", payload: "m:3", want: Action{Name: ActionMarkets, LeagueID: 3}},
		{name: "league leaderboard", payload: "lb:3", want: Action{Name: ActionLeaderboard, LeagueID: 3}},
		{name: "empty", payload: "", wantErr: ErrMsgEmptyPayload},
		{name: "unknown prefix", payload: "x:1", wantErr: ErrMsgUnknownPayload},
		{name: "predict missing market", payload: "p:1:y:", wantErr: ErrMsgUnknownPayload},
		{name: "predict short", payload: "p:1:y", wantErr: ErrMsgUnknownPayload},
		{name: "bad choice", payload: "p:1:maybe:M", wantErr: ErrMsgBadChoice},
		{name: "bad league", payload: "p:abc:y:M", wantErr: ErrMsgBadLeagueID},
		{name: "zero league", payload: "j:0", wantErr: ErrMsgBadLeagueID},
		{name: "join extra field", payload: "j:1:2", wantErr: ErrMsgUnknownPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePayload(tt.payload)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayloadBuilders_RoundTrip(t *testing.T) {
	a, err := ParsePayload(PredictPayload(4, true, "KXFED-25JUN"))
	require.NoError(t, err)
	assert.Equal(t, Action{Name: ActionPredict, LeagueID: 4, Choice: true, MarketID: "KXFED-25JUN"}, a)

	a, err = ParsePayload(JoinPayload(9))
	require.NoError(t, err)
	assert.Equal(t, Action{Name: ActionJoin, LeagueID: 9}, a)

	a, err = ParsePayload(MarketsPayload(9))
	require.NoError(t, err)
	assert.Equal(t, ActionMarkets, a.Name)

	a, err = ParsePayload(LeaderboardPayload(9))
	require.NoError(t, err)
	assert.Equal(t, ActionLeaderboard, a.Name)
}

func TestPredictPayload_FitsTypicalMarketIDs(t *testing.T) {
	id := "KXHIGHNY-24JUN07-B85.5"
	assert.LessOrEqual(t, len(PredictPayload(999999, false, id)), MaxPayloadBytes)

	long := strings.Repeat("X", MaxPayloadBytes)
	assert.Greater(t, len(PredictPayload(1, true, long)), MaxPayloadBytes)
}
