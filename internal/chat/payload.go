package chat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Action is a decoded button payload
type Action struct {
	Name     string
	LeagueID int64
	Choice   bool
	MarketID string
}

// Action names
const (
	ActionMarkets     = "markets"
	ActionRefresh     = "refresh"
	ActionLeaderboard = "leaderboard"
	ActionMyStats     = "mystats"
	ActionPredict     = "predict"
	ActionJoin        = "join"
)

// PredictPayload encodes a YES/NO button for a market in a league
func PredictPayload(leagueID int64, choice bool, marketID string) string {
	c := choiceNo
	if choice {
		c = choiceYes
	}
	return fmt.Sprintf("%s:%d:%s:%s", prefixPredict, leagueID, c, marketID)
}

// JoinPayload encodes a join button
func JoinPayload(leagueID int64) string {
	return fmt.Sprintf("%s:%d", prefixJoin, leagueID)
}

// MarketsPayload encodes a markets view scoped to a league
func MarketsPayload(leagueID int64) string {
	return fmt.Sprintf("%s:%d", prefixMarkets, leagueID)
}

// LeaderboardPayload encodes a leaderboard view scoped to a league
func LeaderboardPayload(leagueID int64) string {
	return fmt.Sprintf("%s:%d", prefixLeaderboard, leagueID)
}

// ParsePayload decodes a button payload. Market ids may contain colons, so
// the predict payload is split into at most four fields.
func ParsePayload(payload string) (Action, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Action{}, errors.New(ErrMsgEmptyPayload)
	}

	switch payload {
	case PayloadMarkets:
		return Action{Name: ActionMarkets}, nil
	case PayloadRefresh:
		return Action{Name: ActionRefresh}, nil
	case PayloadLeaderboard:
		return Action{Name: ActionLeaderboard}, nil
	case PayloadMyStats:
		return Action{Name: ActionMyStats}, nil
	}

	parts := strings.SplitN(payload, ":", 4)
	switch parts[0] {
	case prefixPredict:
		if len(parts) != 4 || parts[3] == "" {
			return Action{}, fmt.Errorf("%s: %q", ErrMsgUnknownPayload, payload)
		}
		leagueID, err := parseLeagueID(parts[1])
		if err != nil {
			return Action{}, err
		}
		var choice bool
		switch parts[2] {
		case choiceYes:
			choice = true
		case choiceNo:
		default:
			return Action{}, fmt.Errorf("%s: %q", ErrMsgBadChoice, parts[2])
		}
		return Action{Name: ActionPredict, LeagueID: leagueID, Choice: choice, MarketID: parts[3]}, nil

	case prefixJoin, prefixMarkets, prefixLeaderboard:
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%s: %q", ErrMsgUnknownPayload, payload)
		}
		leagueID, err := parseLeagueID(parts[1])
		if err != nil {
			return Action{}, err
		}
		name := map[string]string{
			prefixJoin:        ActionJoin,
			prefixMarkets:     ActionMarkets,
			prefixLeaderboard: ActionLeaderboard,
		}[parts[0]]
		return Action{Name: name, LeagueID: leagueID}, nil
	}

	return Action{}, fmt.Errorf("%s: %q", ErrMsgUnknownPayload, payload)
}

func parseLeagueID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: %q", ErrMsgBadLeagueID, s)
	}
	return id, nil
}
