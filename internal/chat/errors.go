package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// friendlyError maps a core error to the text shown to the user.
// Order matters: specific not-found kinds are checked before the generic kind.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrMarketClosed):
		return MsgMarketClosed
	case errors.Is(err, domain.ErrAlreadyResolved):
		return MsgAlreadyResolved
	case errors.Is(err, domain.ErrMarketNotFound):
		return MsgMarketNotFound
	case errors.Is(err, domain.ErrLeagueNotFound):
		return MsgLeagueNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, domain.ErrNotLeagueMember):
		return MsgNotMember
	case errors.Is(err, domain.ErrDuplicateName):
		return MsgDuplicateName
	case errors.Is(err, domain.ErrCapacity):
		return MsgLeagueFull
	case errors.Is(err, domain.ErrStorageTimeout):
		return MsgStorageTimeout
	case errors.Is(err, domain.ErrInvalidInput):
		return fmt.Sprintf(MsgInvalidInput, inputDetail(err))
	case errors.Is(err, domain.ErrNotFound):
		return MsgMarketNotFound
	default:
		return MsgGenericError
	}
}

// inputDetail strips the sentinel prefix so users only see the reason
func inputDetail(err error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, domain.ErrMsgInvalidInput+": "); ok {
		return detail
	}
	return msg
}

// isUserError reports whether err is the user's fault rather than ours
func isUserError(err error) bool {
	return domain.ErrorCode(err) != domain.CodeInternal && !errors.Is(err, domain.ErrStorageTimeout)
}
