package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound          = "not found"
	ErrMsgUserNotFound      = "user not found"
	ErrMsgMarketNotFound    = "market not found"
	ErrMsgLeagueNotFound    = "league not found"
	ErrMsgDuplicateName     = "name already taken"
	ErrMsgMarketClosed      = "market is closed for predictions"
	ErrMsgAlreadyResolved   = "market already resolved"
	ErrMsgCapacity          = "league is full"
	ErrMsgDataInvalid       = "invalid data"
	ErrMsgNotMonday         = "week start must be a Monday at 00:00 UTC"
	ErrMsgStorageTimeout    = "storage timeout"
	ErrMsgNotLeagueMember   = "not a member of this league"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgRateLimited       = "too many requests"
	ErrMsgTxClosed          = "tx is closed"
	ErrMsgFeedUnavailable   = "market feed unavailable"
	ErrMsgInvalidConfidence = "confidence must be between 1 and 100"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrUserNotFound   = newKindError(ErrMsgUserNotFound, ErrNotFound)
	ErrMarketNotFound = newKindError(ErrMsgMarketNotFound, ErrNotFound)
	ErrLeagueNotFound = newKindError(ErrMsgLeagueNotFound, ErrNotFound)

	ErrDuplicateName   = errors.New(ErrMsgDuplicateName)
	ErrMarketClosed    = errors.New(ErrMsgMarketClosed)
	ErrAlreadyResolved = errors.New(ErrMsgAlreadyResolved)
	ErrCapacity        = errors.New(ErrMsgCapacity)
	ErrDataInvalid     = errors.New(ErrMsgDataInvalid)
	ErrStorageTimeout  = errors.New(ErrMsgStorageTimeout)
	ErrNotLeagueMember = errors.New(ErrMsgNotLeagueMember)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrRateLimited     = errors.New(ErrMsgRateLimited)

	ErrNotMonday         = newKindError(ErrMsgNotMonday, ErrDataInvalid)
	ErrInvalidConfidence = newKindError(ErrMsgInvalidConfidence, ErrInvalidInput)
)

// kindError is a specific error that also matches a broader kind with errors.Is.
type kindError struct {
	msg  string
	kind error
}

func newKindError(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// Stable error codes carried over the HTTP API.
const (
	CodeNotFound        = "not_found"
	CodeUserNotFound    = "user_not_found"
	CodeMarketNotFound  = "market_not_found"
	CodeLeagueNotFound  = "league_not_found"
	CodeDuplicateName   = "duplicate_name"
	CodeMarketClosed    = "market_closed"
	CodeAlreadyResolved = "already_resolved"
	CodeCapacity        = "capacity"
	CodeDataInvalid     = "data_invalid"
	CodeStorageTimeout  = "storage_timeout"
	CodeNotMember       = "not_member"
	CodeInvalidInput    = "invalid_input"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal"
)

// Specific kinds come before the broad kind they also match.
var codeTable = []struct {
	code string
	err  error
}{
	{CodeUserNotFound, ErrUserNotFound},
	{CodeMarketNotFound, ErrMarketNotFound},
	{CodeLeagueNotFound, ErrLeagueNotFound},
	{CodeNotFound, ErrNotFound},
	{CodeDuplicateName, ErrDuplicateName},
	{CodeMarketClosed, ErrMarketClosed},
	{CodeAlreadyResolved, ErrAlreadyResolved},
	{CodeCapacity, ErrCapacity},
	{CodeDataInvalid, ErrDataInvalid},
	{CodeStorageTimeout, ErrStorageTimeout},
	{CodeNotMember, ErrNotLeagueMember},
	{CodeInvalidInput, ErrInvalidInput},
	{CodeRateLimited, ErrRateLimited},
}

// ErrorCode returns the stable code for err, or CodeInternal.
func ErrorCode(err error) string {
	for _, entry := range codeTable {
		if errors.Is(err, entry.err) {
			return entry.code
		}
	}
	return CodeInternal
}

// ErrorFromCode returns the sentinel error for code, or nil if the code is unknown.
func ErrorFromCode(code string) error {
	for _, entry := range codeTable {
		if entry.code == code {
			return entry.err
		}
	}
	return nil
}
