package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// ValidationErrorResponse is the error body of a request that failed validation
type ValidationErrorResponse = domain.APIError

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
// Example usage:
//
//	var req domain.CreateLeagueRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpCreateLeague); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, op string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogErrDecodeRequest, "op", op, "error", err)
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Info(LogMsgInvalidRequest, "op", op, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Code:   domain.CodeInvalidInput,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetQueryParam retrieves a required query parameter. If ok is false the
// error response has been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return "", false
	}
	return value, true
}

// queryInt64 parses an optional positive integer parameter, falling back to def
func queryInt64(r *http.Request, w http.ResponseWriter, name string, def int64) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		respondError(w, http.StatusBadRequest, domain.CodeInvalidInput, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return v, true
}

// leagueAndLimit reads the league_id and limit parameters of leaderboard queries
func leagueAndLimit(r *http.Request, w http.ResponseWriter) (int64, int, bool) {
	leagueID, ok := queryInt64(r, w, "league_id", domain.DefaultLeagueID)
	if !ok {
		return 0, 0, false
	}
	limit, ok := queryInt64(r, w, "limit", domain.DefaultLeaderboardLimit)
	if !ok {
		return 0, 0, false
	}
	return leagueID, int(min(limit, domain.MaxLeaderboardLimit)), true
}
