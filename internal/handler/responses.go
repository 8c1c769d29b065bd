package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogErrEncodeResponse, "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogErrWriteResponse, "error", err)
	}
}

// respondError sends a JSON error body carrying a stable code
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, domain.APIError{Error: message, Code: code})
}

// statusByCode maps error codes to HTTP statuses
var statusByCode = map[string]int{
	domain.CodeNotFound:        http.StatusNotFound,
	domain.CodeUserNotFound:    http.StatusNotFound,
	domain.CodeMarketNotFound:  http.StatusNotFound,
	domain.CodeLeagueNotFound:  http.StatusNotFound,
	domain.CodeDuplicateName:   http.StatusConflict,
	domain.CodeMarketClosed:    http.StatusConflict,
	domain.CodeAlreadyResolved: http.StatusConflict,
	domain.CodeCapacity:        http.StatusConflict,
	domain.CodeDataInvalid:     http.StatusBadRequest,
	domain.CodeInvalidInput:    http.StatusBadRequest,
	domain.CodeNotMember:       http.StatusForbidden,
	domain.CodeRateLimited:     http.StatusTooManyRequests,
	domain.CodeStorageTimeout:  http.StatusServiceUnavailable,
}

// respondServiceError maps a service error to its status and code. Internal
// errors are logged with detail and answered with a generic message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())
	code := domain.ErrorCode(err)
	status, ok := statusByCode[code]
	if !ok {
		log.Error(op+" failed", "error", err)
		respondError(w, http.StatusInternalServerError, domain.CodeInternal, ErrMsgInternal)
		return
	}
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Info(op+" rejected", "error", err, "code", code)
	}
	respondError(w, status, code, err.Error())
}
