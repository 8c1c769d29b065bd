package prediction

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPredictionStored = "Prediction stored"
	LogMsgSubmitRejected   = "Prediction rejected"
	LogWarnFailedToPublish = "Failed to publish prediction event"
	LogErrFailedToUpsert   = "Failed to store prediction"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgMissingUser   = "user id required"
	ErrMsgMissingMarket = "market id required"
)
