package domain

import "time"

// Cohort constants
const (
	DefaultCohortSize   = 10
	MaxCohortSize       = 50
	DefaultMarketTitleW = 80 // display width for titles in chat text
)

// Stats constants
const (
	RecentPredictionsLimit = 5
)

// Timeouts
const (
	DefaultQueryTimeout = 60 * time.Second
)
