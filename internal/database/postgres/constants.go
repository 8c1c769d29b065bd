package postgres

// =============================================================================
// PostgreSQL Error Codes
// =============================================================================

const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeQueryCanceled is raised when statement_timeout fires
	PgErrorCodeQueryCanceled = "57014"

	// PgErrorCodeCheckViolation is raised by CHECK constraints (e.g. week_start on a Monday)
	PgErrorCodeCheckViolation = "23514"

	// PgErrorCodeForeignKeyViolation is raised when a referenced user, market or league is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// =============================================================================
// User SQL
// =============================================================================

const (
	userColumns = `user_id, platform, display_name, total_points, weekly_points,
		predictions_made, predictions_correct, streak, created_at, updated_at`

	// SQLUpsertUser creates a user or refreshes the display name
	SQLUpsertUser = `
		INSERT INTO users (user_id, platform, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = CASE WHEN EXCLUDED.display_name <> '' THEN EXCLUDED.display_name ELSE users.display_name END,
		    updated_at = NOW()
		RETURNING (xmax = 0) AS inserted, ` + userColumns

	SQLGetUser = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	// SQLResetWeeklyPoints zeroes every user's weekly counter
	SQLResetWeeklyPoints = `UPDATE users SET weekly_points = 0, updated_at = NOW() WHERE weekly_points <> 0`

	SQLIncrementPredictionsMade = `
		UPDATE users SET predictions_made = predictions_made + 1, updated_at = NOW()
		WHERE user_id = $1
		RETURNING predictions_made`

	// SQLApplyUserScore adds one scored prediction to the user's aggregates
	SQLApplyUserScore = `
		UPDATE users
		SET total_points = total_points + $2::INTEGER,
		    weekly_points = weekly_points + CASE WHEN $3::BOOLEAN THEN $2::INTEGER ELSE 0 END,
		    predictions_correct = predictions_correct + CASE WHEN $4::BOOLEAN THEN 1 ELSE 0 END,
		    streak = $5,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns
)

// =============================================================================
// League SQL
// =============================================================================

const (
	leagueColumns = `l.league_id, l.name, l.name_key, COALESCE(l.creator_id, ''), l.is_active,
		l.max_members, l.created_at,
		(SELECT COUNT(*) FROM league_members lm WHERE lm.league_id = l.league_id)`

	SQLInsertLeague = `
		INSERT INTO leagues (name, name_key, creator_id, is_active, max_members)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING league_id, created_at`

	SQLGetLeagueByID      = `SELECT ` + leagueColumns + ` FROM leagues l WHERE l.league_id = $1`
	SQLGetLeagueByNameKey = `SELECT ` + leagueColumns + ` FROM leagues l WHERE l.name_key = $1`

	// SQLLockLeague serializes joins on one league so capacity checks are exact
	SQLLockLeague = `SELECT is_active, max_members FROM leagues WHERE league_id = $1 FOR UPDATE`

	SQLInsertMember = `
		INSERT INTO league_members (league_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (league_id, user_id) DO NOTHING`

	SQLIsMember     = `SELECT EXISTS (SELECT 1 FROM league_members WHERE league_id = $1 AND user_id = $2)`
	SQLCountMembers = `SELECT COUNT(*) FROM league_members WHERE league_id = $1`

	SQLListUserLeagues = `
		SELECT ` + leagueColumns + `
		FROM leagues l
		JOIN league_members m ON m.league_id = l.league_id
		WHERE m.user_id = $1
		ORDER BY l.league_id`
)

// =============================================================================
// Market SQL
// =============================================================================

const (
	marketColumns = `market_id, title, category, close_time, week_start, resolution, resolved_at,
		yes_price::TEXT, no_price::TEXT, volume::TEXT, source, created_at, updated_at`

	// SQLUpsertMarket refreshes display fields but never week_start or resolution
	SQLUpsertMarket = `
		INSERT INTO markets (market_id, title, category, close_time, week_start, yes_price, no_price, volume, source)
		VALUES ($1, $2, $3, $4, $5::DATE, $6::NUMERIC, $7::NUMERIC, $8::NUMERIC, $9)
		ON CONFLICT (market_id) DO UPDATE
		SET title = EXCLUDED.title,
		    category = EXCLUDED.category,
		    close_time = EXCLUDED.close_time,
		    yes_price = EXCLUDED.yes_price,
		    no_price = EXCLUDED.no_price,
		    volume = EXCLUDED.volume,
		    source = EXCLUDED.source,
		    updated_at = NOW()`

	SQLGetMarket          = `SELECT ` + marketColumns + ` FROM markets WHERE market_id = $1`
	SQLGetMarketForUpdate = `SELECT ` + marketColumns + ` FROM markets WHERE market_id = $1 FOR UPDATE`

	// SQLLockMarketForShare blocks resolution of the market while a prediction is written
	SQLLockMarketForShare = `SELECT close_time, resolution IS NOT NULL FROM markets WHERE market_id = $1 FOR SHARE`

	SQLGetCohort = `
		SELECT ` + marketColumns + `
		FROM markets
		WHERE week_start = $1::DATE AND close_time > $2
		ORDER BY close_time ASC, market_id ASC`

	SQLListUnresolvedClosed = `
		SELECT ` + marketColumns + `
		FROM markets
		WHERE resolution IS NULL AND close_time <= $1
		ORDER BY close_time ASC
		LIMIT $2`

	SQLMarkResolved = `
		UPDATE markets
		SET resolution = $2, resolved_at = $3, updated_at = NOW()
		WHERE market_id = $1 AND resolution IS NULL`
)

// =============================================================================
// Prediction SQL
// =============================================================================

const (
	predictionColumns = `prediction_id, user_id, market_id, league_id, choice, confidence,
		odds_at_prediction::TEXT, is_contrarian, is_early_bird, points_earned, is_correct,
		scored_at, created_at, updated_at`

	// SQLUpsertPrediction keeps one row per (user, market, league); points_earned is never touched
	SQLUpsertPrediction = `
		INSERT INTO predictions (user_id, market_id, league_id, choice, confidence,
			odds_at_prediction, is_contrarian, is_early_bird, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::NUMERIC, $7, $8, $9, $9)
		ON CONFLICT (user_id, market_id, league_id) DO UPDATE
		SET choice = EXCLUDED.choice,
		    confidence = EXCLUDED.confidence,
		    odds_at_prediction = EXCLUDED.odds_at_prediction,
		    is_contrarian = EXCLUDED.is_contrarian,
		    is_early_bird = EXCLUDED.is_early_bird,
		    updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted, prediction_id, created_at, updated_at`

	SQLGetPredictionsForUpdate = `
		SELECT ` + predictionColumns + `
		FROM predictions
		WHERE market_id = $1
		ORDER BY user_id, prediction_id
		FOR UPDATE`

	SQLGetRecentOutcomes = `
		SELECT is_correct
		FROM predictions
		WHERE user_id = $1 AND scored_at IS NOT NULL
		ORDER BY scored_at DESC, prediction_id DESC
		LIMIT $2 OFFSET $3`

	// SQLScorePrediction is write-once: a scored row is left untouched
	SQLScorePrediction = `
		UPDATE predictions
		SET points_earned = $2, is_correct = $3, scored_at = $4, updated_at = $4
		WHERE prediction_id = $1 AND scored_at IS NULL`

	// SQLGetUserPredictions returns the most recently updated choice per market
	SQLGetUserPredictions = `
		SELECT DISTINCT ON (market_id) market_id, choice
		FROM predictions
		WHERE user_id = $1 AND market_id = ANY($2) AND ($3::BIGINT IS NULL OR league_id = $3)
		ORDER BY market_id, updated_at DESC`

	SQLGetRecentPredictions = `
		SELECT p.market_id, m.title, p.league_id, p.choice, p.is_correct, p.scored_at,
		       p.points_earned, p.created_at
		FROM predictions p
		JOIN markets m ON m.market_id = p.market_id
		WHERE p.user_id = $1
		ORDER BY p.updated_at DESC, p.prediction_id DESC
		LIMIT $2`
)

// =============================================================================
// Weekly Score / Achievement SQL
// =============================================================================

const (
	SQLAddWeeklyScore = `
		INSERT INTO weekly_scores (user_id, league_id, week_start, score)
		VALUES ($1, $2, $3::DATE, $4)
		ON CONFLICT (user_id, league_id, week_start) DO UPDATE
		SET score = weekly_scores.score + EXCLUDED.score,
		    updated_at = NOW()`

	SQLAwardAchievement = `
		INSERT INTO user_achievements (user_id, achievement_key, awarded_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_key) DO NOTHING`

	SQLGetAchievements = `
		SELECT achievement_key, awarded_at
		FROM user_achievements
		WHERE user_id = $1
		ORDER BY awarded_at, achievement_key`
)

// =============================================================================
// Leaderboard / Stats SQL
// =============================================================================

const (
	// SQLGlobalLeaderboard ranks every user on lifetime counters
	SQLGlobalLeaderboard = `
		SELECT user_id, display_name, total_points, predictions_made, predictions_correct
		FROM users
		ORDER BY total_points DESC, predictions_correct DESC, created_at ASC, user_id ASC
		LIMIT $1`

	// SQLLeagueLeaderboard ranks members on their predictions inside one league
	SQLLeagueLeaderboard = `
		SELECT u.user_id, u.display_name,
		       COALESCE(SUM(p.points_earned), 0) AS points,
		       COUNT(p.prediction_id) AS made,
		       COUNT(p.prediction_id) FILTER (WHERE p.is_correct) AS correct
		FROM league_members lm
		JOIN users u ON u.user_id = lm.user_id
		LEFT JOIN predictions p ON p.user_id = lm.user_id AND p.league_id = lm.league_id
		WHERE lm.league_id = $1
		GROUP BY u.user_id, u.display_name, u.created_at
		ORDER BY points DESC, correct DESC, u.created_at ASC, u.user_id ASC
		LIMIT $2`

	// SQLWeeklyLeaderboard ranks users on one week's scores; a NULL league sums all leagues
	SQLWeeklyLeaderboard = `
		WITH scores AS (
			SELECT ws.user_id, SUM(ws.score) AS points
			FROM weekly_scores ws
			WHERE ws.week_start = $1::DATE AND ($2::BIGINT IS NULL OR ws.league_id = $2)
			GROUP BY ws.user_id
		), counts AS (
			SELECT p.user_id,
			       COUNT(*) AS made,
			       COUNT(*) FILTER (WHERE p.is_correct) AS correct
			FROM predictions p
			JOIN markets m ON m.market_id = p.market_id
			WHERE m.week_start = $1::DATE AND ($2::BIGINT IS NULL OR p.league_id = $2)
			GROUP BY p.user_id
		)
		SELECT u.user_id, u.display_name, COALESCE(s.points, 0), COALESCE(c.made, 0), COALESCE(c.correct, 0)
		FROM users u
		LEFT JOIN scores s ON s.user_id = u.user_id
		LEFT JOIN counts c ON c.user_id = u.user_id
		WHERE s.user_id IS NOT NULL OR c.user_id IS NOT NULL
		ORDER BY COALESCE(s.points, 0) DESC, COALESCE(c.correct, 0) DESC, u.created_at ASC, u.user_id ASC
		LIMIT $3`

	SQLWeekPoints = `
		SELECT COALESCE(SUM(score), 0) FROM weekly_scores
		WHERE user_id = $1 AND week_start = $2::DATE`

	SQLWeekCounts = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE p.is_correct)
		FROM predictions p
		JOIN markets m ON m.market_id = p.market_id
		WHERE p.user_id = $1 AND m.week_start = $2::DATE`

	SQLCountUserLeagues = `SELECT COUNT(*) FROM league_members WHERE user_id = $1`

	SQLSystemStatus = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM predictions),
			(SELECT COUNT(*) FROM markets WHERE resolution IS NULL AND close_time > $1),
			(SELECT COUNT(*) FROM markets WHERE resolution IS NOT NULL),
			(SELECT COUNT(*) FROM leagues WHERE is_active)`
)

// =============================================================================
// Event Log SQL
// =============================================================================

const (
	SQLInsertEvent = `
		INSERT INTO event_log (event_type, user_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	// SQLGetEvents filters on optional arguments; an empty string or NULL matches all
	SQLGetEvents = `
		SELECT id, event_type, user_id, payload, metadata, created_at
		FROM event_log
		WHERE ($1 = '' OR event_type = $1)
		  AND ($2 = '' OR user_id = $2)
		  AND ($3::TIMESTAMPTZ IS NULL OR created_at >= $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	SQLDeleteEventsBefore = `DELETE FROM event_log WHERE created_at < $1`
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"

	ErrMsgFailedToUpsertUser       = "failed to upsert user"
	ErrMsgFailedToGetUser          = "failed to get user"
	ErrMsgFailedToResetWeekly      = "failed to reset weekly points"
	ErrMsgFailedToIncrementMade    = "failed to increment predictions made"
	ErrMsgFailedToApplyUserScore   = "failed to apply user score"
	ErrMsgFailedToJoinDefault      = "failed to join default league"
	ErrMsgFailedToInsertLeague     = "failed to insert league"
	ErrMsgFailedToGetLeague        = "failed to get league"
	ErrMsgFailedToLockLeague       = "failed to lock league"
	ErrMsgFailedToInsertMember     = "failed to insert league member"
	ErrMsgFailedToCheckMembership  = "failed to check membership"
	ErrMsgFailedToCountMembers     = "failed to count league members"
	ErrMsgFailedToListLeagues      = "failed to list user leagues"
	ErrMsgFailedToUpsertMarket     = "failed to upsert market"
	ErrMsgFailedToGetMarket        = "failed to get market"
	ErrMsgFailedToGetCohort        = "failed to get cohort"
	ErrMsgFailedToListMarkets      = "failed to list unresolved markets"
	ErrMsgFailedToResolveMarket    = "failed to mark market resolved"
	ErrMsgFailedToLockMarket       = "failed to lock market"
	ErrMsgFailedToUpsertPred       = "failed to upsert prediction"
	ErrMsgFailedToGetPredictions   = "failed to get predictions"
	ErrMsgFailedToGetOutcomes      = "failed to get recent outcomes"
	ErrMsgFailedToScorePrediction  = "failed to score prediction"
	ErrMsgFailedToAddWeeklyScore   = "failed to add weekly score"
	ErrMsgFailedToAwardAchievement = "failed to award achievement"
	ErrMsgFailedToGetAchievements  = "failed to get achievements"
	ErrMsgFailedToGetLeaderboard   = "failed to get leaderboard"
	ErrMsgFailedToGetWeekSummary   = "failed to get week summary"
	ErrMsgFailedToGetStatus        = "failed to get system status"
	ErrMsgFailedToScanRow          = "failed to scan row"
	ErrMsgFailedToParseDecimal     = "failed to parse decimal"
	ErrMsgFailedToLogEvent         = "failed to log event"
	ErrMsgFailedToGetEvents        = "failed to get events"
	ErrMsgFailedToCleanupEvents    = "failed to clean up events"
)
