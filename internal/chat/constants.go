package chat

// Command names, shared by every adapter
const (
	CommandStart       = "start"
	CommandHelp        = "help"
	CommandMarkets     = "markets"
	CommandLeaderboard = "leaderboard"
	CommandWeekly      = "weekly"
	CommandMyStats     = "mystats"
	CommandLeagues     = "leagues"
	CommandCreate      = "create"
	CommandJoin        = "join"
	CommandStatus      = "status"

	commandUnknown = "unknown"
)

// Button payloads. Parameterized payloads use a short prefix followed by
// colon-separated fields so they fit Telegram's 64 byte callback limit.
const (
	PayloadMarkets     = "markets"
	PayloadRefresh     = "refresh"
	PayloadLeaderboard = "leaderboard"
	PayloadMyStats     = "mystats"

	prefixPredict     = "p"
	prefixJoin        = "j"
	prefixMarkets     = "m"
	prefixLeaderboard = "lb"

	choiceYes = "y"
	choiceNo  = "n"

	// MaxPayloadBytes is the smallest button payload limit of the supported platforms
	MaxPayloadBytes = 64
)

// Display limits
const (
	MaxMarketsShown  = 10
	MaxTitleRunes    = 80
	MaxRecentTitle   = 40
	LeaderboardLimit = 10
)

// ============================================================================
// User-facing messages
// ============================================================================

const (
	MsgRateLimited       = "⏰ Please wait %s before trying again."
	MsgGenericError      = "❌ Something went wrong. Please try again later."
	MsgUnknownCommand    = "🤔 I don't know that command. Try /help."
	MsgUnknownButton     = "🤔 That button has expired. Try /markets."
	MsgMarketClosed      = "⏰ This market is closed for predictions."
	MsgAlreadyResolved   = "✅ This market has already been resolved."
	MsgMarketNotFound    = "❌ Market not found."
	MsgLeagueNotFound    = "❌ League not found."
	MsgUserNotFound      = "❌ You are not registered yet. Try /start."
	MsgNotMember         = "🔒 You're not a member of this league. Use /join <name> first."
	MsgDuplicateName     = "❌ A league with that name already exists."
	MsgLeagueFull        = "❌ That league is full."
	MsgInvalidInput      = "❌ %s"
	MsgStorageTimeout    = "⌛ The service is busy. Please try again in a moment."
	MsgCreateUsage       = "Usage: /create <league name>"
	MsgJoinUsage         = "Usage: /join <league name>"
	MsgNoMarkets         = "🔄 No markets are open this week yet. Try again shortly!"
	MsgAllPredicted      = "ℹ️ All open markets have a prediction from you. Tap again to change your pick."
	MsgNoLeaderboard     = "No predictions scored yet! Be the first to start predicting! 🎯"
	MsgNoRecent          = "No predictions made yet. Start with /markets! 🎯"
	MsgNoLeagues         = "You are only in the Global League. Create one with /create <name>."
	MsgPredictionStored  = "✅ Recorded %s on \"%s\""
	MsgLeagueCreated     = "🎉 League \"%s\" created! Friends can join with /join %s"
	MsgLeagueJoined      = "🤝 You joined \"%s\" (%d members)."
	MsgLeagueAlreadyIn   = "You're already a member of \"%s\"."
	MsgOutsideYourLeague = "📍 Your ranking: use /mystats to see your totals"
)

// Button labels
const (
	LabelViewMarkets = "📊 View Markets"
	LabelRefresh     = "🔄 Refresh"
	LabelLeaderboard = "🏆 Leaderboard"
	LabelMyStats     = "📈 My Stats"
	LabelJoin        = "🤝 Join %s"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgInteraction      = "Chat interaction"
	LogMsgRateLimited      = "Interaction rate limited"
	LogWarnLimiterFailed   = "Rate limiter unavailable, allowing interaction"
	LogWarnPayloadTooLong  = "Button payload exceeds platform limit, skipping button"
	LogErrInteractionError = "Interaction failed"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgEmptyPayload   = "empty payload"
	ErrMsgUnknownPayload = "unknown payload"
	ErrMsgBadLeagueID    = "invalid league id"
	ErrMsgBadChoice      = "invalid choice"
)
