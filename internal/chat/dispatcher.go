package chat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/metrics"
	"github.com/osse101/PredictionLeague_Go/internal/ratelimit"
)

// Dispatcher routes interactions to the core. It holds no per-user state;
// the league a user is looking at travels in button payloads.
type Dispatcher struct {
	core    Core
	limiter ratelimit.Limiter
	now     func() time.Time
}

// NewDispatcher creates a dispatcher. A nil limiter disables rate limiting.
func NewDispatcher(core Core, limiter ratelimit.Limiter) *Dispatcher {
	return &Dispatcher{core: core, limiter: limiter, now: time.Now}
}

// WithClock replaces the dispatcher's clock
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// Handle processes one interaction and always produces a reply
func (d *Dispatcher) Handle(ctx context.Context, in Interaction) Reply {
	if logger.GetRequestID(ctx) == "" {
		ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	}
	userID := domain.QualifiedUserID(in.Platform, in.UserID)
	ctx = logger.WithUserID(ctx, userID)
	log := logger.FromContext(ctx)

	if reply, limited := d.checkRate(ctx, in.Platform, userID); limited {
		return reply
	}

	user, err := d.core.RegisterUser(ctx, in.Platform, in.UserID, in.DisplayName)
	if err != nil {
		return d.errorReply(ctx, in, err)
	}

	var (
		reply Reply
		label string
	)
	if in.Kind == KindButtonPress {
		reply, label, err = d.handleButton(ctx, user, in.Payload)
		if err == nil {
			reply.Edit = true
		}
	} else {
		reply, label, err = d.handleCommand(ctx, user, in.Command, in.Args)
	}

	metrics.ChatInteractions.WithLabelValues(in.Platform, label).Inc()
	log.Debug(LogMsgInteraction, "kind", in.Kind, "command", label)

	if err != nil {
		if in.Kind == KindButtonPress && errors.Is(err, domain.ErrNotLeagueMember) {
			return notMemberReply(in.Payload)
		}
		return d.errorReply(ctx, in, err)
	}
	return reply
}

func (d *Dispatcher) checkRate(ctx context.Context, platform, userID string) (Reply, bool) {
	if d.limiter == nil {
		return Reply{}, false
	}
	decision, err := d.limiter.Allow(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogWarnLimiterFailed, "error", err)
		return Reply{}, false
	}
	if decision.Allowed {
		return Reply{}, false
	}

	metrics.RateLimited.WithLabelValues(platform).Inc()
	logger.FromContext(ctx).Info(LogMsgRateLimited, "retry_after", decision.RetryAfter)
	return Reply{Text: fmt.Sprintf(MsgRateLimited, waitText(decision.RetryAfter))}, true
}

func waitText(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs <= 1 {
		return "a second"
	}
	return fmt.Sprintf("%d seconds", secs)
}

func (d *Dispatcher) errorReply(ctx context.Context, in Interaction, err error) Reply {
	log := logger.FromContext(ctx)
	if isUserError(err) {
		log.Info(LogErrInteractionError, "error", err, "command", in.Command, "payload", in.Payload)
	} else {
		log.Error(LogErrInteractionError, "error", err, "command", in.Command, "payload", in.Payload)
	}
	return Reply{Text: friendlyError(err)}
}

// notMemberReply offers a join button when a prediction hits a league the
// user has not joined yet.
func notMemberReply(payload string) Reply {
	action, err := ParsePayload(payload)
	if err != nil || action.LeagueID <= 0 {
		return Reply{Text: MsgNotMember}
	}
	return Reply{
		Text:    MsgNotMember,
		Buttons: [][]Button{{{Label: fmt.Sprintf(LabelJoin, "league"), Payload: JoinPayload(action.LeagueID)}}},
	}
}

func (d *Dispatcher) handleCommand(ctx context.Context, user *domain.User, command string, args []string) (Reply, string, error) {
	command = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(command), "/"))
	// Telegram appends @botname in groups
	command, _, _ = strings.Cut(command, "@")
	arg := strings.TrimSpace(strings.Join(args, " "))

	switch command {
	case CommandStart:
		return renderWelcome(user.DisplayName), command, nil
	case CommandHelp:
		return renderHelp(), command, nil
	case CommandMarkets:
		league, err := d.leagueByName(ctx, arg)
		if err != nil {
			return Reply{}, command, err
		}
		r, err := d.markets(ctx, user, league)
		return r, command, err
	case CommandLeaderboard:
		league, err := d.leagueByName(ctx, arg)
		if err != nil {
			return Reply{}, command, err
		}
		r, err := d.leaderboard(ctx, league)
		return r, command, err
	case CommandWeekly:
		league, err := d.leagueByName(ctx, arg)
		if err != nil {
			return Reply{}, command, err
		}
		r, err := d.weekly(ctx, league)
		return r, command, err
	case CommandMyStats:
		r, err := d.myStats(ctx, user)
		return r, command, err
	case CommandLeagues:
		leagues, err := d.core.ListUserLeagues(ctx, user.ID)
		if err != nil {
			return Reply{}, command, err
		}
		return renderLeagues(leagues), command, nil
	case CommandCreate:
		if arg == "" {
			return Reply{Text: MsgCreateUsage}, command, nil
		}
		league, err := d.core.CreateLeague(ctx, arg, user.ID)
		if err != nil {
			return Reply{}, command, err
		}
		return Reply{
			Text:    fmt.Sprintf(MsgLeagueCreated, league.Name, league.Name),
			Buttons: [][]Button{{{Label: LabelViewMarkets, Payload: MarketsPayload(league.ID)}}},
		}, command, nil
	case CommandJoin:
		if arg == "" {
			return Reply{Text: MsgJoinUsage}, command, nil
		}
		r, err := d.join(ctx, user, domain.LeagueRef{Name: arg})
		return r, command, err
	case CommandStatus:
		status, err := d.core.GetSystemStatus(ctx)
		if err != nil {
			return Reply{}, command, err
		}
		return renderStatus(status), command, nil
	default:
		return Reply{Text: MsgUnknownCommand}, commandUnknown, nil
	}
}

func (d *Dispatcher) handleButton(ctx context.Context, user *domain.User, payload string) (Reply, string, error) {
	action, err := ParsePayload(payload)
	if err != nil {
		logger.FromContext(ctx).Debug(LogErrInteractionError, "error", err, "payload", payload)
		return Reply{Text: MsgUnknownButton}, commandUnknown, nil
	}

	var league *domain.League
	if action.LeagueID > 0 && action.LeagueID != domain.DefaultLeagueID && action.Name != ActionJoin {
		if league, err = d.core.GetLeague(ctx, domain.LeagueRef{ID: action.LeagueID}); err != nil {
			return Reply{}, action.Name, err
		}
	}

	var r Reply
	switch action.Name {
	case ActionMarkets, ActionRefresh:
		r, err = d.markets(ctx, user, league)
	case ActionLeaderboard:
		r, err = d.leaderboard(ctx, league)
	case ActionMyStats:
		r, err = d.myStats(ctx, user)
	case ActionJoin:
		r, err = d.join(ctx, user, domain.LeagueRef{ID: action.LeagueID})
	case ActionPredict:
		r, err = d.predict(ctx, user, league, action)
	}
	return r, action.Name, err
}

// leagueByName resolves an optional league argument; empty means the default league
func (d *Dispatcher) leagueByName(ctx context.Context, name string) (*domain.League, error) {
	if name == "" {
		return nil, nil
	}
	return d.core.GetLeague(ctx, domain.LeagueRef{Name: name})
}

func leagueIDOf(league *domain.League) int64 {
	if league == nil {
		return domain.DefaultLeagueID
	}
	return league.ID
}

func (d *Dispatcher) markets(ctx context.Context, user *domain.User, league *domain.League) (Reply, error) {
	markets, picks, err := d.loadMarkets(ctx, user, league)
	if err != nil {
		return Reply{}, err
	}
	return renderMarkets(logger.FromContext(ctx), league, markets, picks, d.now()), nil
}

func (d *Dispatcher) loadMarkets(ctx context.Context, user *domain.User, league *domain.League) ([]domain.Market, map[string]bool, error) {
	markets, err := d.core.GetCurrentCohort(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(markets) == 0 {
		return markets, map[string]bool{}, nil
	}
	ids := make([]string, len(markets))
	for i, m := range markets {
		ids[i] = m.ID
	}
	picks, err := d.core.GetUserLeaguePredictions(ctx, user.ID, leagueIDOf(league), ids)
	if err != nil {
		return nil, nil, err
	}
	return markets, picks, nil
}

func (d *Dispatcher) leaderboard(ctx context.Context, league *domain.League) (Reply, error) {
	lb, err := d.core.GetLeaderboard(ctx, leagueIDOf(league), LeaderboardLimit)
	if err != nil {
		return Reply{}, err
	}
	return renderLeaderboard("Leaderboard", league, lb), nil
}

func (d *Dispatcher) weekly(ctx context.Context, league *domain.League) (Reply, error) {
	lb, err := d.core.GetWeeklyLeaderboard(ctx, leagueIDOf(league), LeaderboardLimit)
	if err != nil {
		return Reply{}, err
	}
	return renderLeaderboard("This week", league, lb), nil
}

func (d *Dispatcher) myStats(ctx context.Context, user *domain.User) (Reply, error) {
	stats, err := d.core.GetUserStats(ctx, user.ID)
	if err != nil {
		return Reply{}, err
	}
	return renderStats(stats), nil
}

func (d *Dispatcher) join(ctx context.Context, user *domain.User, ref domain.LeagueRef) (Reply, error) {
	league, joined, err := d.core.JoinLeague(ctx, user.ID, ref)
	if err != nil {
		return Reply{}, err
	}
	text := fmt.Sprintf(MsgLeagueAlreadyIn, league.Name)
	if joined {
		text = fmt.Sprintf(MsgLeagueJoined, league.Name, league.MemberCount)
	}
	return Reply{
		Text:    text,
		Buttons: [][]Button{{{Label: LabelViewMarkets, Payload: MarketsPayload(league.ID)}}},
	}, nil
}

// predict records the pick and re-renders the markets view with a confirmation on top
func (d *Dispatcher) predict(ctx context.Context, user *domain.User, league *domain.League, action Action) (Reply, error) {
	p, err := d.core.SubmitPrediction(ctx, domain.SubmitPredictionRequest{
		UserID:   user.ID,
		MarketID: action.MarketID,
		LeagueID: leagueIDOf(league),
		Choice:   action.Choice,
	})
	if err != nil {
		return Reply{}, err
	}

	markets, picks, err := d.loadMarkets(ctx, user, league)
	if err != nil {
		return Reply{}, err
	}
	title := p.MarketID
	for _, m := range markets {
		if m.ID == p.MarketID {
			title = truncate(m.Title, MaxRecentTitle)
			break
		}
	}

	view := renderMarkets(logger.FromContext(ctx), league, markets, picks, d.now())
	view.Text = fmt.Sprintf(MsgPredictionStored, yesNo(p.Choice), title) + "\n\n" + view.Text
	return view, nil
}
