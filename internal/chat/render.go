package chat

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

const closeTimeLayout = "Mon Jan 2 15:04 MST"

var hundred = decimal.NewFromInt(100)

var medals = []string{"🥇", "🥈", "🥉"}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-1]) + "…"
}

func percent(p decimal.Decimal) string {
	return p.Mul(hundred).Round(0).String() + "%"
}

func yesNo(choice bool) string {
	if choice {
		return "YES"
	}
	return "NO"
}

func leagueLabel(l *domain.League) string {
	if l == nil {
		return domain.DefaultLeagueName
	}
	return l.Name
}

func mainMenu() [][]Button {
	return [][]Button{
		{{Label: LabelViewMarkets, Payload: PayloadMarkets}},
		{{Label: LabelLeaderboard, Payload: PayloadLeaderboard}, {Label: LabelMyStats, Payload: PayloadMyStats}},
	}
}

func renderWelcome(displayName string) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Welcome to the Prediction League, %s!\n\n", displayName)
	b.WriteString("Every week you get a fresh set of real prediction markets.\n")
	b.WriteString("Call YES or NO before they close and earn points:\n")
	b.WriteString("• 10 points for a correct call\n")
	b.WriteString("• +15 for a correct call against the crowd\n")
	b.WriteString("• +3 for predicting in the first 24 hours\n")
	b.WriteString("• a growing bonus once you hit 3 correct in a row\n\n")
	b.WriteString("Compete globally or create a private league with friends.")
	return Reply{Text: b.String(), Buttons: mainMenu()}
}

func renderHelp() Reply {
	text := strings.Join([]string{
		"🤖 Prediction League commands",
		"",
		"/markets [league] - this week's markets",
		"/leaderboard [league] - all-time standings",
		"/weekly [league] - this week's standings",
		"/mystats - your points, accuracy and recent calls",
		"/leagues - leagues you belong to",
		"/create <name> - start a private league",
		"/join <name> - join a league",
		"/status - bot status",
	}, "\n")
	return Reply{Text: text, Buttons: mainMenu()}
}

// renderMarkets lists the cohort. Open markets get YES/NO buttons that carry
// the league id so the submission lands in the league the user is viewing.
func renderMarkets(log *slog.Logger, league *domain.League, markets []domain.Market, picks map[string]bool, now time.Time) Reply {
	if len(markets) == 0 {
		return Reply{Text: MsgNoMarkets, Buttons: [][]Button{{{Label: LabelRefresh, Payload: PayloadRefresh}}}}
	}

	leagueID := domain.DefaultLeagueID
	if league != nil {
		leagueID = league.ID
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 This week's markets (%s)\n", leagueLabel(league))

	var buttons [][]Button
	shown := 0
	for _, m := range markets {
		if shown == MaxMarketsShown {
			break
		}
		shown++

		fmt.Fprintf(&b, "\n%d. %s\n", shown, truncate(m.Title, MaxTitleRunes))
		fmt.Fprintf(&b, "   YES %s | NO %s\n", percent(m.YesPrice), percent(m.NoPrice))

		switch {
		case m.IsResolved():
			fmt.Fprintf(&b, "   Resolved: %s\n", yesNo(*m.Resolution))
		case !m.IsOpen(now):
			b.WriteString("   Closed, awaiting result\n")
		default:
			fmt.Fprintf(&b, "   Closes %s\n", m.CloseTime.UTC().Format(closeTimeLayout))
		}
		if choice, ok := picks[m.ID]; ok {
			fmt.Fprintf(&b, "   ✅ Your pick: %s\n", yesNo(choice))
		}

		if !m.IsOpen(now) {
			continue
		}
		row := make([]Button, 0, 2)
		for _, choice := range []bool{true, false} {
			payload := PredictPayload(leagueID, choice, m.ID)
			if len(payload) > MaxPayloadBytes {
				log.Warn(LogWarnPayloadTooLong, "market_id", m.ID, "bytes", len(payload))
				continue
			}
			label := fmt.Sprintf("✅ YES #%d", shown)
			if !choice {
				label = fmt.Sprintf("❌ NO #%d", shown)
			}
			row = append(row, Button{Label: label, Payload: payload})
		}
		if len(row) > 0 {
			buttons = append(buttons, row)
		}
	}

	refresh := PayloadRefresh
	board := PayloadLeaderboard
	if leagueID != domain.DefaultLeagueID {
		refresh = MarketsPayload(leagueID)
		board = LeaderboardPayload(leagueID)
	}
	buttons = append(buttons, []Button{
		{Label: LabelRefresh, Payload: refresh},
		{Label: LabelLeaderboard, Payload: board},
		{Label: LabelMyStats, Payload: PayloadMyStats},
	})

	return Reply{Text: strings.TrimRight(b.String(), "\n"), Buttons: buttons}
}

func renderLeaderboard(title string, league *domain.League, lb *domain.Leaderboard) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 %s (%s)\n\n", title, leagueLabel(league))

	if lb == nil || len(lb.Entries) == 0 {
		b.WriteString(MsgNoLeaderboard)
	}
	if lb != nil {
		for _, e := range lb.Entries {
			prefix := fmt.Sprintf("%d.", e.Rank)
			if e.Rank >= 1 && e.Rank <= len(medals) {
				prefix = medals[e.Rank-1]
			}
			fmt.Fprintf(&b, "%s %s - %d pts (%d/%d, %.1f%%)\n",
				prefix, e.DisplayName, e.TotalPoints, e.PredictionsCorrect, e.PredictionsMade, e.Accuracy)
		}
	}

	markets := PayloadMarkets
	if league != nil && !league.IsDefault() {
		markets = MarketsPayload(league.ID)
	}
	return Reply{
		Text: strings.TrimRight(b.String(), "\n"),
		Buttons: [][]Button{{
			{Label: LabelViewMarkets, Payload: markets},
			{Label: LabelMyStats, Payload: PayloadMyStats},
		}},
	}
}

func renderStats(s *domain.UserStats) Reply {
	var b strings.Builder
	fmt.Fprintf(&b, "📈 Stats for %s\n\n", s.DisplayName)
	fmt.Fprintf(&b, "Total points: %d\n", s.TotalPoints)
	fmt.Fprintf(&b, "Predictions: %d (%d correct)\n", s.PredictionsMade, s.PredictionsCorrect)
	fmt.Fprintf(&b, "Accuracy: %.1f%%\n", s.Accuracy)
	fmt.Fprintf(&b, "Current streak: %d\n", s.Streak)
	fmt.Fprintf(&b, "Leagues: %d\n", s.LeagueCount)
	fmt.Fprintf(&b, "This week: %d pts from %d predictions\n", s.CurrentWeek.Points, s.CurrentWeek.PredictionsMade)

	if len(s.Achievements) > 0 {
		names := make([]string, 0, len(s.Achievements))
		for _, a := range s.Achievements {
			names = append(names, a.Name)
		}
		fmt.Fprintf(&b, "\n🏅 %s\n", strings.Join(names, ", "))
	}

	b.WriteString("\nRecent predictions:\n")
	if len(s.Recent) == 0 {
		b.WriteString(MsgNoRecent)
	}
	for _, p := range s.Recent {
		icon := "⏳"
		switch p.Status {
		case domain.PredictionStatusCorrect:
			icon = "✅"
		case domain.PredictionStatusIncorrect:
			icon = "❌"
		}
		fmt.Fprintf(&b, "%s %s: %s", icon, truncate(p.MarketTitle, MaxRecentTitle), yesNo(p.Choice))
		if p.Status != domain.PredictionStatusPending {
			fmt.Fprintf(&b, " (%d pts)", p.PointsEarned)
		}
		b.WriteString("\n")
	}

	return Reply{Text: strings.TrimRight(b.String(), "\n"), Buttons: mainMenu()}
}

func renderLeagues(leagues []domain.League) Reply {
	if len(leagues) == 0 {
		return Reply{Text: MsgNoLeagues}
	}
	var b strings.Builder
	b.WriteString("🏟 Your leagues\n\n")
	var buttons [][]Button
	for _, l := range leagues {
		fmt.Fprintf(&b, "• %s (%d members)\n", l.Name, l.MemberCount)
		if l.IsDefault() {
			continue
		}
		buttons = append(buttons, []Button{
			{Label: "📊 " + truncate(l.Name, 20), Payload: MarketsPayload(l.ID)},
			{Label: "🏆 " + truncate(l.Name, 20), Payload: LeaderboardPayload(l.ID)},
		})
	}
	return Reply{Text: strings.TrimRight(b.String(), "\n"), Buttons: buttons}
}

func renderStatus(s *domain.SystemStatus) Reply {
	text := strings.Join([]string{
		"🤖 Prediction League status",
		"",
		fmt.Sprintf("Week of %s", s.WeekStart.Format(domain.WeekDateLayout)),
		fmt.Sprintf("Players: %d", s.Users),
		fmt.Sprintf("Predictions: %d", s.Predictions),
		fmt.Sprintf("Open markets: %d", s.OpenMarkets),
		fmt.Sprintf("Resolved markets: %d", s.ResolvedMarkets),
		fmt.Sprintf("Leagues: %d", s.Leagues),
	}, "\n")
	return Reply{Text: text}
}
