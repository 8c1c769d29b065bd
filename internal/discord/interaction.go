package discord

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// ToInteraction normalizes a Discord interaction. Only slash commands and
// button presses are supported; ok is false for everything else.
func ToInteraction(i *discordgo.InteractionCreate) (chat.Interaction, bool) {
	user := interactionUser(i)
	if user == nil {
		return chat.Interaction{}, false
	}
	in := chat.Interaction{
		Platform:    domain.PlatformDiscord,
		UserID:      user.ID,
		DisplayName: displayName(i, user),
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		in.Kind = chat.KindCommand
		in.Command = data.Name
		for _, opt := range data.Options {
			if opt.Type == discordgo.ApplicationCommandOptionString {
				in.Args = append(in.Args, strings.Fields(opt.StringValue())...)
			}
		}
		return in, true
	case discordgo.InteractionMessageComponent:
		in.Kind = chat.KindButtonPress
		in.Payload = i.MessageComponentData().CustomID
		return in, true
	default:
		return chat.Interaction{}, false
	}
}

// interactionUser handles both guild (i.Member.User) and DM (i.User) contexts
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func displayName(i *discordgo.InteractionCreate, user *discordgo.User) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// Components converts reply buttons into action rows. Discord allows five
// rows of five buttons; when a reply has more rows, every row but the last is
// packed five to a row and the last (navigation) row is kept as is.
func Components(log *slog.Logger, rows [][]chat.Button) []discordgo.MessageComponent {
	if len(rows) == 0 {
		return []discordgo.MessageComponent{}
	}

	packed, dropped := rows, 0
	if needsPacking(rows) {
		packed, dropped = pack(rows)
	}

	out := make([]discordgo.MessageComponent, 0, len(packed))
	for i, row := range packed {
		if i >= MaxActionRows {
			dropped += len(row)
			continue
		}
		if len(row) > MaxButtonsPerRow {
			dropped += len(row) - MaxButtonsPerRow
			row = row[:MaxButtonsPerRow]
		}
		buttons := make([]discordgo.MessageComponent, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, discordgo.Button{
				Label:    clip(b.Label, MaxButtonLabel),
				Style:    discordgo.SecondaryButton,
				CustomID: b.Payload,
			})
		}
		out = append(out, discordgo.ActionsRow{Components: buttons})
	}
	if dropped > 0 {
		log.Warn(LogWarnButtonsDropped, "dropped", dropped)
	}
	return out
}

func needsPacking(rows [][]chat.Button) bool {
	if len(rows) > MaxActionRows {
		return true
	}
	for _, row := range rows {
		if len(row) > MaxButtonsPerRow {
			return true
		}
	}
	return false
}

func pack(rows [][]chat.Button) ([][]chat.Button, int) {
	last := rows[len(rows)-1]
	var flat []chat.Button
	for _, row := range rows[:len(rows)-1] {
		flat = append(flat, row...)
	}

	var out [][]chat.Button
	for len(flat) > 0 {
		n := min(MaxButtonsPerRow, len(flat))
		out = append(out, flat[:n])
		flat = flat[n:]
	}
	dropped := 0
	if len(out) >= MaxActionRows {
		for _, row := range out[MaxActionRows-1:] {
			dropped += len(row)
		}
		out = out[:MaxActionRows-1]
	}
	return append(out, last), dropped
}

// clip shortens s to at most n runes
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
