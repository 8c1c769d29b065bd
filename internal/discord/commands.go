package discord

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
)

// CommandRegistry holds the slash command definitions. Every command is
// answered by the chat dispatcher, so the registry only carries what Discord
// needs to show them.
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
}

// NewCommandRegistry creates a registry with the prediction league commands
func NewCommandRegistry() *CommandRegistry {
	r := &CommandRegistry{Commands: make(map[string]*discordgo.ApplicationCommand)}

	leagueOpt := []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        OptionLeague,
		Description: "League name (default: Global League)",
	}}
	nameOpt := func(desc string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionName,
			Description: desc,
			Required:    true,
			MaxLength:   50,
		}}
	}

	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandStart, Description: "Get started with the prediction league"})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandHelp, Description: "How predictions are scored"})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandMarkets, Description: "This week's markets", Options: leagueOpt})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandLeaderboard, Description: "All-time leaderboard", Options: leagueOpt})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandWeekly, Description: "This week's leaderboard", Options: leagueOpt})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandMyStats, Description: "Your points, accuracy and streak"})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandLeagues, Description: "Leagues you belong to"})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandCreate, Description: "Create a private league", Options: nameOpt("League name")})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandJoin, Description: "Join a league", Options: nameOpt("League name")})
	r.Register(&discordgo.ApplicationCommand{Name: chat.CommandStatus, Description: "League-wide activity"})
	return r
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand) {
	r.Commands[cmd.Name] = cmd
}

// Definitions returns the commands sorted by name
func (r *CommandRegistry) Definitions() []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// RegisterCommands registers/updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info(LogMsgCheckingCommands)

	desired := registry.Definitions()
	if !forceUpdate {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFetchCommands, err)
		}
		if commandsEqual(existing, desired) {
			slog.Info(LogMsgCommandsUnchanged, "count", len(existing))
			return nil
		}
		slog.Info(LogMsgCommandsChanged, "existing", len(existing), "desired", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpdateCommands, err)
	}
	slog.Info(LogMsgCommandsUpdated, "count", len(desired), "forced", forceUpdate)
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}
	for _, want := range desired {
		got, ok := existingMap[want.Name]
		if !ok || !commandEqual(got, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if a.MaxLength != b.MaxLength || len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}
