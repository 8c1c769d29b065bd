package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
)

func TestNewCommandRegistry_CoversChatCommands(t *testing.T) {
	r := NewCommandRegistry()

	want := []string{
		chat.CommandCreate, chat.CommandHelp, chat.CommandJoin, chat.CommandLeaderboard,
		chat.CommandLeagues, chat.CommandMarkets, chat.CommandMyStats, chat.CommandStart,
		chat.CommandStatus, chat.CommandWeekly,
	}
	defs := r.Definitions()
	require.Len(t, defs, len(want))
	for i, cmd := range defs {
		assert.Equal(t, want[i], cmd.Name)
		assert.NotEmpty(t, cmd.Description)
	}

	join := r.Commands[chat.CommandJoin]
	require.Len(t, join.Options, 1)
	assert.True(t, join.Options[0].Required)
}

func TestCommandsEqual(t *testing.T) {
	perm := int64(8)
	base := func() []*discordgo.ApplicationCommand {
		return []*discordgo.ApplicationCommand{
			{Name: "a", Description: "A"},
			{Name: "b", Description: "B", Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "x", Description: "X"},
			}},
		}
	}

	assert.True(t, commandsEqual(base(), base()))

	reordered := base()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	assert.True(t, commandsEqual(reordered, base()), "order does not matter")

	assert.False(t, commandsEqual(base()[:1], base()))

	changed := base()
	changed[0].Description = "changed"
	assert.False(t, commandsEqual(changed, base()))

	required := base()
	required[1].Options[0].Required = true
	assert.False(t, commandsEqual(required, base()))

	withPerm := base()
	withPerm[0].DefaultMemberPermissions = &perm
	assert.False(t, commandsEqual(withPerm, base()))

	maxLen := base()
	maxLen[1].Options[0].MaxLength = 50
	assert.False(t, commandsEqual(maxLen, base()))
}
