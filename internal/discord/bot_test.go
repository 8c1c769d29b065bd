package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeResponder struct {
	responded []discordgo.InteractionResponseType
	edits     []*discordgo.WebhookEdit
	followups []*discordgo.WebhookParams
	respondErr error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responded = append(f.responded, resp.Type)
	return f.respondErr
}

func (f *fakeResponder) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

type fakeHandler struct {
	got   []chat.Interaction
	reply chat.Reply
}

func (f *fakeHandler) Handle(_ context.Context, in chat.Interaction) chat.Reply {
	f.got = append(f.got, in)
	return f.reply
}

func commandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{Nick: "Ana", User: &discordgo.User{ID: "42", Username: "ana"}},
		Data:   discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
	}}
}

func buttonInteraction(customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		User: &discordgo.User{ID: "42", Username: "ana", GlobalName: "Ana G"},
		Data: discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func testBot(h Handler) *Bot {
	return &Bot{Handler: h, Stats: NewStats(), handleTimeout: DefaultHandleTimeout}
}

func TestToInteraction_Command(t *testing.T) {
	i := commandInteraction(chat.CommandMarkets, &discordgo.ApplicationCommandInteractionDataOption{
		Name:  OptionLeague,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: "Office Pool",
	})

	in, ok := ToInteraction(i)
	require.True(t, ok)
	assert.Equal(t, chat.Interaction{
		Kind:        chat.KindCommand,
		Platform:    domain.PlatformDiscord,
		UserID:      "42",
		DisplayName: "Ana",
		Command:     chat.CommandMarkets,
		Args:        []string{"Office", "Pool"},
	}, in)
}

func TestToInteraction_Button(t *testing.T) {
	in, ok := ToInteraction(buttonInteraction("p:1:y:KX"))
	require.True(t, ok)
	assert.Equal(t, chat.KindButtonPress, in.Kind)
	assert.Equal(t, "p:1:y:KX", in.Payload)
	assert.Equal(t, "Ana G", in.DisplayName)
}

func TestToInteraction_Unsupported(t *testing.T) {
	_, ok := ToInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionPing,
		User: &discordgo.User{ID: "1"},
	}})
	assert.False(t, ok)

	_, ok = ToInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
	}})
	assert.False(t, ok, "no user")
}

func TestComponents_KeepsSmallReplies(t *testing.T) {
	rows := [][]chat.Button{
		{{Label: "YES", Payload: "a"}, {Label: "NO", Payload: "b"}},
		{{Label: "Refresh", Payload: "refresh"}},
	}

	out := Components(discard, rows)

	require.Len(t, out, 2)
	first := out[0].(discordgo.ActionsRow)
	require.Len(t, first.Components, 2)
	assert.Equal(t, "a", first.Components[0].(discordgo.Button).CustomID)
}

func TestComponents_PacksMarketRows(t *testing.T) {
	var rows [][]chat.Button
	for n := 1; n <= 10; n++ {
		rows = append(rows, []chat.Button{
			{Label: fmt.Sprintf("YES #%d", n), Payload: fmt.Sprintf("y%d", n)},
			{Label: fmt.Sprintf("NO #%d", n), Payload: fmt.Sprintf("n%d", n)},
		})
	}
	rows = append(rows, []chat.Button{{Label: "Refresh", Payload: "refresh"}, {Label: "Board", Payload: "leaderboard"}})

	out := Components(discard, rows)

	require.Len(t, out, MaxActionRows)
	for _, c := range out[:4] {
		assert.Len(t, c.(discordgo.ActionsRow).Components, MaxButtonsPerRow)
	}
	nav := out[4].(discordgo.ActionsRow)
	assert.Equal(t, "refresh", nav.Components[0].(discordgo.Button).CustomID)
}

func TestComponents_DropsOverflow(t *testing.T) {
	var rows [][]chat.Button
	for n := 0; n < 15; n++ {
		rows = append(rows, []chat.Button{{Label: "Y", Payload: "y"}, {Label: "N", Payload: "n"}})
	}
	rows = append(rows, []chat.Button{{Label: "Refresh", Payload: "refresh"}})

	out := Components(discard, rows)

	require.Len(t, out, MaxActionRows)
	assert.Equal(t, "refresh", out[4].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 5))
	assert.Equal(t, "abcd…", clip("abcdefgh", 5))
	assert.Equal(t, MaxContentRunes, len([]rune(clip(strings.Repeat("é", 3000), MaxContentRunes))))
}

func TestHandleInteraction_CommandEditsDeferredResponse(t *testing.T) {
	h := &fakeHandler{reply: chat.Reply{Text: "hello", Buttons: [][]chat.Button{{{Label: "Go", Payload: "markets"}}}}}
	r := &fakeResponder{}
	b := testBot(h)

	b.HandleInteraction(context.Background(), r, commandInteraction(chat.CommandStart))

	assert.Equal(t, []discordgo.InteractionResponseType{discordgo.InteractionResponseDeferredChannelMessageWithSource}, r.responded)
	require.Len(t, r.edits, 1)
	assert.Equal(t, "hello", *r.edits[0].Content)
	assert.Len(t, *r.edits[0].Components, 1)
	assert.Empty(t, r.followups)

	n, last := b.Stats.Snapshot()
	assert.Equal(t, int64(1), n)
	assert.NotNil(t, last)
}

func TestHandleInteraction_ButtonEdit(t *testing.T) {
	h := &fakeHandler{reply: chat.Reply{Text: "updated", Edit: true}}
	r := &fakeResponder{}

	testBot(h).HandleInteraction(context.Background(), r, buttonInteraction("refresh"))

	assert.Equal(t, []discordgo.InteractionResponseType{discordgo.InteractionResponseDeferredMessageUpdate}, r.responded)
	require.Len(t, r.edits, 1)
	assert.Equal(t, "updated", *r.edits[0].Content)
}

func TestHandleInteraction_ButtonErrorIsEphemeralFollowup(t *testing.T) {
	h := &fakeHandler{reply: chat.Reply{Text: chat.MsgMarketClosed}}
	r := &fakeResponder{}

	testBot(h).HandleInteraction(context.Background(), r, buttonInteraction("p:1:y:KX"))

	assert.Empty(t, r.edits)
	require.Len(t, r.followups, 1)
	assert.Equal(t, chat.MsgMarketClosed, r.followups[0].Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, r.followups[0].Flags)
}

func TestHandleInteraction_DeferFailureSkipsHandler(t *testing.T) {
	h := &fakeHandler{}
	r := &fakeResponder{respondErr: errors.New("unknown interaction")}

	testBot(h).HandleInteraction(context.Background(), r, commandInteraction(chat.CommandHelp))

	assert.Empty(t, h.got)
	assert.Empty(t, r.edits)
}
