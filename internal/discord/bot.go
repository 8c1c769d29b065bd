package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
)

// Handler turns a normalized interaction into a reply
type Handler interface {
	Handle(ctx context.Context, in chat.Interaction) chat.Reply
}

// Responder is the part of *discordgo.Session used to answer interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Handler  Handler
	AppID    string
	Registry *CommandRegistry
	Stats    *Stats

	handleTimeout time.Duration
	forceUpdate   bool
}

// Config holds the bot configuration
type Config struct {
	Token         string
	AppID         string
	HandleTimeout time.Duration
	// ForceCommandUpdate overwrites the registered slash commands even when unchanged
	ForceCommandUpdate bool
}

// New creates a new Discord bot
func New(cfg Config, handler Handler) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	timeout := cfg.HandleTimeout
	if timeout <= 0 {
		timeout = DefaultHandleTimeout
	}
	return &Bot{
		Session:       s,
		Handler:       handler,
		AppID:         cfg.AppID,
		Registry:      NewCommandRegistry(),
		Stats:         NewStats(),
		handleTimeout: timeout,
		forceUpdate:   cfg.ForceCommandUpdate,
	}, nil
}

// Start opens the gateway connection and syncs the slash commands
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgOpenConnection, err)
	}
	if err := b.RegisterCommands(b.Registry, b.forceUpdate); err != nil {
		b.Session.Close()
		return err
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn(LogMsgBotStopped, "error", err)
		return
	}
	slog.Info(LogMsgBotStopped)
}

// Run runs the bot until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

// Connected reports whether the gateway session is up
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), b.handleTimeout)
	defer cancel()
	b.HandleInteraction(ctx, s, i)
}

// HandleInteraction defers the response, runs the handler and edits the
// deferred response with the reply. Button replies that are not edits (errors
// and notices) go out as ephemeral followups so the original view survives.
func (b *Bot) HandleInteraction(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	in, ok := ToInteraction(i)
	if !ok {
		slog.Debug(LogErrUnsupportedKind, "type", i.Type.String())
		return
	}
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)
	b.Stats.RecordCommand(time.Now())

	deferType := discordgo.InteractionResponseDeferredChannelMessageWithSource
	if in.Kind == chat.KindButtonPress {
		deferType = discordgo.InteractionResponseDeferredMessageUpdate
	}
	if err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{Type: deferType}); err != nil {
		log.Error(LogErrDeferFailed, "error", err)
		return
	}

	reply := b.Handler.Handle(ctx, in)
	content := clipContent(log, reply.Text)
	components := Components(log, reply.Buttons)

	if in.Kind == chat.KindButtonPress && !reply.Edit {
		if _, err := r.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content:    content,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		}); err != nil {
			log.Error(LogErrFollowupFailed, "error", err)
		}
		return
	}

	if _, err := r.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	}); err != nil {
		log.Error(LogErrEditFailed, "error", err)
	}
}

func clipContent(log *slog.Logger, text string) string {
	clipped := clip(text, MaxContentRunes)
	if clipped != text {
		log.Warn(LogWarnContentTruncated, "length", len(text))
	}
	return clipped
}
