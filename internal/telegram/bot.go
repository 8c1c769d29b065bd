// Package telegram connects the chat dispatcher to Telegram by long polling.
// Messages are plain text; buttons are inline keyboards whose callback data
// is the chat payload.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/osse101/PredictionLeague_Go/internal/chat"
	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/worker"
)

// API is the subset of tgbotapi.BotAPI the bot uses
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Handler turns an interaction into a reply
type Handler interface {
	Handle(ctx context.Context, in chat.Interaction) chat.Reply
}

// Config tunes the bot
type Config struct {
	PollTimeout    int
	Workers        int
	QueueSize      int
	SendRetries    int
	RetryDelayBase time.Duration
	HandleTimeout  time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollTimeout <= 0 {
		c.PollTimeout = DefaultPollTimeout
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.SendRetries <= 0 {
		c.SendRetries = DefaultSendRetries
	}
	if c.RetryDelayBase <= 0 {
		c.RetryDelayBase = DefaultRetryDelayBase
	}
	if c.HandleTimeout <= 0 {
		c.HandleTimeout = DefaultHandleTimeout
	}
	return c
}

// Bot handles Telegram updates
type Bot struct {
	api     API
	handler Handler
	cfg     Config
}

// New connects to the Bot API with token
func New(token string, handler Handler, cfg Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateBot, err)
	}
	return NewWithAPI(api, handler, cfg), nil
}

// NewWithAPI creates a bot over an existing API client
func NewWithAPI(api API, handler Handler, cfg Config) *Bot {
	return &Bot{api: api, handler: handler, cfg: cfg.withDefaults()}
}

// Run polls for updates until ctx is cancelled. Updates are handled
// concurrently on a worker pool; Run returns after in-flight updates finish.
func (b *Bot) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	pool := worker.NewPool(b.cfg.Workers, b.cfg.QueueSize)
	pool.Start()
	defer pool.Stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.PollTimeout
	updates := b.api.GetUpdatesChan(u)
	log.Info(LogMsgBotStarted, "workers", b.cfg.Workers)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Info(LogMsgBotStopped)
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			job := worker.JobFunc(func(jobCtx context.Context) error {
				b.HandleUpdate(jobCtx, update)
				return nil
			})
			if err := pool.Enqueue(ctx, job); err != nil {
				log.Warn(LogErrEnqueueFailed, "update_id", update.UpdateID, "error", err)
			}
		}
	}
}

// HandleUpdate dispatches one update and delivers the reply
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	in, ok := ToInteraction(update)
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgUpdateIgnored, "update_id", update.UpdateID)
		return
	}

	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, b.cfg.HandleTimeout)
	defer cancel()

	// answer the callback first so the client stops its spinner
	if cq := update.CallbackQuery; cq != nil {
		if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
			logger.FromContext(ctx).Warn(LogErrCallbackAnswer, "error", err)
		}
	}

	reply := b.handler.Handle(ctx, in)
	if err := b.deliver(ctx, update, reply); err != nil {
		logger.FromContext(ctx).Error(LogErrSendFailed, "error", err)
	}
}

func (b *Bot) deliver(ctx context.Context, update tgbotapi.Update, reply chat.Reply) error {
	markup := Keyboard(reply.Buttons)

	if cq := update.CallbackQuery; reply.Edit && cq != nil && cq.Message != nil {
		edit := tgbotapi.NewEditMessageText(cq.Message.Chat.ID, cq.Message.MessageID, reply.Text)
		if markup != nil {
			edit.ReplyMarkup = markup
		}
		_, err := b.api.Send(edit)
		if err == nil {
			return nil
		}
		if strings.Contains(strings.ToLower(err.Error()), notModified) {
			logger.FromContext(ctx).Debug(LogMsgEditNotModified)
			return nil
		}
		logger.FromContext(ctx).Warn(LogWarnEditFellBack, "error", err)
	}

	msg := tgbotapi.NewMessage(chatID(update), reply.Text)
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	return b.sendWithRetry(ctx, msg)
}

func (b *Bot) sendWithRetry(ctx context.Context, msg tgbotapi.Chattable) error {
	var lastErr error
	for i := 0; i < b.cfg.SendRetries; i++ {
		_, err := b.api.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		if i == b.cfg.SendRetries-1 {
			break
		}
		logger.FromContext(ctx).Warn(LogWarnSendRetry, "attempt", i+1, "error", lastErr)
		select {
		case <-time.After(b.cfg.RetryDelayBase * time.Duration(i+1)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf(ErrMsgSendAfterRetries, b.cfg.SendRetries, lastErr)
}

// ToInteraction converts a command message or a button press. Other updates
// (plain text, edits, joins) are ignored.
func ToInteraction(update tgbotapi.Update) (chat.Interaction, bool) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		cq := update.CallbackQuery
		return chat.Interaction{
			Kind:        chat.KindButtonPress,
			Platform:    domain.PlatformTelegram,
			UserID:      strconv.FormatInt(cq.From.ID, 10),
			DisplayName: displayName(cq.From),
			Payload:     cq.Data,
		}, true

	case update.Message != nil && update.Message.From != nil && update.Message.IsCommand():
		m := update.Message
		return chat.Interaction{
			Kind:        chat.KindCommand,
			Platform:    domain.PlatformTelegram,
			UserID:      strconv.FormatInt(m.From.ID, 10),
			DisplayName: displayName(m.From),
			Command:     m.Command(),
			Args:        strings.Fields(m.CommandArguments()),
		}, true
	}
	return chat.Interaction{}, false
}

// Keyboard converts reply buttons to an inline keyboard, or nil when there are none
func Keyboard(rows [][]chat.Button) *tgbotapi.InlineKeyboardMarkup {
	var out [][]tgbotapi.InlineKeyboardButton
	for _, row := range rows {
		var r []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			r = append(r, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Payload))
		}
		if len(r) > 0 {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(out...)
	return &markup
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return u.UserName
	}
	return strconv.FormatInt(u.ID, 10)
}

func chatID(update tgbotapi.Update) int64 {
	if update.Message != nil && update.Message.Chat != nil {
		return update.Message.Chat.ID
	}
	if cq := update.CallbackQuery; cq != nil {
		if cq.Message != nil && cq.Message.Chat != nil {
			return cq.Message.Chat.ID
		}
		if cq.From != nil {
			return cq.From.ID
		}
	}
	return 0
}
