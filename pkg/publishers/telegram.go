package publishers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram rejects messages longer than 4096 characters.
const telegramMaxText = 4096

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// telegramPublisher posts the event summary to a chat.
type telegramPublisher struct {
	id     string
	chatID int64
	bot    telegramSender
	log    Logger
}

func newTelegramPublisher(_ context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	if cfg.Telegram == nil {
		return nil, fmt.Errorf("publisher %q missing telegram configuration", cfg.ID)
	}

	endpoint := cfg.Telegram.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.Telegram.Token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &telegramPublisher{
		id:     cfg.ID,
		chatID: cfg.Telegram.ChatID,
		bot:    bot,
		log:    ensureLogger(log),
	}, nil
}

func (t *telegramPublisher) ID() string   { return t.id }
func (t *telegramPublisher) Type() string { return TypeTelegram }

func (t *telegramPublisher) Publish(_ context.Context, evt Event) error {
	msg := tgbotapi.NewMessage(t.chatID, telegramText(evt))
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		t.log.ErrorObj("telegram publisher send failed", "publisher_telegram_error", map[string]any{
			"publisher_id": t.id,
			"feed_id":      evt.FeedID,
			"error":        err.Error(),
		})
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

func telegramText(evt Event) string {
	text := evt.Summary()
	if evt.FeedName != "" {
		text = evt.FeedName + "\n\n" + text
	}
	runes := []rune(text)
	if len(runes) > telegramMaxText {
		text = string(runes[:telegramMaxText-1]) + "…"
	}
	return text
}
