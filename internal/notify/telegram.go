package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Telegram delivers messages to a single chat
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// NewTelegram creates a Telegram sender for the given bot token and chat
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("initializing Telegram bot: %w", err)
	}

	return &Telegram{
		bot:    bot,
		chatID: chatID,
		logger: log.With().Str("component", "telegram").Logger(),
	}, nil
}

// Send delivers one HTML-formatted message
func (t *Telegram) Send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error().Err(err).Msg("Telegram send failed")
		return fmt.Errorf("sending message: %w", err)
	}

	t.logger.Info().Int("length", len(text)).Msg("Message sent")
	return nil
}

// SendAll delivers each part in order, stopping at the first failure
func (t *Telegram) SendAll(parts []string) error {
	for _, part := range parts {
		if err := t.Send(part); err != nil {
			return err
		}
	}
	return nil
}
