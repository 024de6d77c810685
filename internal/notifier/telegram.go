package notifier

import (
	"alumni_portal/configs"
	"alumni_portal/internal/db/models"
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramNotifier struct {
	chatID        int64
	communityName string
	send          func(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

func NewTelegramNotifier(config configs.Telegram, communityName string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("could not create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		chatID:        config.ChatID,
		communityName: communityName,
		send:          bot.Send,
	}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, event *models.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := tgbotapi.NewMessage(n.chatID, announcement(n.communityName, event))
	message.DisableWebPagePreview = true

	if _, err := n.send(message); err != nil {
		return fmt.Errorf("could not send telegram message: %w", err)
	}

	return nil
}
