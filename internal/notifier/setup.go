package notifier

import (
	"alumni_portal/configs"

	"go.uber.org/zap"
)

// FromConfig builds a Multi out of every configured channel. Channels that
// fail to initialize are logged and left out.
func FromConfig(app configs.App, telegram configs.Telegram, discord configs.Discord, logger *zap.SugaredLogger) Multi {
	notifiers := make(Multi, 0, 2)

	if telegram.Enabled() {
		n, err := NewTelegramNotifier(telegram, app.CommunityName)
		if err != nil {
			logger.Errorw("telegram announcements disabled", "error", err)
		} else {
			notifiers = append(notifiers, n)
		}
	}

	if discord.Enabled() {
		n, err := NewDiscordNotifier(discord, app.CommunityName)
		if err != nil {
			logger.Errorw("discord announcements disabled", "error", err)
		} else {
			notifiers = append(notifiers, n)
		}
	}

	logger.Infow("announcement channels configured", "count", len(notifiers))
	return notifiers
}
