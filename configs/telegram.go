package configs

type Telegram struct {
	Token  string `env:"TELEGRAM_ANNOUNCEMENTS_BOT_TOKEN"`
	ChatID int64  `env:"TELEGRAM_ANNOUNCEMENTS_CHAT_ID"`
}

func (c Telegram) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}
