package configs

type Discord struct {
	Token     string `env:"DISCORD_ANNOUNCEMENTS_BOT_TOKEN"`
	ChannelID string `env:"DISCORD_ANNOUNCEMENTS_CHANNEL_ID"`
}

func (c Discord) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}
