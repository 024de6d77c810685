package notifier

import (
	"alumni_portal/configs"
	"alumni_portal/internal/db/models"
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type DiscordNotifier struct {
	channelID     string
	communityName string
	send          func(channelID, content string) error
}

func NewDiscordNotifier(config configs.Discord, communityName string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("could not create discord session: %w", err)
	}

	return &DiscordNotifier{
		channelID:     config.ChannelID,
		communityName: communityName,
		send: func(channelID, content string) error {
			_, err := session.ChannelMessageSend(channelID, content)
			return err
		},
	}, nil
}

func (n *DiscordNotifier) Notify(ctx context.Context, event *models.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.send(n.channelID, announcement(n.communityName, event)); err != nil {
		return fmt.Errorf("could not send discord message: %w", err)
	}

	return nil
}
