package realtime

import (
	"alumni_portal/configs"
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// PgListener forwards PostgreSQL notifications on a channel to a Publisher.
type PgListener struct {
	databaseURL    string
	channel        string
	reconnectDelay time.Duration
	publisher      Publisher
	logger         *zap.SugaredLogger
}

func NewPgListener(databaseURL string, config configs.Realtime, publisher Publisher, logger *zap.SugaredLogger) *PgListener {
	return &PgListener{
		databaseURL:    databaseURL,
		channel:        config.Channel,
		reconnectDelay: config.ReconnectDelay,
		publisher:      publisher,
		logger:         logger,
	}
}

// Run listens until ctx is done, reconnecting after connection failures.
func (l *PgListener) Run(ctx context.Context) error {
	for attempt := 0; ; attempt++ {
		err := l.listen(ctx, attempt > 0)
		if ctx.Err() != nil {
			return nil
		}

		l.logger.Errorw("change listener disconnected", "channel", l.channel, "error", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *PgListener) listen(ctx context.Context, resync bool) error {
	conn, err := pgx.Connect(ctx, l.databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return err
	}
	l.logger.Infow("listening for changes", "channel", l.channel)

	if resync {
		for _, collection := range Collections {
			l.publisher.Publish(Change{Collection: collection, Operation: OperationResync})
		}
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		change, err := DecodeChange(notification.Payload)
		if err != nil {
			l.logger.Warnw("skipping change notification", "payload", notification.Payload, "error", err)
			continue
		}

		l.publisher.Publish(change)
	}
}
