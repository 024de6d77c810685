package db

import (
	"alumni_portal/configs"
	"context"
	"fmt"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type dbLogger struct {
	logger *zap.SugaredLogger
}

func (d dbLogger) BeforeQuery(c context.Context, q *pg.QueryEvent) (context.Context, error) {
	query, err := q.FormattedQuery()
	if err != nil {
		return c, nil
	}

	d.logger.Debug(string(query))
	return c, nil
}

func (d dbLogger) AfterQuery(c context.Context, q *pg.QueryEvent) error {
	if q.Err != nil {
		d.logger.Debugw("query failed", "error", q.Err)
	}
	return nil
}

// Connect opens the storage client without touching the schema.
func Connect(ctx context.Context, config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	options, err := pg.ParseURL(config.URL)
	if err != nil {
		logger.Errorw("failed to parse db url", "error", err)
		return nil, err
	}

	db := pg.Connect(options)
	db.AddQueryHook(dbLogger{logger})

	if err = db.Ping(ctx); err != nil {
		logger.Errorw("failed to ping db", "error", err)
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// StartDB connects and brings the schema up to the latest migration.
func StartDB(ctx context.Context, config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	db, err := Connect(ctx, config, logger)
	if err != nil {
		return nil, err
	}

	if _, _, err = Migrate(db, config.MigrationsDir, logger, "init"); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("migrations initialized")

	oldVersion, newVersion, err := Migrate(db, config.MigrationsDir, logger, "up")
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	if newVersion != oldVersion {
		logger.Infof("migrated from version %d to %d", oldVersion, newVersion)
	} else {
		logger.Infof("version is %d", oldVersion)
	}

	return db, nil
}

// Migrate runs a go-pg migrations command ("init", "up", "down", "version", ...)
// against the SQL files in dir.
func Migrate(db *pg.DB, dir string, logger *zap.SugaredLogger, args ...string) (oldVersion, newVersion int64, err error) {
	collection := migrations.NewCollection().DisableSQLAutodiscover(true)

	if err = collection.DiscoverSQLMigrations(dir); err != nil {
		logger.Errorw("failed to discover migrations", "dir", dir, "error", err)
		return 0, 0, fmt.Errorf("failed to discover migrations: %w", err)
	}

	oldVersion, newVersion, err = collection.Run(db, args...)
	if err != nil {
		logger.Errorw("failed to run migrations", "args", args, "error", err)
		return 0, 0, fmt.Errorf("failed to run migrations %v: %w", args, err)
	}

	return oldVersion, newVersion, nil
}
