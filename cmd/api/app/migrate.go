package app

import (
	"context"
	"time"

	"agenda_rastreadores/internal/adapter/persistence/repository"
	"agenda_rastreadores/internal/config"
	"agenda_rastreadores/internal/infrastructure/database"
	"agenda_rastreadores/pkg/log"
)

const tableWaitTimeout = 2 * time.Minute

func runMigrate(ctx context.Context, opts *config.Options) error {
	switch opts.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(opts))
		if err != nil {
			return err
		}
		defs := repository.DynamoTableDefinitions(dynamoTables(opts))
		if err := database.EnsureDynamoTables(ctx, ddb, defs, tableWaitTimeout); err != nil {
			log.Error(err, "dynamodb migration failed")
			return err
		}
	default:
		db, err := database.OpenSQL(ctx, opts.StoreDriver, opts.StoreDSN)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := repository.ApplySchema(ctx, db); err != nil {
			log.Error(err, "sql migration failed", "driver", opts.StoreDriver)
			return err
		}
	}
	log.Info("migration complete", "driver", opts.StoreDriver)
	return nil
}
