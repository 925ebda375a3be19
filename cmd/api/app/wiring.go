package app

import (
	"context"
	"fmt"
	"io"

	"agenda_rastreadores/internal/adapter/http/handlers"
	"agenda_rastreadores/internal/adapter/http/routes"
	"agenda_rastreadores/internal/adapter/persistence/repository"
	"agenda_rastreadores/internal/config"
	"agenda_rastreadores/internal/infrastructure/database"
	"agenda_rastreadores/internal/infrastructure/identity"
	"agenda_rastreadores/internal/infrastructure/metrics"
	"agenda_rastreadores/internal/usecase"
	"agenda_rastreadores/internal/usecase/interfaces"
	"agenda_rastreadores/pkg/log"

	"github.com/gin-gonic/gin"
)

// store is what both repository backends provide.
type store interface {
	interfaces.IInstallationRepository
	interfaces.IAuditTrailRepository
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func dynamoTables(opts *config.Options) repository.DynamoTables {
	return repository.DynamoTables{
		Installations: opts.InstallationsTable,
		History:       opts.HistoryTable,
		Observations:  opts.ObservationsTable,
	}
}

func dynamoOptions(opts *config.Options) database.DynamoDBOptions {
	return database.DynamoDBOptions{
		Region:          opts.AWSRegion,
		AccessKeyID:     opts.AWSAccessKeyID,
		SecretAccessKey: opts.AWSSecretAccessKey,
		Endpoint:        opts.DynamoDBEndpoint,
	}
}

func sqlDialect(driver string) repository.Dialect {
	if driver == config.StorePostgres {
		return repository.DialectPostgres
	}
	return repository.DialectSQLite
}

// openStore connects the configured backend. The returned closer releases it.
func openStore(ctx context.Context, opts *config.Options) (store, io.Closer, error) {
	switch opts.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, dynamoOptions(opts))
		if err != nil {
			return nil, nil, err
		}
		return repository.NewInstallationDynamoRepository(ddb, dynamoTables(opts)), nopCloser{}, nil
	case config.StorePostgres, config.StoreSQLite:
		db, err := database.OpenSQL(ctx, opts.StoreDriver, opts.StoreDSN)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewInstallationSQLRepository(db, sqlDialect(opts.StoreDriver)), db, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", opts.StoreDriver)
}

func newIdentityProvider(opts *config.Options) (interfaces.IIdentityProvider, error) {
	switch opts.AuthProvider {
	case config.AuthSupabase:
		return identity.NewSupabaseProvider(opts.SupabaseURL, opts.SupabaseAnonKey, opts.AuthTimeout), nil
	case config.AuthStatic:
		log.Warn("[auth][app] static identity provider enabled; do not use in production")
		return identity.NewStaticProvider(opts.StaticTokens)
	}
	return nil, fmt.Errorf("unknown auth provider %q", opts.AuthProvider)
}

// newRouter assembles use cases and handlers over s.
func newRouter(opts *config.Options, s store, idp interfaces.IIdentityProvider) *gin.Engine {
	gin.SetMode(opts.GinMode)

	m := metrics.New()
	recorder := usecase.NewAuditTrailRecorder(s, usecase.WithRecorderMetrics(m))
	installationUseCase := usecase.NewInstallationUseCase(s, recorder, usecase.WithMutationMetrics(m))
	queryUseCase := usecase.NewInstallationQueryUseCase(s)

	return routes.NewRouter(routes.Dependencies{
		Installations:  handlers.NewInstallationHandler(installationUseCase, queryUseCase),
		Identity:       idp,
		HTTPMetrics:    m,
		MetricsHandler: m.Handler(),
		Logger:         log.WithName("http"),
	})
}
