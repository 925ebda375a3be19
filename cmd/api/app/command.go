package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"agenda_rastreadores/internal/config"
	"agenda_rastreadores/pkg/log"
)

// NewAPICommand builds the root command. Running it without a subcommand
// starts the HTTP server.
func NewAPICommand(ctx context.Context) *cobra.Command {
	opts := config.NewOptions()

	cmd := &cobra.Command{
		Use:   "agenda-api",
		Short: "Tracker installation scheduling service",
		Long: `agenda-api serves the installation scheduling API: the lifecycle mutation
endpoint, the technician agenda, the insurer search and the admin dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.Complete(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			if err := joinErrors(opts.ValidateStore()); err != nil {
				return err
			}
			log.Init(opts.Log)
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return serve(ctx, opts)
		},
		Args: cobra.NoArgs,
	}

	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newServeCommand(ctx, opts), newMigrateCommand(ctx, opts))
	return cmd
}

func newServeCommand(ctx context.Context, opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return serve(ctx, opts)
		},
	}
}

func newMigrateCommand(ctx context.Context, opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the DynamoDB tables or apply the SQL schema",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			defer func() { _ = log.Sync() }()
			return runMigrate(ctx, opts)
		},
	}
}

func serve(ctx context.Context, opts *config.Options) error {
	defer func() { _ = log.Sync() }()
	if err := joinErrors(opts.Validate()); err != nil {
		return err
	}
	return runServe(ctx, opts)
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}
