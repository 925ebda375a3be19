package app

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"agenda_rastreadores/internal/config"
)

func TestMigrateCommand_SQLite(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "agenda.db")

	cmd := NewAPICommand(context.Background())
	cmd.SetArgs([]string{"migrate", "--store.driver=sqlite", "--store.dsn=" + dsn, "--log.output-paths=stderr"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// a second run is a no-op
	cmd = NewAPICommand(context.Background())
	cmd.SetArgs([]string{"migrate", "--store.driver=sqlite", "--store.dsn=" + dsn, "--log.output-paths=stderr"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestAPICommand_RejectsInvalidConfiguration(t *testing.T) {
	cmd := NewAPICommand(context.Background())
	cmd.SetArgs([]string{"serve", "--store.driver=mongo"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "store.driver") {
		t.Fatalf("expected store.driver error, got %v", err)
	}
}

func TestServe_RequiresAuthConfiguration(t *testing.T) {
	opts := config.NewOptions()
	opts.StoreDriver = config.StoreSQLite
	opts.StoreDSN = ":memory:"

	err := serve(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "supabase") {
		t.Fatalf("expected supabase configuration error, got %v", err)
	}
}

func TestNewIdentityProvider(t *testing.T) {
	opts := config.NewOptions()
	opts.AuthProvider = config.AuthStatic
	opts.StaticTokens = "t=a@x.com:admin"
	if _, err := newIdentityProvider(opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts.AuthProvider = config.AuthSupabase
	opts.SupabaseURL = "https://proj.supabase.co"
	if _, err := newIdentityProvider(opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
