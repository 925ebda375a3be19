package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	o := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := o.Complete(fs); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return o
}

func TestOptions_Complete(t *testing.T) {
	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "SQLite")
		t.Setenv("STORE_DSN", "file:agenda.db")
		t.Setenv("AWS_REGION", "sa-east-1")
		t.Setenv("SUPABASE_URL", "https://proj.supabase.co/")
		t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("LOG_LEVEL", "debug")

		o := parse(t)
		if o.StoreDriver != StoreSQLite || o.StoreDSN != "file:agenda.db" || o.AWSRegion != "sa-east-1" {
			t.Fatalf("unexpected options: %+v", o)
		}
		if o.SupabaseURL != "https://proj.supabase.co" {
			t.Fatalf("expected trailing slash trimmed, got %q", o.SupabaseURL)
		}
		if o.ShutdownTimeout != 3*time.Second || o.Log.Level != "debug" {
			t.Fatalf("unexpected timeouts or log options: %v %q", o.ShutdownTimeout, o.Log.Level)
		}
	})

	t.Run("explicit flag wins over environment", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", ":9000")
		o := parse(t, "--http.addr=:7000")
		if o.HTTPAddr != ":7000" {
			t.Fatalf("expected flag value, got %q", o.HTTPAddr)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		o := parse(t)
		if o.StoreDriver != StoreDynamoDB || o.InstallationsTable != "installations" || o.HTTPAddr != ":8080" {
			t.Fatalf("unexpected defaults: %+v", o)
		}
	})
}

func TestOptions_Validate(t *testing.T) {
	t.Run("static sqlite is valid", func(t *testing.T) {
		o := NewOptions()
		o.StoreDriver = StoreSQLite
		o.StoreDSN = ":memory:"
		o.AuthProvider = AuthStatic
		o.StaticTokens = "t=a@b.com:admin:1"
		if errs := o.Validate(); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("collects every problem", func(t *testing.T) {
		o := NewOptions()
		o.StoreDriver = StorePostgres
		o.AuthProvider = "ldap"
		o.ShutdownTimeout = 0
		if errs := o.Validate(); len(errs) != 3 {
			t.Fatalf("expected 3 errors, got %v", errs)
		}
	})

	t.Run("store checks ignore auth", func(t *testing.T) {
		o := NewOptions()
		if errs := o.ValidateStore(); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("supabase needs url and key", func(t *testing.T) {
		o := NewOptions()
		if errs := o.Validate(); len(errs) != 1 {
			t.Fatalf("expected 1 error, got %v", errs)
		}
	})
}
