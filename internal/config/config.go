package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"agenda_rastreadores/pkg/log"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"

	AuthSupabase = "supabase"
	AuthStatic   = "static"
)

// Options is the process configuration. It is resolved once at start from
// flags, environment (.env included) and defaults, and is read-only afterwards.
//
// Every flag maps to an upper-snake environment variable: --store.driver is
// STORE_DRIVER, --aws.region is AWS_REGION, --static-tokens is STATIC_TOKENS.
type Options struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	GinMode         string

	StoreDriver string
	StoreDSN    string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	InstallationsTable string
	HistoryTable       string
	ObservationsTable  string

	AuthProvider    string
	SupabaseURL     string
	SupabaseAnonKey string
	StaticTokens    string
	AuthTimeout     time.Duration

	Log *log.Options
}

func NewOptions() *Options {
	return &Options{
		HTTPAddr:           ":8080",
		ShutdownTimeout:    10 * time.Second,
		GinMode:            "release",
		StoreDriver:        StoreDynamoDB,
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		InstallationsTable: "installations",
		HistoryTable:       "installation_history",
		ObservationsTable:  "installation_observations",
		AuthProvider:       AuthSupabase,
		AuthTimeout:        5 * time.Second,
		Log:                log.NewOptions(),
	}
}

// AddFlags binds every option to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.HTTPAddr, "http.addr", o.HTTPAddr, "Address the HTTP server listens on.")
	fs.DurationVar(&o.ShutdownTimeout, "http.shutdown-timeout", o.ShutdownTimeout, "Grace period for in-flight requests on shutdown.")
	fs.StringVar(&o.GinMode, "gin.mode", o.GinMode, "Gin mode (debug, release or test).")

	fs.StringVar(&o.StoreDriver, "store.driver", o.StoreDriver, "Record store backend (dynamodb, postgres or sqlite).")
	fs.StringVar(&o.StoreDSN, "store.dsn", o.StoreDSN, "Connection string for the postgres or sqlite backend.")

	fs.StringVar(&o.AWSRegion, "aws.region", o.AWSRegion, "AWS region for DynamoDB.")
	fs.StringVar(&o.AWSAccessKeyID, "aws.access-key-id", o.AWSAccessKeyID, "AWS access key id.")
	fs.StringVar(&o.AWSSecretAccessKey, "aws.secret-access-key", o.AWSSecretAccessKey, "AWS secret access key.")
	fs.StringVar(&o.DynamoDBEndpoint, "dynamodb.endpoint", o.DynamoDBEndpoint, "Optional DynamoDB endpoint, e.g. http://dynamodb:8000.")
	fs.StringVar(&o.InstallationsTable, "installations-table", o.InstallationsTable, "DynamoDB installations table.")
	fs.StringVar(&o.HistoryTable, "history-table", o.HistoryTable, "DynamoDB history table.")
	fs.StringVar(&o.ObservationsTable, "observations-table", o.ObservationsTable, "DynamoDB observations table.")

	fs.StringVar(&o.AuthProvider, "auth.provider", o.AuthProvider, "Identity provider (supabase or static).")
	fs.StringVar(&o.SupabaseURL, "supabase.url", o.SupabaseURL, "Supabase project URL.")
	fs.StringVar(&o.SupabaseAnonKey, "supabase.anon-key", o.SupabaseAnonKey, "Supabase anon key sent as apikey.")
	fs.StringVar(&o.StaticTokens, "static-tokens", o.StaticTokens, "Static tokens for local use: token=email:role:id,...")
	fs.DurationVar(&o.AuthTimeout, "auth.timeout", o.AuthTimeout, "Timeout for identity provider calls.")

	o.Log.AddFlags(fs)
}

// Complete fills the options from fs, falling back to the environment for
// flags that were not set explicitly.
func (o *Options) Complete(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	o.HTTPAddr = v.GetString("http.addr")
	o.ShutdownTimeout = v.GetDuration("http.shutdown-timeout")
	o.GinMode = v.GetString("gin.mode")

	o.StoreDriver = strings.ToLower(v.GetString("store.driver"))
	o.StoreDSN = v.GetString("store.dsn")

	o.AWSRegion = v.GetString("aws.region")
	o.AWSAccessKeyID = v.GetString("aws.access-key-id")
	o.AWSSecretAccessKey = v.GetString("aws.secret-access-key")
	o.DynamoDBEndpoint = v.GetString("dynamodb.endpoint")
	o.InstallationsTable = v.GetString("installations-table")
	o.HistoryTable = v.GetString("history-table")
	o.ObservationsTable = v.GetString("observations-table")

	o.AuthProvider = strings.ToLower(v.GetString("auth.provider"))
	o.SupabaseURL = strings.TrimRight(v.GetString("supabase.url"), "/")
	o.SupabaseAnonKey = v.GetString("supabase.anon-key")
	o.StaticTokens = v.GetString("static-tokens")
	o.AuthTimeout = v.GetDuration("auth.timeout")

	o.Log.Name = v.GetString("log.name")
	o.Log.Level = v.GetString("log.level")
	o.Log.Format = v.GetString("log.format")
	o.Log.EnableColor = v.GetBool("log.enable-color")
	o.Log.DisableCaller = v.GetBool("log.disable-caller")
	o.Log.CallerSkip = v.GetInt("log.caller-skip")
	o.Log.OutputPaths = v.GetStringSlice("log.output-paths")
	return nil
}

// Validate reports every invalid combination at once.
func (o *Options) Validate() []error {
	errs := o.ValidateStore()
	switch o.AuthProvider {
	case AuthSupabase:
		if o.SupabaseURL == "" || o.SupabaseAnonKey == "" {
			errs = append(errs, fmt.Errorf("supabase.url and supabase.anon-key are required for the supabase provider"))
		}
	case AuthStatic:
		if o.StaticTokens == "" {
			errs = append(errs, fmt.Errorf("static-tokens is required for the static provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown auth.provider %q", o.AuthProvider))
	}

	if o.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http.shutdown-timeout must be positive"))
	}
	return errs
}

// ValidateStore checks only what the migrate command needs: store and logging.
func (o *Options) ValidateStore() []error {
	var errs []error
	switch o.StoreDriver {
	case StoreDynamoDB:
	case StorePostgres, StoreSQLite:
		if o.StoreDSN == "" {
			errs = append(errs, fmt.Errorf("store.dsn is required for the %s driver", o.StoreDriver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store.driver %q", o.StoreDriver))
	}
	return append(errs, o.Log.Validate()...)
}
