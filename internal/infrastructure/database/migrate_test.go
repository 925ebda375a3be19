package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTableAPI struct {
	tables      map[string]bool
	created     []string
	describeErr error
}

func (f *fakeTableAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	name := aws.ToString(in.TableName)
	if !f.tables[name] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeTableAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	f.tables[name] = true
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func defs(names ...string) []*dynamodb.CreateTableInput {
	out := make([]*dynamodb.CreateTableInput, 0, len(names))
	for _, n := range names {
		out = append(out, &dynamodb.CreateTableInput{TableName: aws.String(n)})
	}
	return out
}

func TestEnsureDynamoTables(t *testing.T) {
	t.Run("creates only missing tables", func(t *testing.T) {
		api := &fakeTableAPI{tables: map[string]bool{"installations": true}}

		err := EnsureDynamoTables(context.Background(), api, defs("installations", "installation_history"), 30*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(api.created) != 1 || api.created[0] != "installation_history" {
			t.Fatalf("unexpected created tables: %v", api.created)
		}
	})

	t.Run("describe failure aborts", func(t *testing.T) {
		boom := errors.New("boom")
		api := &fakeTableAPI{tables: map[string]bool{}, describeErr: boom}

		err := EnsureDynamoTables(context.Background(), api, defs("installations"), 30*time.Second)
		if !errors.Is(err, boom) {
			t.Fatalf("expected describe error, got %v", err)
		}
		if len(api.created) != 0 {
			t.Fatalf("nothing should be created")
		}
	})
}

func TestOpenSQL(t *testing.T) {
	t.Run("sqlite in memory", func(t *testing.T) {
		db, err := OpenSQL(context.Background(), "sqlite", ":memory:")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer db.Close()
		if db.Stats().MaxOpenConnections != 1 {
			t.Fatalf("expected a single connection for sqlite")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := OpenSQL(context.Background(), "mysql", "x"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{AccessKeyID: "local", SecretAccessKey: "local"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region, got %q", cfg.Region)
	}
}
