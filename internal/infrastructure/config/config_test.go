package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("APP_CONFIG", "")
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("DYNAMODB_AUTO_CREATE_TABLES", "true")
	t.Setenv("INVOICES_TABLE", "bh_invoices")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.DynamoDB.Region != "us-east-1" || cfg.DynamoDB.Endpoint != "http://localhost:8000" || !cfg.DynamoDB.AutoCreateTables {
		t.Fatalf("unexpected dynamodb config: %+v", cfg.DynamoDB)
	}
	if cfg.Tables.Invoices != "bh_invoices" || cfg.Tables.Rooms != "rooms" {
		t.Fatalf("unexpected tables: %+v", cfg.Tables)
	}
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	content := []byte(`port: ":9090"
dynamodb:
  region: ap-southeast-1
  auto_create_tables: true
tables:
  rooms: prod_rooms
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("APP_CONFIG", path)
	t.Setenv("PORT", "8081")
	t.Setenv("AWS_ACCESS_KEY_ID", "key")
	t.Setenv("TENANTS_TABLE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected yaml port to win, got %q", cfg.Port)
	}
	if cfg.DynamoDB.Region != "ap-southeast-1" || !cfg.DynamoDB.AutoCreateTables {
		t.Fatalf("unexpected dynamodb config: %+v", cfg.DynamoDB)
	}
	if cfg.DynamoDB.AccessKeyID != "key" {
		t.Fatalf("expected credentials from env, got %q", cfg.DynamoDB.AccessKeyID)
	}
	if cfg.Tables.Rooms != "prod_rooms" || cfg.Tables.Tenants != "tenants" {
		t.Fatalf("unexpected tables: %+v", cfg.Tables)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("APP_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("blank table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.yaml")
		if err := os.WriteFile(path, []byte("tables:\n  invoices: \"\"\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		t.Setenv("APP_CONFIG", path)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
