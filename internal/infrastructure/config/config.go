package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DynamoDBConfig holds the connection settings of the document store.
//
// Credentials are only read from the environment.
type DynamoDBConfig struct {
	Region           string `yaml:"region"`
	Endpoint         string `yaml:"endpoint"`
	AccessKeyID      string `yaml:"-"`
	SecretAccessKey  string `yaml:"-"`
	AutoCreateTables bool   `yaml:"auto_create_tables"`
}

// TablesConfig names the DynamoDB tables.
type TablesConfig struct {
	Rooms        string `yaml:"rooms"`
	Tenants      string `yaml:"tenants"`
	PriceConfigs string `yaml:"price_configs"`
	Invoices     string `yaml:"invoices"`
}

// Config is the service configuration.
type Config struct {
	Port     string         `yaml:"port"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Tables   TablesConfig   `yaml:"tables"`
}

// Load builds the config from environment defaults and overlays the YAML
// file named by APP_CONFIG when set.
func Load() (Config, error) {
	cfg := Config{
		Port: getenvDefault("PORT", "8080"),
		DynamoDB: DynamoDBConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:         os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			AutoCreateTables: getenvBoolDefault("DYNAMODB_AUTO_CREATE_TABLES", false),
		},
		Tables: TablesConfig{
			Rooms:        getenvDefault("ROOMS_TABLE", "rooms"),
			Tenants:      getenvDefault("TENANTS_TABLE", "tenants"),
			PriceConfigs: getenvDefault("PRICE_CONFIGS_TABLE", "price_configs"),
			Invoices:     getenvDefault("INVOICES_TABLE", "invoices"),
		},
	}

	if path := os.Getenv("APP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		return cfg, errors.New("config: port required")
	}
	if cfg.DynamoDB.Region == "" {
		return cfg, errors.New("config: dynamodb region required")
	}
	if cfg.Tables.Rooms == "" || cfg.Tables.Tenants == "" || cfg.Tables.PriceConfigs == "" || cfg.Tables.Invoices == "" {
		return cfg, errors.New("config: table names required")
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvBoolDefault(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
