package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const defaultCreateDelay = time.Second

type Config struct {
	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`
	Service struct {
		CreateDelay string `yaml:"create_delay"`
	} `yaml:"service"`
}

// LoadConfig reads the yaml config at path. A missing file yields defaults;
// a file that exists but cannot be parsed is fatal.
func LoadConfig(path string) Config {
	var cfg Config
	cfg.Database.DSN = "invoices.db"

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg
		}
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "invoices.db"
	}
	return cfg
}

// ProcessingDelay returns the artificial delay applied before persisting a
// new invoice.
func (c Config) ProcessingDelay() time.Duration {
	if c.Service.CreateDelay == "" {
		return defaultCreateDelay
	}
	d, err := time.ParseDuration(c.Service.CreateDelay)
	if err != nil || d < 0 {
		return defaultCreateDelay
	}
	return d
}
