package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the server and CLI configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port" env:"DECKAPP_PORT"`
	// DataPath is a SQLite card database, a CSV file or a directory of CSVs.
	DataPath string `yaml:"data_path" env:"DECKAPP_DATA"`
	// WatchData reloads the cards when DataPath changes.
	WatchData bool `yaml:"watch_data" env:"DECKAPP_WATCH"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" env:"DECKAPP_LOG_LEVEL"`
	// PerPage is the list page size until the client reports its layout.
	PerPage int `yaml:"per_page" env:"DECKAPP_PER_PAGE"`
	// ArtURL is a card art URL with an {id} placeholder. Empty disables art.
	ArtURL string `yaml:"art_url" env:"DECKAPP_ART_URL"`

	Image ImageConfig `yaml:"image" envPrefix:"DECKAPP_IMAGE_"`
}

// ImageConfig sizes generated deck images.
type ImageConfig struct {
	TileWidth int `yaml:"tile_width" env:"TILE_WIDTH"`
	QRSize    int `yaml:"qr_size" env:"QR_SIZE"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Port:     8080,
		DataPath: "data/cards.db",
		LogLevel: "info",
		PerPage:  60,
		Image: ImageConfig{
			TileWidth: 150,
			QRSize:    400,
		},
	}
}

// Load starts from DefaultConfig, overlays the YAML file at path when it
// exists, then applies DECKAPP_* environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DataPath == "" {
		return errors.New("data path is required")
	}
	if c.PerPage < 1 {
		return fmt.Errorf("invalid per_page %d", c.PerPage)
	}
	return nil
}
