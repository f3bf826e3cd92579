package internal

import (
	"fmt"

	"github.com/hbomb79/Booru/internal/api"
	"github.com/hbomb79/Booru/internal/content"
	"github.com/hbomb79/Booru/internal/database"
	"github.com/hbomb79/Booru/internal/ffmpeg"
	"github.com/hbomb79/Booru/internal/upload"
	"github.com/ilyakaznacheev/cleanenv"
)

// BooruConfig is the struct used to contain the
// various user config supplied by file and/or the
// environment.
type BooruConfig struct {
	Database database.DatabaseConfig `yaml:"database" env-required:"true"`
	API      api.RestConfig          `yaml:"api"`
	Content  content.Config          `yaml:"content"`
	FFmpeg   ffmpeg.Config           `yaml:"ffmpeg"`
	Upload   upload.Config           `yaml:"upload"`
	LogLevel string                  `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// LoadFromFile loads a configuration file formatted in YAML in to
// the config, with environment variables taking precedence over the
// file. An empty path reads the configuration from the environment alone.
func (config *BooruConfig) LoadFromFile(configPath string) error {
	if configPath == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return fmt.Errorf("failed to load configuration from environment: %w", err)
		}

		return nil
	}

	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}

	return nil
}
