package internal

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the optional settings read from the TOML config file.
// Command-line flags win over config values.
type Config struct {
	DBPath        string `toml:"db_path"`
	BackupDir     string `toml:"backup_dir"`
	TemplatesPath string `toml:"templates_path"`
}

// DefaultConfigPath returns ~/.config/trainlog/config.toml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "trainlog", "config.toml"), nil
}

// DefaultDBPath returns ~/.trainlog/trainlog.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".trainlog", "trainlog.db"), nil
}

// DefaultTemplatesPath returns ~/.config/trainlog/templates.yaml.
func DefaultTemplatesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "trainlog", "templates.yaml"), nil
}

// LoadConfig reads the config file at path. A missing file is not an
// error: it returns a zero Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
