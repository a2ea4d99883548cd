// Package config handles configuration for the bip39 command-line tool.
//
// Settings are layered with the following precedence, lowest first:
// defaults, the .conf file, BIP39_* environment variables, then flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/klingnet-bip39/internal/backup"
)

// Config holds tool settings.
type Config struct {
	// Word list selection. WordListFile, when set, takes precedence over
	// Language and must hold 2048 sorted words.
	Language     string `conf:"language"`
	WordListFile string `conf:"wordlist"`

	// Default phrase length for generate.
	Words int `conf:"words"`

	// Backup key derivation
	Backup BackupConfig

	// Logging
	Log LogConfig
}

// BackupConfig holds Argon2id cost settings for new backups.
type BackupConfig struct {
	Memory      uint32 `conf:"backup.memory"` // KiB
	Iterations  uint32 `conf:"backup.iterations"`
	Parallelism uint8  `conf:"backup.parallelism"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// BackupParams converts the backup settings for internal/backup.
func (c *Config) BackupParams() backup.Params {
	return backup.Params{
		Memory:      c.Backup.Memory,
		Iterations:  c.Backup.Iterations,
		Parallelism: c.Backup.Parallelism,
	}
}

// DefaultConfigDir returns the platform-specific default config directory.
//
//	Linux:   ~/.bip39
//	macOS:   ~/Library/Application Support/Bip39
//	Windows: %APPDATA%\Bip39
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bip39"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Bip39")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Bip39")
		}
		return filepath.Join(home, "AppData", "Roaming", "Bip39")
	default:
		return filepath.Join(home, ".bip39")
	}
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() string {
	return filepath.Join(DefaultConfigDir(), "bip39.conf")
}
