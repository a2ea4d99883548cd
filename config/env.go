package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envOverrides lists the BIP39_* variables. Unset variables leave their
// pointer nil so the lower layers stay in effect. Names are spelled out in
// full: with a prefix envconfig also falls back to the bare tag, and a bare
// LANGUAGE is the locale variable.
type envOverrides struct {
	Language     *string `envconfig:"BIP39_LANGUAGE"`
	WordListFile *string `envconfig:"BIP39_WORDLIST_FILE"`
	Words        *int    `envconfig:"BIP39_WORDS"`
	LogLevel     *string `envconfig:"BIP39_LOG_LEVEL"`
	LogFile      *string `envconfig:"BIP39_LOG_FILE"`
	LogJSON      *bool   `envconfig:"BIP39_LOG_JSON"`
}

// ApplyEnv applies BIP39_* environment variables to cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if env.Language != nil {
		cfg.Language = *env.Language
	}
	if env.WordListFile != nil {
		cfg.WordListFile = *env.WordListFile
	}
	if env.Words != nil {
		cfg.Words = *env.Words
	}
	if env.LogLevel != nil {
		cfg.Log.Level = *env.LogLevel
	}
	if env.LogFile != nil {
		cfg.Log.File = *env.LogFile
	}
	if env.LogJSON != nil {
		cfg.Log.JSON = *env.LogJSON
	}
	return nil
}
