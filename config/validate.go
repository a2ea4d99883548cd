package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-bip39/internal/log"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

// Validate checks the config for obvious mistakes. The language is
// normalized to its canonical code.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.WordListFile == "" {
		lang, err := bip39.ParseLanguage(cfg.Language)
		if err != nil {
			return fmt.Errorf("language: %w", err)
		}
		cfg.Language = string(lang)
	}

	if _, err := bip39.ForWordCount(cfg.Words); err != nil {
		return fmt.Errorf("words must be 12, 15, 18, 21 or 24: %w", err)
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}

	if err := cfg.BackupParams().Validate(); err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	return nil
}
