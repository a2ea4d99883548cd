package config

import "github.com/Klingon-tech/klingnet-bip39/internal/backup"

// Default returns the default configuration.
func Default() *Config {
	params := backup.DefaultParams()
	return &Config{
		Language: "en",
		Words:    24,
		Backup: BackupConfig{
			Memory:      params.Memory,
			Iterations:  params.Iterations,
			Parallelism: params.Parallelism,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
