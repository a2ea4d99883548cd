package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file. A missing file yields no
// values.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key. Unknown keys are ignored.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "language", "lang":
		cfg.Language = value
	case "wordlist":
		cfg.WordListFile = value
	case "words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Words = n

	// Backup
	case "backup.memory":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Backup.Memory = uint32(n)
	case "backup.iterations":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Backup.Iterations = uint32(n)
	case "backup.parallelism":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return err
		}
		cfg.Backup.Parallelism = uint8(n)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented default configuration file.
func WriteDefaultConfig(path string) error {
	d := Default()
	content := `# bip39 tool configuration
#
# Environment variables (BIP39_LANGUAGE, BIP39_WORDS, ...) override this
# file, and command-line flags override both.

# Word list language: en, zh-hans, zh-hant, cs, fr, it, ja, ko, es
language = ` + d.Language + `

# Custom word list file (2048 words, sorted, whitespace separated).
# Overrides language when set.
# wordlist = /path/to/words.txt

# Default phrase length for generate: 12, 15, 18, 21 or 24
words = ` + strconv.Itoa(d.Words) + `

# ============================================================================
# Backup encryption (Argon2id)
# ============================================================================

backup.memory = ` + strconv.FormatUint(uint64(d.Backup.Memory), 10) + `
backup.iterations = ` + strconv.FormatUint(uint64(d.Backup.Iterations), 10) + `
backup.parallelism = ` + strconv.FormatUint(uint64(d.Backup.Parallelism), 10) + `

# ============================================================================
# Logging
# ============================================================================

log.level = ` + d.Log.Level + `
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0600)
}
