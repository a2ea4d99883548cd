// bip39 is a command-line tool for creating, checking and backing up BIP-39
// mnemonics.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-bip39/config"
	"github.com/Klingon-tech/klingnet-bip39/internal/log"
	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

const version = "0.1.0"

// stdout receives command output.
var stdout io.Writer = os.Stdout

func main() {
	// Commands return instead of exiting so their deferred wipes run.
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, flags, err := config.Load(args)
	if err != nil {
		usage()
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Help {
		usage()
		return nil
	}
	if flags.Version {
		fmt.Fprintf(stdout, "bip39 version %s\n", version)
		return nil
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	if len(flags.Args) == 0 {
		usage()
		return errors.New("no command given")
	}

	cmd := flags.Args[0]
	cmdArgs := flags.Args[1:]
	log.CLI.Debug().Str("command", cmd).Str("language", cfg.Language).Msg("dispatch")

	switch cmd {
	case "generate":
		err = cmdGenerate(cfg, cmdArgs)
	case "validate":
		err = cmdValidate(cfg, cmdArgs)
	case "entropy":
		err = cmdEntropy(cfg, cmdArgs)
	case "encode":
		err = cmdEncode(cfg, cmdArgs)
	case "seed":
		err = cmdSeed(cfg, cmdArgs)
	case "words":
		err = cmdWords(cfg, cmdArgs)
	case "languages":
		err = cmdLanguages()
	case "backup":
		err = cmdBackup(cfg, cmdArgs)
	case "restore":
		err = cmdRestore(cfg, cmdArgs)
	case "init":
		err = cmdInit(flags.Config)
	case "help":
		usage()
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: bip39 [global flags] <command> [flags] [words...]

Global flags:
  --config, -c <path>   Config file (default: %s)
  --lang <code>         Word list language (default: en)
  --wordlist <path>     Custom word list file (2048 sorted words)
  --log-level <level>   debug, info, warn (default) or error
  --log-file <path>     Also write JSON logs to a file
  --log-json            Output logs as JSON
  --version             Show version information

Commands:
  generate [--words N] [--passphrase] [--qr]
                        Create a new mnemonic and print its seed
  validate [words...]   Check a mnemonic
  entropy [words...]    Print the entropy a mnemonic encodes
  encode --entropy <hex>
                        Print the mnemonic for the given entropy
  seed [--passphrase] [--address] [words...]
                        Derive the 64-byte seed (and first address)
  words [--prefix <p>]  List word list entries
  languages             List built-in languages
  backup [words...]     Encrypt a mnemonic's entropy with a password
  restore --blob <hex>  Decrypt a backup and print the mnemonic
  init                  Write a default config file

Mnemonics not given as arguments are read from the terminal without echo.

Environment:
  BIP39_LANGUAGE, BIP39_WORDLIST_FILE, BIP39_WORDS, BIP39_LOG_LEVEL,
  BIP39_LOG_FILE, BIP39_LOG_JSON override the config file; flags override both.
`, config.DefaultConfigFile())
}

// wordList resolves the configured word list.
func wordList(cfg *config.Config) (bip39.WordList, error) {
	if cfg.WordListFile != "" {
		data, err := os.ReadFile(cfg.WordListFile)
		if err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		wl, err := bip39.NewCustomList(string(data))
		if err != nil {
			return nil, fmt.Errorf("load word list %s: %w", cfg.WordListFile, err)
		}
		return wl, nil
	}

	lang, err := bip39.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}
	wl, err := bip39.NewRegistry().WordList(lang)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	return wl, nil
}

// mnemonicFromArgs joins the remaining arguments, or prompts when there are
// none, and validates the phrase against the configured word list.
func mnemonicFromArgs(cfg *config.Config, args []string) (*bip39.Mnemonic, error) {
	wl, err := wordList(cfg)
	if err != nil {
		return nil, err
	}

	var phrase []byte
	if len(args) > 0 {
		phrase = []byte(strings.Join(args, " "))
	} else {
		phrase, err = readPassword("Enter mnemonic: ")
		if err != nil {
			return nil, fmt.Errorf("read mnemonic: %w", err)
		}
	}
	defer secure.Wipe(phrase)

	m, err := bip39.FromPhrase(string(phrase), wl)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	return m, nil
}

// ── Password helper ─────────────────────────────────────────────────────

// stdin is shared so consecutive prompts on piped input read consecutive lines.
var stdin = bufio.NewReader(os.Stdin)

var isTerminal = func() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	if !isTerminal() {
		// Piped input: one line, no echo to suppress.
		line, err := stdin.ReadBytes('\n')
		if err != nil && len(line) == 0 {
			return nil, err
		}
		return bytes.TrimRight(line, "\r\n"), nil
	}
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// readNewPassword prompts twice and requires both entries to match.
func readNewPassword(prompt string) ([]byte, error) {
	password, err := readPassword(prompt)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	confirm, err := readPassword("Confirm: ")
	if err != nil {
		secure.Wipe(password)
		return nil, fmt.Errorf("read password: %w", err)
	}
	defer secure.Wipe(confirm)
	if !secure.Equal(password, confirm) {
		secure.Wipe(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}
