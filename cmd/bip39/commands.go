package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/Klingon-tech/klingnet-bip39/config"
	"github.com/Klingon-tech/klingnet-bip39/internal/backup"
	"github.com/Klingon-tech/klingnet-bip39/internal/hdkey"
	"github.com/Klingon-tech/klingnet-bip39/internal/log"
	"github.com/Klingon-tech/klingnet-bip39/internal/secure"
	"github.com/Klingon-tech/klingnet-bip39/pkg/bip39"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// deriveSeed derives m's seed and logs how long the key stretching took.
func deriveSeed(m *bip39.Mnemonic, passphrase []byte) *bip39.Seed {
	defer log.Benchmark(log.CLI, "derive seed")()
	return bip39.NewSeed(m, string(passphrase))
}

// ── generate ────────────────────────────────────────────────────────────

func cmdGenerate(cfg *config.Config, args []string) error {
	fs := newFlagSet("generate")
	words := fs.Int("words", cfg.Words, "Phrase length: 12, 15, 18, 21 or 24")
	withPass := fs.Bool("passphrase", false, "Prompt for a seed passphrase")
	qr := fs.Bool("qr", false, "Also print the phrase as a QR code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	typ, err := bip39.ForWordCount(*words)
	if err != nil {
		return err
	}
	wl, err := wordList(cfg)
	if err != nil {
		return err
	}

	m, err := bip39.New(typ, wl)
	if err != nil {
		return fmt.Errorf("generate mnemonic: %w", err)
	}
	defer m.Destroy()

	var passphrase []byte
	if *withPass {
		passphrase, err = readNewPassword("Enter passphrase: ")
		if err != nil {
			return err
		}
		defer secure.Wipe(passphrase)
	}

	fmt.Fprintln(stdout, "Mnemonic (write this down!):")
	fmt.Fprintf(stdout, "  %s\n\n", m.Phrase())

	if *qr {
		code, err := qrcode.New(m.Phrase(), qrcode.Medium)
		if err != nil {
			return fmt.Errorf("render QR code: %w", err)
		}
		fmt.Fprintln(stdout, code.ToSmallString(false))
	}

	seed := deriveSeed(m, passphrase)
	defer seed.Destroy()
	fmt.Fprintf(stdout, "Seed: %s\n", seed.Hex())

	log.CLI.Info().Int("words", typ.WordCount()).Str("language", string(m.Language())).Msg("generated mnemonic")
	return nil
}

// ── validate / entropy / encode ─────────────────────────────────────────

func cmdValidate(cfg *config.Config, args []string) error {
	m, err := mnemonicFromArgs(cfg, args)
	if err != nil {
		return err
	}
	defer m.Destroy()
	fmt.Fprintf(stdout, "Valid %d-word mnemonic (%s)\n", m.Type().WordCount(), m.Language())
	return nil
}

func cmdEntropy(cfg *config.Config, args []string) error {
	m, err := mnemonicFromArgs(cfg, args)
	if err != nil {
		return err
	}
	defer m.Destroy()
	fmt.Fprintln(stdout, m.Hex())
	return nil
}

func cmdEncode(cfg *config.Config, args []string) error {
	fs := newFlagSet("encode")
	entropyHex := fs.String("entropy", "", "Entropy as hex (16, 20, 24, 28 or 32 bytes)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *entropyHex == "" {
		return errors.New("usage: bip39 encode --entropy <hex>")
	}
	entropy, err := hex.DecodeString(strings.TrimPrefix(*entropyHex, "0x"))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	defer secure.Wipe(entropy)

	wl, err := wordList(cfg)
	if err != nil {
		return err
	}
	m, err := bip39.FromEntropy(entropy, wl)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	defer m.Destroy()
	fmt.Fprintln(stdout, m.Phrase())
	return nil
}

// ── seed ────────────────────────────────────────────────────────────────

func cmdSeed(cfg *config.Config, args []string) error {
	fs := newFlagSet("seed")
	withPass := fs.Bool("passphrase", false, "Prompt for a seed passphrase")
	withAddr := fs.Bool("address", false, "Also print the first BIP-44 address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := mnemonicFromArgs(cfg, fs.Args())
	if err != nil {
		return err
	}
	defer m.Destroy()

	var passphrase []byte
	if *withPass {
		passphrase, err = readPassword("Enter passphrase: ")
		if err != nil {
			return fmt.Errorf("read passphrase: %w", err)
		}
		defer secure.Wipe(passphrase)
	}

	seed := deriveSeed(m, passphrase)
	defer seed.Destroy()
	fmt.Fprintf(stdout, "Seed: %s\n", seed.Hex())

	if !*withAddr {
		return nil
	}
	master, err := hdkey.NewMasterKey(seed)
	if err != nil {
		return fmt.Errorf("derive master key: %w", err)
	}
	defer master.Destroy()

	key, err := master.DeriveAddress(0, hdkey.ChangeExternal, 0)
	if err != nil {
		return fmt.Errorf("derive address: %w", err)
	}
	defer key.Destroy()

	fmt.Fprintf(stdout, "Address (m/44'/8888'/0'/0/0): %s\n", key.Address())
	fmt.Fprintf(stdout, "Public key: %x\n", key.PublicKeyBytes())
	return nil
}

// ── words / languages ───────────────────────────────────────────────────

func cmdWords(cfg *config.Config, args []string) error {
	fs := newFlagSet("words")
	prefix := fs.String("prefix", "", "Only list words starting with this prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	wl, err := wordList(cfg)
	if err != nil {
		return err
	}
	for _, w := range bip39.WordsWithPrefix(wl, *prefix) {
		fmt.Fprintln(stdout, w)
	}
	return nil
}

func cmdLanguages() error {
	for _, lang := range bip39.NewRegistry().Languages() {
		fmt.Fprintln(stdout, lang)
	}
	return nil
}

// ── backup / restore ────────────────────────────────────────────────────

func cmdBackup(cfg *config.Config, args []string) error {
	m, err := mnemonicFromArgs(cfg, args)
	if err != nil {
		return err
	}
	defer m.Destroy()

	password, err := readNewPassword("Enter backup password: ")
	if err != nil {
		return err
	}
	defer secure.Wipe(password)

	blob, err := backup.SealMnemonic(m, password, cfg.BackupParams())
	if err != nil {
		return fmt.Errorf("seal backup: %w", err)
	}
	fmt.Fprintln(stdout, hex.EncodeToString(blob))
	return nil
}

func cmdRestore(cfg *config.Config, args []string) error {
	fs := newFlagSet("restore")
	blobHex := fs.String("blob", "", "Backup blob as hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *blobHex == "" {
		return errors.New("usage: bip39 restore --blob <hex>")
	}
	blob, err := hex.DecodeString(strings.TrimSpace(*blobHex))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	wl, err := wordList(cfg)
	if err != nil {
		return err
	}

	password, err := readPassword("Enter backup password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer secure.Wipe(password)

	m, err := backup.OpenMnemonic(blob, password, wl)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	defer m.Destroy()
	fmt.Fprintln(stdout, m.Phrase())
	return nil
}

// ── init ────────────────────────────────────────────────────────────────

func cmdInit(path string) error {
	if path == "" {
		path = config.DefaultConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.EnsureConfigFile(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(stdout, "Config: %s\n", path)
	return nil
}
