// Package cmd implements the ferreus command line interface. Every command
// runs a full session: prompt, unlock, operate, save, lock. No secret
// survives a command invocation.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	ferreus "github.com/Quabena/ferreus-vault"
	"github.com/Quabena/ferreus-vault/audit"
	"github.com/Quabena/ferreus-vault/persist"
)

var (
	cfgFile   string
	vaultPath string
	outputFmt string
	auditPath string
)

var rootCmd = &cobra.Command{
	Use:   "ferreus",
	Short: "A local password vault protected by a master password",
	Long: `Ferreus keeps account credentials in a single encrypted file.
The vault is protected by a master password using Argon2id key derivation
and XChaCha20-Poly1305 authenticated encryption; every write is atomic, so
a crash never leaves a half-written vault.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.ferreus/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "vault file path (default $HOME/.ferreus/vault"+persist.Extension+")")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&auditPath, "audit-log", "", "audit log file (auditing disabled when empty)")

	bindFlags(rootCmd.PersistentFlags())
}

func bindFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("vault", flags.Lookup("vault"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("audit_log", flags.Lookup("audit-log"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".ferreus"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FERREUS")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func resolveVaultPath() string {
	if p := viper.GetString("vault"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "vault" + persist.Extension
	}
	return filepath.Join(home, ".ferreus", "vault"+persist.Extension)
}

// newManager builds a manager plus its audit logger. The caller closes
// both, manager first.
func newManager() (*ferreus.Manager, audit.Logger, error) {
	logger := audit.Logger(audit.NewNoOpLogger())
	if p := viper.GetString("audit_log"); p != "" {
		fileLogger, err := audit.NewFileLogger(p)
		if err != nil {
			return nil, nil, err
		}
		logger = fileLogger
	}

	mgr := ferreus.NewManager(resolveVaultPath(), ferreus.Options{
		AuditLogger:      logger,
		EnableMemoryLock: viper.GetBool("memory_lock"),
	})
	return mgr, logger, nil
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

// withUnlocked runs fn inside a prompt/unlock/lock session.
func withUnlocked(fn func(*ferreus.Manager) error) error {
	mgr, logger, err := newManager()
	if err != nil {
		return err
	}
	defer logger.Close()
	defer mgr.Close()

	password, err := promptPassword("Master password: ")
	if err != nil {
		return err
	}

	if err := mgr.Unlock(password); err != nil {
		return err
	}
	return fn(mgr)
}
