package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Quabena/ferreus-vault/persist"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the vault file",
	Long: `Copy the encrypted vault file to a timestamped sibling and verify
the copy. No password is needed; the backup stays encrypted.`,
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	store := persist.NewFileStore(resolveVaultPath())
	if !store.Exists() {
		return fmt.Errorf("no vault at %s", store.Path())
	}

	backupPath, err := store.Backup()
	if err != nil {
		return err
	}
	fmt.Printf("Backup written to %s\n", backupPath)
	return nil
}
