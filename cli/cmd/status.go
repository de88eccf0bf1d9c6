package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Quabena/ferreus-vault/persist"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault status",
	Long:  "Display the vault path and whether a vault file is present. Does not require the master password.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	store := persist.NewFileStore(resolveVaultPath())

	fmt.Printf("Vault path: %s\n", store.Path())
	if store.Exists() {
		fmt.Println("Vault:      present")
	} else {
		fmt.Println("Vault:      not created (run 'ferreus init')")
	}
	return nil
}
