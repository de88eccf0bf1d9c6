package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new vault",
	Long: `Create a new empty vault at the target path. Fails if a vault
already exists there; init never overwrites.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	mgr, logger, err := newManager()
	if err != nil {
		return err
	}
	defer logger.Close()
	defer mgr.Close()

	password, err := promptPassword("New master password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm master password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := mgr.Create(password); err != nil {
		return err
	}

	fmt.Printf("Vault created at %s\n", mgr.Path())
	return nil
}
