package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
)

var getShowPassword bool

var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Show one entry",
	Long: `Show the entry at the given index, as printed by list. The
password is withheld unless --show-password is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().BoolVar(&getShowPassword, "show-password", false, "print the entry password")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	return withUnlocked(func(mgr *ferreus.Manager) error {
		var entry ferreus.Entry
		err := mgr.WithData(func(data *ferreus.VaultData) error {
			e, err := data.GetEntry(index)
			if err != nil {
				return err
			}
			entry = e
			return nil
		})
		if err != nil {
			return err
		}

		if !textOutput() {
			return render(viewOf(index, entry))
		}

		fmt.Printf("Account:  %s\n", entry.AccountName)
		fmt.Printf("Username: %s\n", entry.Username)
		if getShowPassword {
			fmt.Printf("Password: %s\n", entry.Password)
		}
		if entry.Notes != "" {
			fmt.Printf("Notes:    %s\n", entry.Notes)
		}
		fmt.Printf("Created:  %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Updated:  %s\n", entry.UpdatedAt.Format("2006-01-02 15:04:05"))
		return nil
	})
}
