package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
)

var (
	updAccount  string
	updUsername string
	updNotes    string
	updPassword bool
)

var updateCmd = &cobra.Command{
	Use:   "update <index>",
	Short: "Update fields of an entry",
	Long: `Update the entry at the given index. Only the fields whose flags
are set change; --password prompts for a new entry password.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updAccount, "account", "a", "", "new account name")
	updateCmd.Flags().StringVarP(&updUsername, "username", "u", "", "new username")
	updateCmd.Flags().StringVarP(&updNotes, "notes", "n", "", "new notes")
	updateCmd.Flags().BoolVarP(&updPassword, "password", "p", false, "prompt for a new entry password")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	var upd ferreus.EntryUpdate
	if cmd.Flags().Changed("account") {
		upd.AccountName = &updAccount
	}
	if cmd.Flags().Changed("username") {
		upd.Username = &updUsername
	}
	if cmd.Flags().Changed("notes") {
		upd.Notes = &updNotes
	}

	return withUnlocked(func(mgr *ferreus.Manager) error {
		if updPassword {
			newPassword, err := promptPassword("New entry password: ")
			if err != nil {
				return err
			}
			upd.Password = &newPassword
		}

		err := mgr.WithData(func(data *ferreus.VaultData) error {
			return data.UpdateEntry(index, upd)
		})
		if err != nil {
			return err
		}

		if err := mgr.Save(); err != nil {
			return err
		}
		fmt.Printf("Updated entry %d\n", index)
		return nil
	})
}
