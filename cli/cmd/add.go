package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
	"github.com/Quabena/ferreus-vault/internal/secure"
)

var (
	addUsername string
	addNotes    string
	addGenerate int
)

var addCmd = &cobra.Command{
	Use:   "add <account>",
	Short: "Add a credential entry",
	Long: `Add a credential entry for the named account. The entry password
is prompted for, or generated with --generate.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addUsername, "username", "u", "", "login username or email")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "free-form notes")
	addCmd.Flags().IntVarP(&addGenerate, "generate", "g", 0, "generate a random password of this length instead of prompting")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	account := args[0]

	return withUnlocked(func(mgr *ferreus.Manager) error {
		var entryPassword string
		if addGenerate > 0 {
			generated, err := secure.RandomString(addGenerate)
			if err != nil {
				return err
			}
			entryPassword = generated
		} else {
			prompted, err := promptPassword(fmt.Sprintf("Password for %s: ", account))
			if err != nil {
				return err
			}
			entryPassword = prompted
		}

		err := mgr.WithData(func(data *ferreus.VaultData) error {
			data.AddEntry(ferreus.NewEntry(account, addUsername, entryPassword, addNotes))
			return nil
		})
		if err != nil {
			return err
		}

		if err := mgr.Save(); err != nil {
			return err
		}

		if addGenerate > 0 {
			fmt.Printf("Added %s with generated password: %s\n", account, entryPassword)
		} else {
			fmt.Printf("Added %s\n", account)
		}
		return nil
	})
}
