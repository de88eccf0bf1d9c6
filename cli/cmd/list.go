package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return withUnlocked(func(mgr *ferreus.Manager) error {
		var views []entryView
		err := mgr.WithData(func(data *ferreus.VaultData) error {
			for i := 0; i < data.Len(); i++ {
				entry, err := data.GetEntry(i)
				if err != nil {
					return err
				}
				views = append(views, viewOf(i, entry))
			}
			return nil
		})
		if err != nil {
			return err
		}

		if textOutput() {
			if len(views) == 0 {
				fmt.Println("Vault is empty")
				return nil
			}
			fmt.Printf("%4s  %-24s %-24s %s\n", "#", "ACCOUNT", "USERNAME", "UPDATED")
			for _, v := range views {
				printEntryLine(v)
			}
			return nil
		}
		return render(views)
	})
}
