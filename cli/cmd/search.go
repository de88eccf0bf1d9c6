package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries",
	Long:  "Case-insensitive search across account names, usernames and notes.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.ToLower(args[0])

	return withUnlocked(func(mgr *ferreus.Manager) error {
		var views []entryView
		err := mgr.WithData(func(data *ferreus.VaultData) error {
			// Walk by index so results carry usable positions.
			for i := 0; i < data.Len(); i++ {
				entry, err := data.GetEntry(i)
				if err != nil {
					return err
				}
				if strings.Contains(strings.ToLower(entry.AccountName), query) ||
					strings.Contains(strings.ToLower(entry.Username), query) ||
					strings.Contains(strings.ToLower(entry.Notes), query) {
					views = append(views, viewOf(i, entry))
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		if textOutput() {
			if len(views) == 0 {
				fmt.Println("No matches")
				return nil
			}
			for _, v := range views {
				printEntryLine(v)
			}
			return nil
		}
		return render(views)
	})
}
