package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
)

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove an entry",
	Long: `Remove the entry at the given index. Entries after it shift down
by one; indices printed by an earlier list are stale after a removal.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	return withUnlocked(func(mgr *ferreus.Manager) error {
		var removed ferreus.Entry
		err := mgr.WithData(func(data *ferreus.VaultData) error {
			e, err := data.RemoveEntry(index)
			if err != nil {
				return err
			}
			removed = e
			return nil
		})
		if err != nil {
			return err
		}

		if err := mgr.Save(); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", removed.AccountName)
		return nil
	})
}
