package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	ferreus "github.com/Quabena/ferreus-vault"
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Estimate password strength",
	Long: `Prompt for a password and print an estimated strength score from
0 to 100, plus whether it meets the master password policy.`,
	RunE: runStrength,
}

func init() {
	rootCmd.AddCommand(strengthCmd)
}

func runStrength(cmd *cobra.Command, args []string) error {
	password, err := promptPassword("Password to check: ")
	if err != nil {
		return err
	}

	score := ferreus.EstimateStrength(password)
	fmt.Printf("Strength: %.0f/100\n", score)

	if err := ferreus.ValidateMasterPassword(password); err != nil {
		if errors.Is(err, ferreus.ErrInvalidPassword) {
			fmt.Println("Policy:   too weak for a master password (need 12+ chars and 3 of 4 character classes)")
			return nil
		}
		return err
	}
	fmt.Println("Policy:   acceptable as a master password")
	return nil
}
