package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Quabena/ferreus-vault/internal/secure"
)

const defaultGeneratedLength = 24

var generateCmd = &cobra.Command{
	Use:   "generate [length]",
	Short: "Generate a random password",
	Long:  "Generate a random alphanumeric password from the OS CSPRNG. Default length is 24.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	length := defaultGeneratedLength
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return fmt.Errorf("invalid length %q", args[0])
		}
		length = parsed
	}

	password, err := secure.RandomString(length)
	if err != nil {
		return err
	}
	fmt.Println(password)
	return nil
}
