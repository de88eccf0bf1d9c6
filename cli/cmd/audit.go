package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Quabena/ferreus-vault/audit"
)

var auditLimit int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent audit events",
	Long:  "Read the audit log configured with --audit-log and print the most recent events.",
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().IntVar(&auditLimit, "limit", 20, "maximum number of events to show")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	path := viper.GetString("audit_log")
	if path == "" {
		return fmt.Errorf("no audit log configured; pass --audit-log")
	}

	logger, err := audit.NewFileLogger(path)
	if err != nil {
		return err
	}
	defer logger.Close()

	events, err := logger.Recent(auditLimit)
	if err != nil {
		return err
	}

	if !textOutput() {
		return render(events)
	}

	if len(events) == 0 {
		fmt.Println("No audit events")
		return nil
	}
	for _, e := range events {
		status := "ok"
		if !e.Success {
			status = "FAIL"
		}
		fmt.Printf("%s  %-14s %-4s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, status)
	}
	return nil
}
