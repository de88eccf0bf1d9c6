package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	ferreus "github.com/Quabena/ferreus-vault"
)

// entryView is the listing shape for an entry. Passwords are excluded;
// only get --show-password prints one.
type entryView struct {
	Index       int       `json:"index" yaml:"index"`
	AccountName string    `json:"account_name" yaml:"account_name"`
	Username    string    `json:"username" yaml:"username"`
	Notes       string    `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

func viewOf(index int, e ferreus.Entry) entryView {
	return entryView{
		Index:       index,
		AccountName: e.AccountName,
		Username:    e.Username,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// render writes v to stdout in the configured output format. The text
// format is handled by each command; render covers json and yaml.
func render(v interface{}) error {
	switch viper.GetString("output") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", viper.GetString("output"))
	}
}

func textOutput() bool {
	return viper.GetString("output") == "text" || viper.GetString("output") == ""
}

func printEntryLine(v entryView) {
	fmt.Printf("%4d  %-24s %-24s %s\n", v.Index, v.AccountName, v.Username, v.UpdatedAt.Format("2006-01-02 15:04"))
}
