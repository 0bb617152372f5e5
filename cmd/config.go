package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/khrees2412/careerpivot/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(titleStyle.Render("Configuration"))
		cmd.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		for _, key := range config.Keys() {
			cmd.Printf("%s %s\n", labelStyle.Render(key+":"), valueStyle.Render(config.Display(key)))
		}

		creds := config.MailCredentials()
		if creds.Sender != "" && creds.Password != "" && creds.Recipient != "" {
			cmd.Printf("\n%s %s\n", labelStyle.Render("Notifications:"), "✓ Configured")
		} else {
			cmd.Printf("\n%s %s\n", labelStyle.Render("Notifications:"), "✗ Not configured (submissions will be marked degraded)")
		}
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  careerpivot config set --key email_sender --value bot@example.com
  careerpivot config set --key email_recipient --value ops@example.com
  careerpivot config set --key archive_path --value ~/assessments.json
  careerpivot config set --key cors_origins --value http://localhost:3000,https://example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("both --key and --value are required")
		}

		if err := config.Set(key, value); err != nil {
			if errors.Is(err, config.ErrUnknownKey) {
				return fmt.Errorf("%w. Must be one of: %s", err, strings.Join(config.Keys(), ", "))
			}
			return fmt.Errorf("update config: %w", err)
		}

		cmd.Printf("✓ Configuration updated: %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
