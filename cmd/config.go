package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timeadair/internal/config"
)

// configCmd prints the resolved configuration and where it lives.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("Timer:\n")
		fmt.Printf("  Work duration:  %s\n", appConfig.Timer.WorkDuration)
		fmt.Printf("  Break duration: %s\n", appConfig.Timer.BreakDuration)
		fmt.Printf("Notifications:\n")
		fmt.Printf("  Enabled: %v\n", appConfig.Notifications.Enabled)
		fmt.Printf("  Sound:   %v\n", appConfig.Notifications.Sound)
		fmt.Printf("Theme:\n")
		fmt.Printf("  Fill:  %s\n", appConfig.Theme.ColorFill)
		fmt.Printf("  Empty: %s\n", appConfig.Theme.ColorEmpty)
		fmt.Printf("  Title: %s\n", appConfig.Theme.ColorTitle)
		fmt.Printf("  Help:  %s\n", appConfig.Theme.ColorHelp)

		return nil
	},
}
