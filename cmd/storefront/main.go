package main

import (
	"context"
	"fmt"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/appcontext"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	manager    *config.Manager
	app        *appcontext.ApplicationContext
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Browse the catalog and manage the pending order from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		manager, err = config.NewManager(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		app, err = appcontext.NewApplicationContext(manager.Get())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (.env or yaml)")
	rootCmd.AddCommand(cartCmd, confirmCmd, cancelCmd, addCmd, removeCmd, productsCmd, loginCmd, logoutCmd, watchCmd)
}

// shutdown 指令成功或失敗都要釋放連線
func shutdown() error {
	if app == nil {
		return nil
	}
	err := app.Shutdown(context.Background())
	app = nil
	return err
}

func main() {
	err := rootCmd.Execute()
	if closeErr := shutdown(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "shutdown:", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
