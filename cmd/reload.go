package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwel/waybarctl/internal/bar"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Signal the running bar to reload",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		return bar.New(e.cfg.Bar.Process).Reload()
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the bar process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		if err := bar.New(e.cfg.Bar.Process).Restart(); err != nil {
			return err
		}
		fmt.Printf("Restarted %s\n", e.cfg.Bar.Process)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reloadCmd)
	rootCmd.AddCommand(restartCmd)
}
