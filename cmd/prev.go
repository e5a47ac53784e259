package cmd

import (
	"github.com/spf13/cobra"
)

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Switch to the previous layout",
	Long:  "Switch to the layout before the current one, wrapping around at the start of the catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		if err := e.ctl.Prev(); err != nil {
			return err
		}
		return printCurrent(e)
	},
}

func init() {
	rootCmd.AddCommand(prevCmd)
}
