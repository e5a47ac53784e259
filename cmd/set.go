package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <layout>",
	Short: "Activate a layout by name or path",
	Long:  "Activate the given layout. The argument may be a display name as shown by `waybarctl list`, or the full path of a layout file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		if err := e.ctl.Set(args[0]); err != nil {
			return err
		}
		fmt.Printf("Activated %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
