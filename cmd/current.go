package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var currentPaths bool

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active layout",
	Long:  "Show the active layout name, bootstrapping the state record from the installed configuration if needed.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		rec, err := e.ctl.Current()
		if err != nil {
			return err
		}
		if rec.LayoutPath == "" {
			return fmt.Errorf("no active layout recorded; run `waybarctl set` first")
		}

		if currentPaths {
			fmt.Println(rec.LayoutPath)
			fmt.Println(rec.StylePath)
			return nil
		}
		return printCurrent(e)
	},
}

func init() {
	currentCmd.Flags().BoolVarP(&currentPaths, "paths", "p", false, "Print the layout and style paths instead of the name")
	rootCmd.AddCommand(currentCmd)
}
