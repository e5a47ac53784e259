package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Switch to the next layout",
	Long:  "Switch to the layout after the current one, wrapping around at the end of the catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		if err := e.ctl.Next(); err != nil {
			return err
		}
		return printCurrent(e)
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

// printCurrent reports the now-active layout after a navigation.
func printCurrent(e *env) error {
	rec, err := e.ctl.Current()
	if err != nil {
		return err
	}
	entry, err := e.ctl.Catalog().Find(rec.LayoutPath)
	if err != nil {
		fmt.Println(rec.LayoutPath)
		return nil
	}
	fmt.Println(entry.Name)
	return nil
}
