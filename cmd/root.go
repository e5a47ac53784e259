package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "waybarctl",
	Short: "Layout and style switching for waybar",
	Long:  "waybarctl manages which waybar layout and style are active: it discovers layouts across the standard search directories, cycles or selects among them, and keeps the persisted state in sync with the files on disk.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPicker()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.SetHelpFunc(styledHelp)
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Short:  "Print this help message",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			styledHelp(rootCmd, nil)
			return nil
		},
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
