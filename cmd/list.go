package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List discoverable layouts",
	Long:    "List all layouts found across the search directories. The active layout is marked.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		entries, err := e.ctl.Catalog().List()
		if err != nil {
			return err
		}
		rec, err := e.ctl.Current()
		if err != nil {
			return err
		}

		switch listOutput {
		case "table":
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, " \tNAME\tPATH")
			for _, entry := range entries {
				marker := " "
				if entry.Path == rec.LayoutPath {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", marker, entry.Name, entry.Path)
			}
			return w.Flush()

		case "names":
			for _, entry := range entries {
				fmt.Println(entry.Name)
			}
			return nil

		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)

		case "yaml":
			return yaml.NewEncoder(os.Stdout).Encode(entries)

		default:
			return fmt.Errorf("unknown output format: %s", listOutput)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format: table, names, json, yaml")
	rootCmd.AddCommand(listCmd)
}
