package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwel/waybarctl/internal/bar"
	"github.com/cwel/waybarctl/internal/patch"
)

var updateNoRestart bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Reapply icon sizes and border radii",
	Long:  "Patch icon sizes into the module fragments and border radii into the dynamic stylesheet, then restart the bar so the changes take effect.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		size := patch.IconSize(e.cfg)
		if err := patch.UpdateIconSizes(e.paths.ModulesDir, size); err != nil {
			return err
		}

		radius := patch.BorderRadius(e.cfg)
		if err := patch.UpdateBorderRadius(e.paths.BorderRadiusCSS, radius); err != nil {
			return err
		}

		fmt.Printf("Applied icon size %d, border radius %dpt\n", size, radius)

		if updateNoRestart {
			return nil
		}
		return bar.New(e.cfg.Bar.Process).Restart()
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateNoRestart, "no-restart", false, "Patch files without restarting the bar")
	rootCmd.AddCommand(updateCmd)
}
