package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck/internal/settings"
)

func newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode [standard|favorites|minimal]",
		Short: "Show or set the start-page display mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			if len(args) == 0 {
				mode, err := cli.Settings.DisplayMode()
				if err != nil {
					return err
				}
				grid, err := cli.Settings.GridConfig(mode)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%dx%d, gap %d)\n", mode, grid.Rows, grid.Cols, grid.Gap)
				return nil
			}

			mode := settings.DisplayMode(args[0])
			switch mode {
			case settings.ModeStandard, settings.ModeFavorites, settings.ModeMinimal:
			default:
				return fmt.Errorf("unknown display mode %q", args[0])
			}
			return cli.Settings.SetDisplayMode(mode)
		},
	}
}
