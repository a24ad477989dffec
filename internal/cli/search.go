package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck/internal/browser"
	"github.com/tabdeck/tabdeck/internal/picker"
	"github.com/tabdeck/tabdeck/internal/search"
)

func newSearchCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search your site shortcuts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			query := strings.Join(args, " ")
			store, err := cli.Settings.LoadStore()
			if err != nil {
				return err
			}

			results := search.FuzzySearchSites(store, query)
			if len(results) == 0 {
				fmt.Printf("No shortcuts match %q\n", query)
				return nil
			}

			p := picker.New(results, store, query)
			final, err := tea.NewProgram(p).Run()
			if err != nil {
				return fmt.Errorf("picker failed: %w", err)
			}

			site := final.(picker.Picker).SelectedSite()
			if site == nil {
				return nil
			}
			if open {
				return browser.OpenURL(site.URL)
			}
			fmt.Println(site.URL)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "open the selected shortcut in the default browser")
	return cmd
}
