// Package cli provides the command-line interface for tabdeck.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck/internal/browser"
	"github.com/tabdeck/tabdeck/internal/logging"
	"github.com/tabdeck/tabdeck/internal/palette"
	"github.com/tabdeck/tabdeck/internal/settings"
	"github.com/tabdeck/tabdeck/internal/tui"
	"github.com/tabdeck/tabdeck/internal/wallpaper"
)

// CLI bundles the stores and the browser session the commands operate on.
type CLI struct {
	Settings   *settings.Store
	Wallpapers *wallpaper.Store
	Session    *browser.Memory
	Browser    browser.Browser
	Log        zerolog.Logger
}

// NewCLI opens the settings and wallpaper stores at their default paths and
// starts an in-process browser session.
func NewCLI() (*CLI, error) {
	log := logging.NewFromEnv()

	settingsPath, err := settings.DefaultStorePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings path: %w", err)
	}
	settingsStore, err := settings.NewStore(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	wallpaperPath, err := wallpaper.DefaultStorePath()
	if err != nil {
		settingsStore.Close()
		return nil, fmt.Errorf("failed to resolve wallpaper path: %w", err)
	}
	wallpaperStore, err := wallpaper.NewStore(wallpaperPath)
	if err != nil {
		settingsStore.Close()
		return nil, fmt.Errorf("failed to open wallpaper store: %w", err)
	}

	session := browser.NewMemory()
	caps := session.Capabilities()
	// Clipboard verbs run on the host instead of the simulated page.
	caps.Page = browser.LocalPage{Tabs: caps.Tabs}

	return &CLI{
		Settings:   settingsStore,
		Wallpapers: wallpaperStore,
		Session:    session,
		Browser:    caps,
		Log:        log,
	}, nil
}

// Close releases both stores.
func (c *CLI) Close() error {
	err := c.Settings.Close()
	if werr := c.Wallpapers.Close(); err == nil {
		err = werr
	}
	return err
}

// NewRootCmd creates the root command. Running tabdeck without a subcommand
// opens the palette.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tabdeck",
		Short:   "A command palette and start page for your browsing session",
		Long:    "tabdeck keeps your tabs, bookmarks, history and site shortcuts one keystroke away: a fuzzy command palette over the whole session, plus a configurable start-page grid and wallpaper library.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()
			return runPalette(cli)
		},
	}

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newWallpaperCmd())
	rootCmd.AddCommand(newModeCmd())

	return rootCmd
}

func runPalette(cli *CLI) error {
	app := tui.NewApp(tui.AppParams{
		Aggregator: &palette.Aggregator{Browser: cli.Browser, Log: cli.Log},
		Dispatcher: &palette.Dispatcher{Browser: cli.Browser, Log: cli.Log},
		Log:        cli.Log,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("palette failed: %w", err)
	}
	if status := final.(tui.App).Status(); status != "" {
		fmt.Println(status)
	}
	return nil
}
