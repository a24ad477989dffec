package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck/internal/bookmarkfile"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a Netscape bookmark file into your favorite groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open bookmark file: %w", err)
			}
			defer f.Close()

			folders, err := bookmarkfile.Parse(f)
			if err != nil {
				return fmt.Errorf("failed to parse bookmark file: %w", err)
			}

			store, err := cli.Settings.LoadStore()
			if err != nil {
				return err
			}
			result := bookmarkfile.Import(store, folders)
			if err := cli.Settings.SaveStore(store); err != nil {
				return err
			}

			cli.Log.Info().
				Int("groups", result.GroupsCreated).
				Int("sites", result.SitesAdded).
				Int("skipped", result.SitesSkipped).
				Msg("import finished")
			fmt.Printf("Imported %d shortcuts into %d new groups (%d already present)\n",
				result.SitesAdded, result.GroupsCreated, result.SitesSkipped)
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var (
		icons      bool
		timestamps bool
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export your favorite groups as a Netscape bookmark file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				path, err = bookmarkfile.DefaultExportPath()
				if err != nil {
					return err
				}
			}

			store, err := cli.Settings.LoadStore()
			if err != nil {
				return err
			}

			opts := bookmarkfile.Options{IncludeIcons: icons}
			if timestamps {
				opts.Timestamp = time.Now()
			}

			if err := os.WriteFile(path, []byte(bookmarkfile.Serialize(store, opts)), 0644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("Exported %d groups to %s\n", len(store.Groups), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&icons, "icons", false, "include shortcut icons")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "include ADD_DATE attributes")
	return cmd
}
