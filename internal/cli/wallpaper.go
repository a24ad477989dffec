package cli

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabdeck/tabdeck/internal/settings"
	"github.com/tabdeck/tabdeck/internal/wallpaper"
)

func parseTable(name string) (wallpaper.Table, error) {
	switch name {
	case "local":
		return wallpaper.TableLocal, nil
	case "recent":
		return wallpaper.TableRecent, nil
	case "favorite":
		return wallpaper.TableFavorite, nil
	default:
		return "", fmt.Errorf("unknown collection %q (want local, recent or favorite)", name)
	}
}

// loadPayload turns a CLI argument into a store payload: a leading # means a
// color, anything else is read as an image file.
func loadPayload(arg string) (wallpaper.Payload, error) {
	if strings.HasPrefix(arg, "#") {
		return wallpaper.Payload{Kind: wallpaper.KindColor, Color: arg}, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return wallpaper.Payload{}, fmt.Errorf("failed to read image: %w", err)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(arg))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return wallpaper.Payload{Kind: wallpaper.KindImage, MIME: mimeType, Data: data}, nil
}

func newWallpaperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallpaper",
		Short: "Manage the wallpaper collections",
	}

	var table string
	cmd.PersistentFlags().StringVarP(&table, "collection", "c", "local", "collection: local, recent or favorite")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List wallpapers in a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			tbl, err := parseTable(table)
			if err != nil {
				return err
			}
			records, err := cli.Wallpapers.List(tbl)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No wallpapers stored")
				return nil
			}
			for _, r := range records {
				switch r.Kind {
				case wallpaper.KindColor:
					fmt.Printf("%s  color  %s\n", r.ID, r.DisplayName())
				default:
					fmt.Printf("%s  %s  %d bytes  %s\n", r.ID, r.MIME, r.Size, r.DisplayName())
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <file-or-#color>",
		Short: "Add a wallpaper to a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			tbl, err := parseTable(table)
			if err != nil {
				return err
			}
			payload, err := loadPayload(args[0])
			if err != nil {
				return err
			}
			id, err := cli.Wallpapers.Add(tbl, payload)
			if errors.Is(err, wallpaper.ErrDuplicate) {
				return fmt.Errorf("already in the %s collection", table)
			}
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a wallpaper from a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			tbl, err := parseTable(table)
			if err != nil {
				return err
			}
			return cli.Wallpapers.Remove(tbl, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			tbl, err := parseTable(table)
			if err != nil {
				return err
			}
			return cli.Wallpapers.Clear(tbl)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "colors",
		Short: "Show the wallpaper color palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return err
			}
			defer cli.Close()

			var colors []string
			if err := cli.Settings.Get(settings.KeyWallpaperColors, &colors); err != nil {
				return err
			}
			for _, c := range colors {
				fmt.Println(c)
			}
			return nil
		},
	})

	return cmd
}
