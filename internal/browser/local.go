package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// LocalPage executes page verbs in the host environment instead of a content
// script. Only the clipboard verbs have a terminal equivalent; everything
// else is acknowledged without effect, matching the content handler's
// tolerance for verbs it cannot perform.
type LocalPage struct {
	Tabs Tabs
}

func (p LocalPage) Run(ctx context.Context, tabID int, action string) error {
	switch action {
	case "copy-url", "copy-title":
		tabs, err := p.Tabs.Query(ctx)
		if err != nil {
			return err
		}
		for _, t := range tabs {
			if t.ID == tabID {
				text := t.URL
				if action == "copy-title" {
					text = t.Title
				}
				return clipboard.WriteAll(text)
			}
		}
		return fmt.Errorf("tab %d not found", tabID)
	default:
		return nil
	}
}

// OpenURL opens a URL in the default system browser.
func OpenURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
	return cmd.Start()
}
