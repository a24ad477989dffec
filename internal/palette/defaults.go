package palette

import "github.com/tabdeck/tabdeck/internal/browser"

// DefaultActions builds the static command set. The pin and mute entries
// flip against the active tab snapshot, so the list is regenerated on every
// aggregation pass rather than cached.
func DefaultActions(active browser.Tab) []Action {
	pinTitle, pinDesc := "Pin Tab", "Pin the current tab"
	if active.Pinned {
		pinTitle, pinDesc = "Unpin Tab", "Unpin the current tab"
	}
	muteTitle, muteDesc := "Mute Tab", "Mute the current tab"
	if active.Muted {
		muteTitle, muteDesc = "Unmute Tab", "Unmute the current tab"
	}

	metas := []Meta{
		{Title: "New Tab", Description: "Open a new tab", Verb: "new-tab", Category: "Tab", Emoji: "➕", Shortcut: []string{"Ctrl", "T"}},
		{Title: "Close Tab", Description: "Close the current tab", Verb: "close-tab", Category: "Tab", Emoji: "❌", Shortcut: []string{"Ctrl", "W"}},
		{Title: "Duplicate Tab", Description: "Duplicate the current tab", Verb: "duplicate-tab", Category: "Tab", Emoji: "\U0001f4d1"},
		{Title: "Reload Tab", Description: "Reload the current tab", Verb: "reload-tab", Category: "Tab", Emoji: "\U0001f504", Shortcut: []string{"Ctrl", "R"}},
		{Title: pinTitle, Description: pinDesc, Verb: "pin-tab", Category: "Tab", Emoji: "\U0001f4cc"},
		{Title: muteTitle, Description: muteDesc, Verb: "mute-tab", Category: "Tab", Emoji: "\U0001f507"},
		{Title: "New Window", Description: "Open a new window", Verb: "new-window", Category: "Window", Emoji: "\U0001fa9f", Shortcut: []string{"Ctrl", "N"}},
		{Title: "New Incognito Window", Description: "Open a new incognito window", Verb: "new-incognito-window", Category: "Window", Emoji: "\U0001f575", Shortcut: []string{"Ctrl", "Shift", "N"}},
		{Title: "Close Window", Description: "Close the current window", Verb: "close-window", Category: "Window", Emoji: "\U0001f6aa", Shortcut: []string{"Ctrl", "Shift", "W"}},
		{Title: "Go Back", Description: "Go back in history", Verb: "go-back", Category: "Navigation", Emoji: "⬅", Shortcut: []string{"Alt", "Left"}},
		{Title: "Go Forward", Description: "Go forward in history", Verb: "go-forward", Category: "Navigation", Emoji: "➡", Shortcut: []string{"Alt", "Right"}},
		{Title: "Go Home", Description: "Go to the homepage", Verb: "go-home", Category: "Navigation", Emoji: "\U0001f3e0"},
		{Title: "Create Bookmark", Description: "Bookmark the current page", Verb: "create-bookmark", Category: "Bookmark", Emoji: "⭐", Shortcut: []string{"Ctrl", "D"}},
		{Title: "Open Bookmarks Manager", Description: "Open the bookmarks manager", Verb: "open-bookmarks-manager", Category: "Bookmark", Emoji: "\U0001f4da", Shortcut: []string{"Ctrl", "Shift", "O"}},
		{Title: "Open History", Description: "Open the history page", Verb: "open-history", Category: "History", Emoji: "\U0001f4dc", Shortcut: []string{"Ctrl", "H"}},
		{Title: "Clear History", Description: "Clear all browsing history", Verb: "clear-history", Category: "History", Emoji: "\U0001f9f9"},
		{Title: "Clear Browsing Data", Description: "Clear cache, cookies and history", Verb: "clear-browsing-data", Category: "Privacy", Emoji: "\U0001f9fd"},
		{Title: "Clear Cache", Description: "Clear the browser cache", Verb: "clear-cache", Category: "Privacy", Emoji: "\U0001f5c2"},
		{Title: "Clear Cookies", Description: "Clear all cookies", Verb: "clear-cookies", Category: "Privacy", Emoji: "\U0001f36a"},
		{Title: "Open Settings", Description: "Open the settings page", Verb: "open-settings", Category: "Browser", Emoji: "⚙"},
		{Title: "Open Extensions", Description: "Open the extensions page", Verb: "open-extensions", Category: "Browser", Emoji: "\U0001f9e9"},
		{Title: "Open Downloads", Description: "Open the downloads page", Verb: "open-downloads", Category: "Browser", Emoji: "\U0001f4e5", Shortcut: []string{"Ctrl", "J"}},
		{Title: "Zoom In", Description: "Increase the page zoom", Verb: "zoom-in", Category: "View", Emoji: "\U0001f50d", Shortcut: []string{"Ctrl", "+"}},
		{Title: "Zoom Out", Description: "Decrease the page zoom", Verb: "zoom-out", Category: "View", Emoji: "\U0001f50e", Shortcut: []string{"Ctrl", "-"}},
		{Title: "Reset Zoom", Description: "Reset the page zoom", Verb: "zoom-reset", Category: "View", Emoji: "\U0001f3af", Shortcut: []string{"Ctrl", "0"}},
		{Title: "Toggle Fullscreen", Description: "Enter or leave fullscreen", Verb: "fullscreen", Category: "View", Emoji: "\U0001f5b5", Shortcut: []string{"F11"}},
		{Title: "Find in Page", Description: "Search within the current page", Verb: "find-in-page", Category: "Page", Emoji: "\U0001f50d", Shortcut: []string{"Ctrl", "F"}},
		{Title: "Print Page", Description: "Print the current page", Verb: "print-page", Category: "Page", Emoji: "\U0001f5a8", Shortcut: []string{"Ctrl", "P"}},
		{Title: "Save Page", Description: "Save the current page", Verb: "save-page", Category: "Page", Emoji: "\U0001f4be", Shortcut: []string{"Ctrl", "S"}},
		{Title: "Copy URL", Description: "Copy the page URL to the clipboard", Verb: "copy-url", Category: "Page", Emoji: "\U0001f517"},
		{Title: "Copy Title", Description: "Copy the page title to the clipboard", Verb: "copy-title", Category: "Page", Emoji: "\U0001f4cb"},
		{Title: "View Source", Description: "View the page source", Verb: "view-source", Category: "Developer", Emoji: "\U0001f4c4", Shortcut: []string{"Ctrl", "U"}},
		{Title: "Open Dev Tools", Description: "Open the developer tools", Verb: "open-dev-tools", Category: "Developer", Emoji: "\U0001f6e0", Shortcut: []string{"F12"}},
		{Title: "Inspect Element", Description: "Inspect the current element", Verb: "inspect-element", Category: "Developer", Emoji: "\U0001f50e"},
		{Title: "Open Console", Description: "Open the JavaScript console", Verb: "console", Category: "Developer", Emoji: "\U0001f4df"},
		{Title: "Open Network Tab", Description: "Open the network panel", Verb: "network-tab", Category: "Developer", Emoji: "\U0001f310"},
		{Title: "Open Performance Tab", Description: "Open the performance panel", Verb: "performance-tab", Category: "Developer", Emoji: "⚡"},
		{Title: "Open Task Manager", Description: "Open the browser task manager", Verb: "task-manager", Category: "Developer", Emoji: "\U0001f4ca"},
	}

	actions := make([]Action, 0, len(metas))
	for _, meta := range metas {
		meta.ID = "static-" + meta.Verb
		actions = append(actions, Static{Meta: meta})
	}
	return actions
}
