package app

import (
	"fmt"

	"github.com/plugview/plugview/internal/catalog"
	"github.com/plugview/plugview/internal/config"
	"github.com/plugview/plugview/internal/prefs"
	"github.com/plugview/plugview/internal/ui"
)

// Options configure the plugview application.
type Options struct {
	ConfigPath string
	DataPath   string // overrides config data_path
	PrefsPath  string // empty uses default ~/.config/plugview/prefs.toml
	Theme      string // overrides config and saved preference
}

// Run boots the plugview TUI and blocks until the user quits.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	dataPath := opts.DataPath
	if dataPath == "" {
		dataPath = cfg.DataFile()
	}

	// A failed load is not fatal: the UI starts with an empty dataset
	// and surfaces the error as a notification.
	records, loadErr := catalog.Load(dataPath)

	theme := opts.Theme
	if theme == "" {
		theme = cfg.Theme
	}
	if theme == "" {
		theme = userPrefs.Theme
	}

	uiOpts := ui.Options{
		Store:     catalog.NewStore(records),
		LoadErr:   loadErr,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
