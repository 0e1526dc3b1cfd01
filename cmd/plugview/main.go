package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plugview/plugview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	dataPath := flag.String("data", "", "plugin dataset path (defaults to Plugins.json beside the binary)")
	theme := flag.String("theme", "", "theme name (optional)")
	flag.Parse()

	opts := app.Options{
		ConfigPath: *configPath,
		DataPath:   *dataPath,
		Theme:      *theme,
	}

	if err := app.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "plugview: %v\n", err)
		return 1
	}
	return 0
}
