package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/emmabritton/countup/internal/countup"
	"github.com/emmabritton/countup/internal/prefs"
	"github.com/emmabritton/countup/internal/startdate"
	"github.com/emmabritton/countup/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// windowIdentity keys the window preference file on disk.
var windowIdentity = prefs.Identity{Vendor: "app", Author: "emmabritton", App: "countup"}

func main() {
	var dateArg string
	var configPath string
	var showVersion bool

	flag.StringVar(&dateArg, "date", "", "date to count from, format yyyy-mm-dd")
	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/countup/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Countup\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	if err := run(dateArg, configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dateArg, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Date problems are reported here, before any UI exists.
	start, err := startdate.Resolve(dateArg, startdate.RealClock{})
	if err != nil {
		return err
	}

	var window prefs.Window
	store, err := prefs.NewStore(windowIdentity)
	if err == nil {
		window, _ = store.Load(prefs.Window{})
	} else {
		// No config directory: run without remembering geometry.
		store = nil
	}

	ctrl := countup.New(start.Days, start.Label, start.Date, countup.Config{
		SecondsPerYear: cfg.SecondsPerYear,
	})

	m := tui.NewModel(ctrl, cfg.TickRate, tui.LoadTheme(cfg.Theme), store, window)
	if err := tui.Run(m); err != nil {
		return fmt.Errorf("running countup: %w", err)
	}
	return nil
}
