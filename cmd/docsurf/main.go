package main

import (
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/mgale/docsurf/internal/config"
	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	contentDir := flag.String("content", "", "load site content from this directory instead of the embedded bundle")
	flag.Parse()

	if *showVersion {
		fmt.Printf("docsurf %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The flag beats the config file.
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	var bundle *site.Bundle
	if cfg.Content.Dir != "" {
		bundle, err = site.LoadDir(cfg.Content.Dir)
	} else {
		bundle, err = site.LoadDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewApp(cfg, bundle))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
