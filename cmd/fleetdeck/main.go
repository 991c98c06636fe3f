package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"fleetdeck/api"
	"fleetdeck/internal/config"
	"fleetdeck/internal/tui"
)

func main() {
	apiURL := flag.String("api", "", "control-plane API base URL (overrides config file and FLEETDECK_API)")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}

	client := api.NewClient(cfg.API.BaseURL)

	p := tea.NewProgram(tui.New(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
