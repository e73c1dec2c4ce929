package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"autosearch/internal/config"
	"autosearch/internal/people"
	"autosearch/internal/ui"
)

func main() {
	// Parse command line arguments
	configPath := flag.StringP("config", "c", "", "Config file (default: user config dir)")
	filter := flag.String("filter", "", "Filter mode: substring or fuzzy")
	maxResults := flag.Int("max-results", 0, "Rows shown in the results popup")
	logPath := flag.String("log", "", "Log file (default from config)")
	writeConfig := flag.Bool("write-config", false, "Write the effective config to the config file and exit")
	flag.Parse()

	// Load configuration
	configSvc := config.NewConfigService()
	if *configPath != "" {
		configSvc = config.NewConfigServiceAt(*configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the file
	if *filter != "" {
		cfg.Filter = *filter
	}
	if *maxResults != 0 {
		cfg.MaxResults = *maxResults
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error in options: %v\n", err)
		os.Exit(1)
	}

	if *writeConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configSvc.Path())
		return
	}

	// Set up logging
	logFile, err := tea.LogToFile(cfg.LogFile, "peoplesearch")
	if err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	source, err := people.FromConfig(cfg.People)
	if err != nil {
		fmt.Printf("Error in config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	log.Printf("Starting with %d people, filter=%s", len(source), cfg.Filter)

	// Create UI model
	uiModel, err := ui.NewModel(cfg, source)
	if err != nil {
		fmt.Printf("Error creating UI: %v\n", err)
		os.Exit(1)
	}

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
