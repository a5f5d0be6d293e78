package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pg360/cmd"
	"pg360/internal/api"
	"pg360/internal/auth"
	"pg360/internal/storage"
	"pg360/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if len(os.Args) > 1 {
		var err error
		switch os.Args[1] {
		case "set-password":
			err = cmd.SetPassword(os.Args[2:])
		case "logout":
			err = cmd.Logout(os.Args[2:])
		default:
			run(os.Args[1:])
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	run(nil)
}

func run(args []string) {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if config.ShowVersion {
		fmt.Println("pg360-admin", config.Version)
		return
	}

	// Route the standard logger to the debug log
	if err := os.MkdirAll(filepath.Dir(config.LogPath), 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFile, err := tea.LogToFile(config.LogPath, "pg360")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.Printf("starting pg360-admin %s against %s", config.Version, config.APIURL)

	creds, err := auth.LoadCredentials(config.AuthFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credentials: %v\n", err)
		os.Exit(1)
	}
	if creds == nil {
		fmt.Fprintln(os.Stderr, "ℹ  No credential file found, any username is accepted. Run `pg360-admin set-password` to set one.")
	}

	// Open local state
	if err := os.MkdirAll(filepath.Dir(config.StatePath), 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create state directory: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.Open(config.StatePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open state database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.NewClient(config.APIURL, api.WithTimeout(config.Timeout))

	// Create and run Bubble Tea app
	p := tea.NewProgram(ui.New(client, store, creds), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
