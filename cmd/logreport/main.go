package main

import (
	"context"
	"fmt"
	"os"

	"logreport/internal/app"
	"logreport/internal/shared/configs"
)

func main() {
	// Load configuration from flags, environment and optional config file.
	cfg, err := configs.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	os.Exit(application.Run(context.Background()))
}
