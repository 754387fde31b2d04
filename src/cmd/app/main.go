package main

import (
	"log"
	"os"

	"greeter/src/internal/domain"
	"greeter/src/internal/service"
	"greeter/src/internal/service/config"
)

var Version = "1.0.0"

func main() {
	// Load Config
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	cfg.Version = Version

	// Initialize Context
	ctx := &domain.Context{
		Config: cfg,
		Logger: log.New(os.Stdout, "", log.LstdFlags),
	}

	// Create and Run Orchestrator
	orchestrator := service.CreateOrchestrator(ctx)
	if err := orchestrator.Run(); err != nil {
		log.Fatalf("Error running orchestrator: %v", err)
	}
}
