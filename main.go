package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CristiGvl/picoCPUProbe/api"
	"github.com/CristiGvl/picoCPUProbe/internal/platform"
	"github.com/CristiGvl/picoCPUProbe/internal/report"
	"github.com/CristiGvl/picoCPUProbe/internal/snapshot"
)

func main() {
	// Parse command line flags
	port := flag.String("port", "8080", "Port to run the server on")
	bind := flag.String("bind", "0.0.0.0", "IP address to bind the server to")
	text := flag.Bool("text", false, "Print a one-shot text report to stdout and exit")
	flag.Parse()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	// One-shot mode: capture, render, exit
	if *text {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		snap, err := snapshot.Capture(ctx)
		if err != nil {
			log.Fatalf("Capture failed: %v", err)
		}
		if err := report.Render(os.Stdout, snap); err != nil {
			log.Fatalf("Report rendering failed: %v", err)
		}
		return
	}

	// Create and start the API server
	server, err := api.NewServer()
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	// Start the server
	log.Printf("Starting picoCPUProbe server on %s:%s", *bind, *port)
	log.Fatal(server.Start(*bind + ":" + *port))
}
