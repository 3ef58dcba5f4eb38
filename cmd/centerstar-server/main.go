// Command centerstar-server provides a REST API for center-star alignment.
//
// Usage:
//
//	centerstar-server [options]
//
// Options:
//
//	-settings  Settings file (yaml, json or toml)
//	-port      Port to listen on (default: 8080)
//	-host      Host to bind to (default: localhost)
//
// Every setting can also be given in the environment, e.g.
// CENTERSTAR_GAP=-3 or CENTERSTAR_SERVER_PORT=9000.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/aria-lang/centerstar-go/api/handlers"
	"github.com/aria-lang/centerstar-go/internal/config"
)

func main() {
	flags := pflag.NewFlagSet("centerstar-server", pflag.ExitOnError)
	settingsPath := flags.String("settings", "", "Settings file (yaml, json or toml)")
	flags.Int("port", 8080, "Port to listen on")
	flags.String("host", "localhost", "Host to bind to")
	flags.Parse(os.Args[1:])

	v := config.New()
	v.BindPFlag("server.port", flags.Lookup("port"))
	v.BindPFlag("server.host", flags.Lookup("host"))
	if *settingsPath != "" {
		if err := config.ReadSettings(v, *settingsPath); err != nil {
			log.Fatal(err)
		}
	}

	c, err := config.Load(v)
	if err != nil {
		log.Fatalf("Invalid settings: %v\n", err)
	}
	defaults, err := c.Options()
	if err != nil {
		log.Fatalf("Invalid settings: %v\n", err)
	}

	addr := c.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(defaults),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("Center-star API server starting on http://%s (%s)\n", addr, defaults.Scoring)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
