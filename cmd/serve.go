package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/showquotes/transcript-api/api"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/database"
	"github.com/showquotes/transcript-api/internal/services/sessions"
	"github.com/showquotes/transcript-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Transcript API server with the configured settings.

On startup the session data directory is wiped (unless disabled in
config): session datasets do not outlive the server.

Example:
  transcript-api serve
  transcript-api serve --port 9090
  transcript-api serve --host 0.0.0.0 --port 8081`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	registry, err := sessions.NewRegistry(cfg.Storage.DataDir, database.Options{
		MaxConnections: cfg.Storage.MaxConnections,
		LogQueries:     cfg.Storage.LogQueries,
	})
	if err != nil {
		return fmt.Errorf("failed to create session registry: %w", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			log.Printf("[WARN] closing session registry: %v", err)
		}
	}()

	if cfg.Storage.WipeOnStart {
		if err := registry.Reset(); err != nil {
			return fmt.Errorf("failed to reset session data: %w", err)
		}
		log.Printf("Session data directory %s wiped", cfg.Storage.DataDir)
	}

	server, err := api.NewServer(cfg.Server, &types.Dependencies{Sessions: registry})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Printf("Starting Transcript API server on %s:%d", cfg.Server.Host, cfg.Server.Port)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-stop:
		log.Println("Shutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	log.Println("Server gracefully stopped")
	return nil
}
