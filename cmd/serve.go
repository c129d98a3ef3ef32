package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/killallgit/songid/api"
	"github.com/killallgit/songid/api/types"
	"github.com/killallgit/songid/internal/services/acoustid"
	"github.com/killallgit/songid/pkg/chromaprint"
	"github.com/killallgit/songid/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the identification API server",
	Long: `Start the Songid API server with the configured settings.

The server accepts audio uploads and identifies them against the AcoustID
database.

Example:
  songid serve
  songid serve --port 9090
  songid serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = config.GetString("server.host")
	}
	if serverPort == 0 {
		serverPort = config.GetInt("server.port")
	}

	fingerprinter := chromaprint.New(
		config.GetString("fpcalc.path"),
		config.GetDuration("fpcalc.timeout"),
	)
	if err := fingerprinter.ValidateBinary(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v - identification requests will fail\n", err)
	}

	client := acoustid.NewClient(acoustid.Config{
		BaseURL:           config.GetString("acoustid.base_url"),
		Timeout:           config.GetDuration("acoustid.timeout"),
		UserAgent:         config.GetString("acoustid.user_agent"),
		RequestsPerSecond: config.GetInt("acoustid.rate_limit"),
		BurstSize:         config.GetInt("acoustid.burst"),
	})

	deps := &types.Dependencies{
		Fingerprinter: fingerprinter,
		Lookup:        client,
		ClientKey:     config.GetString("acoustid.client_key"),
		TempDir:       config.GetString("storage.temp_dir"),
		MaxUploadSize: int64(config.GetInt("server.max_upload_size")),
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	srv := api.NewServer(address, deps)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Songid API listening on %s\n", address)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration("server.shutdown_timeout"))
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
