package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/offbook/offbook"
	"github.com/offbook/offbook/internal/adapters/httpapi"
	"github.com/offbook/offbook/internal/adapters/scriptfile"
	"github.com/offbook/offbook/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve <script>",
	Short: "Start the remote-control HTTP server",
	Long: `Loads the script and exposes session control, the event stream, and
metrics over HTTP, so playback can be cued from off-camera (e.g. by the
script supervisor's laptop) while a separate surface renders the chat.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		debug, _ := cmd.Flags().GetBool("debug")

		script, err := scriptfile.New().Load(args[0])
		if err != nil {
			fmt.Printf("Error loading script: %v\n", err)
			os.Exit(1)
		}

		logger := logging.NewNop()
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		reg := prometheus.NewRegistry()
		session := offbook.New(
			offbook.WithLogger(logger),
			offbook.WithMetricsRegistry(reg),
		)

		handler := httpapi.NewHandler(session, script, reg, httpapi.WithLogger(logger))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Offbook Server on %s\n", srv.Addr)
			fmt.Printf("Serving script: %s\n", script.Title)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)
			session.Cancel()

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Offbook Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
