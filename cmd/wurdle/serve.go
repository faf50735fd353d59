package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wurdle/internal/httpapi"
	"github.com/vovakirdan/wurdle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagSessionTTL  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over SSH and HTTP",
	Long: `Start the wurdle servers.

Each SSH connection gets its own session with a word source picker.
The HTTP server exposes a JSON API; every game is a separate session.
An empty address disables that server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wurdle/host_key

Examples:
  wurdle serve                           # SSH on :23234 only
  wurdle serve --http :8080              # SSH on :23234 and HTTP on :8080
  wurdle serve --ssh "" --http :8080     # HTTP only

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP API address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagSessionTTL, "session-ttl", httpapi.DefaultSessionTTL, "How long HTTP games are kept, 0 to keep them forever")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: both --ssh and --http are empty")
	}

	deps, err := loadDeps()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.GetLevel(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	running := 0

	if flagSSHAddr != "" {
		srv, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: flagHostKey,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		}, deps, logger.WithPrefix("ssh"))
		if err != nil {
			return err
		}
		running++
		go func() { errCh <- srv.ListenAndServe(ctx) }()
	}

	if flagHTTPAddr != "" {
		api := httpapi.New(deps, httpapi.NewMemoryStore(flagSessionTTL), logger.WithPrefix("http"))
		running++
		go func() { errCh <- api.ListenAndServe(ctx, flagHTTPAddr) }()
	}

	logger.Info("press Ctrl+C to stop")

	// The first failure stops the other server too.
	var firstErr error
	for range running {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
