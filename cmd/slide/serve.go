package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/platform/tui"
	"github.com/vovakirdan/slide2048/internal/platform/ws"
)

var (
	flagSSHAddr     string
	flagWSAddr      string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH and WebSocket servers",
	Long: `Start servers that let remote players connect.

SSH players get the interactive menu in their terminal:
  ssh -p 23234 localhost

WebSocket clients speak JSON on /ws. Send {"type":"new"} to start, then
{"type":"move","dir":"left"} and so on. /healthz reports liveness.

Each player gets their own session. Results go to the shared database.
Pass an empty address to disable a server.

Examples:
  slide serve
  slide serve --ssh :2222 --ws :8080
  slide serve --ssh "" --ws :8080
  slide serve --host-key /path/to/key`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagWSAddr, "ws", "", "WebSocket server address (empty to disable)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if not exists)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagSSHAddr == "" && flagWSAddr == "" {
		fmt.Fprintln(os.Stderr, "Error: both --ssh and --ws are disabled")
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wsDone := make(chan error, 1)
	if flagWSAddr != "" {
		srv, err := ws.NewServer(ws.DefaultConfig(), store, logger.WithPrefix("ws"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating WebSocket server: %v\n", err)
			os.Exit(1)
		}
		go func() { wsDone <- srv.ListenAndServe(ctx, flagWSAddr) }()
	} else {
		wsDone <- nil
	}

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = flagIdleTimeout
		cfg.TickRate = flagFPS

		server, err := tui.NewSSHServer(cfg, store, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("SSH server listening on %s\n", cfg.Address)
		fmt.Printf("Connect with: ssh -p %s localhost\n", sshPort(cfg.Address))
		if flagWSAddr != "" {
			fmt.Printf("WebSocket server listening on %s/ws\n", flagWSAddr)
		}
		fmt.Println("Press Ctrl+C to stop")

		// Blocks until SIGINT/SIGTERM.
		if err := server.ListenAndServe(); err != nil {
			logger.Error("SSH server stopped", "error", err)
		}
		stop()
	} else {
		fmt.Printf("WebSocket server listening on %s/ws\n", flagWSAddr)
		fmt.Println("Press Ctrl+C to stop")
	}

	if err := <-wsDone; err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sshPort extracts the port from a listen address like ":23234".
func sshPort(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
