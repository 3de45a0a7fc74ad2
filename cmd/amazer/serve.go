package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/amazer/internal/core"
	"github.com/vovakirdan/amazer/internal/platform/tui"
)

var (
	serveFlags      areaFlags
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the amazer SSH server",
	Long: `Start an SSH server that lets users browse areas remotely.

Each SSH connection gets its own interactive session. Saved areas are
archived in the shared database; nothing is written to the server's disk
otherwise.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.amazer/host_key

Without -s or -c every area is sized to fit the client terminal.

Examples:
  amazer serve                           # Listen on :23234 with auto-generated key
  amazer serve --ssh :2222               # Listen on port 2222
  amazer serve --host-key ./my_host_key  # Use specific host key
  amazer serve -g rooms -m emmure        # Start sessions with rooms and mazes

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveFlags.bind(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	area, err := serveFlags.resolve()
	if err != nil {
		fail("%v", err)
	}
	if !serveFlags.explicitSize() {
		area.Size = core.Size{}
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Area:        area,
		Logger:      logger.WithPrefix("amazer-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting amazer SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
