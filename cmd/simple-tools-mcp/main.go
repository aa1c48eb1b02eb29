package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"

	"github.com/flint-gui/simple-tools-mcp/internal/config"
	"github.com/flint-gui/simple-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("simple-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("simple-tools-mcp - tool-invocation server over stdin/stdout")
			fmt.Println()
			fmt.Println("Usage: simple-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DEBUG=true                   Enable debug logging (stderr)")
			fmt.Println("  TOOLS_MCP_CONFIG=<path>      Optional YAML config file")
			fmt.Println("  TOOLS_MCP_CALL_TIMEOUT=30s   Per-call timeout (default: none)")
			fmt.Println("  TOOLS_MCP_DISABLED_TOOLS=a;b Tools to leave unregistered")
			fmt.Println()
			fmt.Println("The server reads one JSON request per line on stdin and writes")
			fmt.Println("one JSON response per line on stdout.")
			return
		}
	}

	// stdout carries the protocol, so all logging goes to stderr
	ancli.SetupSlog()

	cfg, err := config.Load()
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to load config: %v\n", err))
		os.Exit(1)
	}
	if cfg.Debug {
		slog.Debug("starting", "version", Version, "buildTime", BuildTime, "commit", GitCommit)
	}

	srv := server.New(cfg)
	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
		ancli.PrintErr(fmt.Sprintf("server error: %v\n", err))
		os.Exit(1)
	}
}
