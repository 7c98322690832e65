// Planka MCP server: exposes a Planka kanban instance to AI coding
// tools over the MCP stdio transport.
//
// Usage:
//
//	planka-mcp serve    # Start the MCP server (stdio transport)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roelven/another-planka-mcp/internal/config"
	plankaserver "github.com/roelven/another-planka-mcp/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("planka-mcp v%s\n", plankaserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	// Logs go to stderr so they don't interfere with MCP's stdio
	// transport on stdout.
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
	}))

	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	s, err := plankaserver.New(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	log.Info("starting MCP server", "version", plankaserver.Version)
	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `planka-mcp v%s — Planka kanban MCP server

Usage:
  planka-mcp serve    Start the MCP server (stdio transport)

Configuration (environment or .env file):
  PLANKA_BASE_URL     Planka instance URL (required)
  PLANKA_API_TOKEN    Bearer token, or
  PLANKA_API_KEY      API key, or
  PLANKA_EMAIL        + PLANKA_PASSWORD for login exchange
  PLANKA_TIMEOUT      HTTP timeout (seconds or Go duration, default 30s)

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "planka": {
        "command": "planka-mcp",
        "args": ["serve"]
      }
    }
  }
`, plankaserver.Version)
}
