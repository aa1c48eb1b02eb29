// Command simple-tools-http serves the tool dispatcher over HTTP instead of
// stdio. Same registry, same response shapes; JSON bodies instead of stdin
// lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"

	"github.com/flint-gui/simple-tools-mcp/internal/config"
	"github.com/flint-gui/simple-tools-mcp/internal/server"
)

func main() {
	ancli.SetupSlog()

	cfg, err := config.Load()
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("failed to load config: %v\n", err))
		os.Exit(1)
	}
	if cfg.Token == "" {
		ancli.PrintWarn("MCP_TOKEN not set; /mcp endpoints will be open\n")
	}

	srv := server.New(cfg)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(cfg.Token),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() { shutdown.Monitor(cancel) }()
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			ancli.PrintErr(fmt.Sprintf("failed to shut down cleanly: %v\n", err))
		}
	}()

	slog.Info("listening", "port", cfg.Port)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		ancli.PrintErr(fmt.Sprintf("server error: %v\n", err))
		os.Exit(1)
	}
	ancli.PrintOK("server stopped\n")
}
