package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/landing/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page locally",
	Long: `Starts an HTTP server that renders the landing page on every request and
serves the static and content directories next to it. With live reload on,
browsers reload whenever a file under those directories changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("live", false, "enable live reload (overrides server.live_reload)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("live") {
		cfg.Server.LiveReload, _ = cmd.Flags().GetBool("live")
	}

	base, err := cfg.Server.Base()
	if err != nil {
		return err
	}

	logger := newLogger(false)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var live *server.LiveReload
	if cfg.Server.LiveReload {
		live, err = server.NewLiveReload(logger, existingDirs(cfg.Server.ContentDir, cfg.Server.StaticDir)...)
		if err != nil {
			return fmt.Errorf("starting live reload: %w", err)
		}
		defer live.Close()
		go live.Run(ctx)
	}

	srv := server.New(server.Config{
		Port:          cfg.Server.Port,
		AllowAll:      cfg.Server.AllowAllOrigins,
		StaticDir:     cfg.Server.StaticDir,
		StaticInclude: cfg.Server.StaticInclude,
		ContentDir:    cfg.Server.ContentDir,
		BaseURL:       base,
	}, newBuilder(cfg, nil, live != nil, logger), live, logger)

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "landing %s serving at http://localhost:%d\n", Version, cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "  Content: %s\n", cfg.ContentURL)
	if live != nil {
		fmt.Fprintln(os.Stderr, "  Live reload: on")
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// existingDirs drops directories that are not present so live reload can
// start before a static directory exists.
func existingDirs(dirs ...string) []string {
	var out []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
