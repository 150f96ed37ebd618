package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/floaty-cloud/internal/offline"
	"github.com/vovakirdan/floaty-cloud/internal/storage"
)

var (
	flagListen   string
	flagUpstream string
	flagBucket   string
	flagReset    bool
	flagMemory   bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Run the offline resource cache",
	Long: `Fetch the web build's static files from the upstream origin, store
them in the database and serve them cache-first. Requests for anything else
are passed through to the upstream unchanged.

Examples:
  floaty cache --upstream http://localhost:3000
  floaty cache --listen :8080 --upstream https://floaty.example.com
  floaty cache --upstream http://localhost:3000 --reset
  floaty cache --upstream http://localhost:3000 --memory`,
	Args: cobra.NoArgs,
	Run:  runCache,
}

func init() {
	cacheCmd.Flags().StringVar(&flagListen, "listen", envString("FLOATY_CACHE_LISTEN", ":8080"), "HTTP listen address")
	cacheCmd.Flags().StringVar(&flagUpstream, "upstream", envString("FLOATY_UPSTREAM", ""), "Origin serving the web build")
	cacheCmd.Flags().StringVar(&flagBucket, "bucket", offline.Bucket, "Cache bucket name")
	cacheCmd.Flags().BoolVar(&flagReset, "reset", false, "Drop the bucket before installing")
	cacheCmd.Flags().BoolVar(&flagMemory, "memory", false, "Keep the cache in memory instead of the database")
}

func runCache(_ *cobra.Command, _ []string) {
	if err := serveCache(newLogger(os.Stderr)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serveCache installs the manifest and serves it until interrupted.
func serveCache(logger *log.Logger) error {
	if flagUpstream == "" {
		return errors.New("--upstream is required")
	}
	upstream, err := url.Parse(flagUpstream)
	if err != nil || upstream.Scheme == "" || upstream.Host == "" {
		return fmt.Errorf("invalid upstream URL %q", flagUpstream)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache offline.Cache
	if flagMemory {
		cache = offline.NewMemoryCache()
	} else {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if flagReset {
			n, err := store.DropBucket(ctx, flagBucket)
			if err != nil {
				return err
			}
			logger.Info("dropped bucket", "bucket", flagBucket, "entries", n)
		}
		cache = store
	}

	worker, err := offline.NewWorker(offline.Options{
		Upstream: upstream,
		Cache:    cache,
		Bucket:   flagBucket,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	if _, err := worker.Install(ctx); err != nil {
		logger.Info("install interrupted", "error", err)
		return nil
	}

	srv := &http.Server{
		Addr:              flagListen,
		Handler:           worker,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("serving offline cache", "address", flagListen, "upstream", upstream.String())

	select {
	case <-ctx.Done():
		logger.Info("shutting down...")
	case err := <-errCh:
		return fmt.Errorf("cache server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
