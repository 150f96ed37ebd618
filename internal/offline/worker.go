// Package offline implements the offline resource cache: a small HTTP service
// that stores the game's static files at install time and serves them from
// the cache afterwards, passing everything else through to the origin.
package offline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// Bucket is the default cache bucket name. Bump it to invalidate old copies.
const Bucket = "floaty-cloud-v2"

// DefaultManifest lists the resources cached at install time.
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/style.css",
	"/app.js",
	"/manifest.json",
}

// maxBodySize caps a single cached resource.
const maxBodySize = 8 << 20

// Entry is one cached response.
type Entry struct {
	Path        string
	ContentType string
	Status      int
	Body        []byte
}

// Cache stores entries grouped in named buckets.
type Cache interface {
	PutEntry(ctx context.Context, bucket string, e Entry) error
	GetEntry(ctx context.Context, bucket, path string) (Entry, bool, error)
}

// Options configures a Worker.
type Options struct {
	Upstream *url.URL
	Cache    Cache
	Bucket   string       // Defaults to Bucket
	Manifest []string     // Defaults to DefaultManifest
	Client   *http.Client // Used by Install; defaults to a 10s timeout client
	Logger   *log.Logger
}

// Worker is the cache-first HTTP handler.
type Worker struct {
	upstream *url.URL
	cache    Cache
	bucket   string
	manifest []string
	client   *http.Client
	proxy    *httputil.ReverseProxy
	logger   *log.Logger
}

// NewWorker creates a worker in front of opts.Upstream.
func NewWorker(opts Options) (*Worker, error) {
	if opts.Upstream == nil {
		return nil, errors.New("offline: upstream URL is required")
	}
	if opts.Cache == nil {
		return nil, errors.New("offline: cache is required")
	}

	w := &Worker{
		upstream: opts.Upstream,
		cache:    opts.Cache,
		bucket:   opts.Bucket,
		manifest: opts.Manifest,
		client:   opts.Client,
		proxy:    httputil.NewSingleHostReverseProxy(opts.Upstream),
		logger:   opts.Logger,
	}
	if w.bucket == "" {
		w.bucket = Bucket
	}
	if len(w.manifest) == 0 {
		w.manifest = DefaultManifest
	}
	if w.client == nil {
		w.client = &http.Client{Timeout: 10 * time.Second}
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}
	return w, nil
}

// Install fetches every manifest resource from the upstream and stores it.
// Resources fail independently: failures are logged and skipped.
// Returns the number of cached resources; the error is only set when ctx ends.
func (w *Worker) Install(ctx context.Context) (int, error) {
	cached := 0
	for _, path := range w.manifest {
		if err := ctx.Err(); err != nil {
			return cached, err
		}

		entry, err := w.fetch(ctx, path)
		if err != nil {
			w.logger.Warn("could not fetch resource", "path", path, "error", err)
			continue
		}
		if err := w.cache.PutEntry(ctx, w.bucket, entry); err != nil {
			w.logger.Warn("could not cache resource", "path", path, "error", err)
			continue
		}
		cached++
		w.logger.Debug("cached resource", "path", path, "bytes", len(entry.Body))
	}

	w.logger.Info("install finished", "bucket", w.bucket, "cached", cached, "total", len(w.manifest))
	return cached, nil
}

// fetch downloads one resource from the upstream.
func (w *Worker) fetch(ctx context.Context, path string) (Entry, error) {
	target := w.upstream.ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return Entry{}, fmt.Errorf("offline: cannot build request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("offline: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Entry{}, fmt.Errorf("offline: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Entry{}, fmt.Errorf("offline: cannot read body: %w", err)
	}

	return Entry{
		Path:        path,
		ContentType: resp.Header.Get("Content-Type"),
		Status:      resp.StatusCode,
		Body:        body,
	}, nil
}

// ServeHTTP answers GET and HEAD requests from the cache when possible and
// passes every other request through to the upstream. Entries are keyed by
// bare path, so a request carrying a query string always goes upstream.
func (w *Worker) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.RawQuery == "" {
		entry, ok, err := w.cache.GetEntry(r.Context(), w.bucket, r.URL.Path)
		if err != nil {
			w.logger.Warn("cache lookup failed", "path", r.URL.Path, "error", err)
		}
		if ok {
			w.serveEntry(rw, r, entry)
			return
		}
	}

	w.logger.Debug("pass through", "method", r.Method, "path", r.URL.Path)
	w.proxy.ServeHTTP(rw, r)
}

// serveEntry writes a cached response.
func (w *Worker) serveEntry(rw http.ResponseWriter, r *http.Request, e Entry) {
	if e.ContentType != "" {
		rw.Header().Set("Content-Type", e.ContentType)
	}
	rw.Header().Set("X-Floaty-Cache", "hit")
	http.ServeContent(rw, r, "", time.Time{}, bytes.NewReader(e.Body))
}
