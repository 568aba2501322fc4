package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/c360studio/semstreams/metric"
	"github.com/c360studio/semstreams/pkg/worker"

	"github.com/dbpedia-vi/vikb/rdf"
)

// LoadResult records the outcome of loading one RDF file.
type LoadResult struct {
	Path       string        `json:"file_path"`
	Success    bool          `json:"success"`
	Statements int64         `json:"statements_loaded"`
	Duration   time.Duration `json:"loading_time"`
	Err        error         `json:"-"`
}

// LoaderStats aggregates over a loading run.
type LoaderStats struct {
	FilesProcessed  int           `json:"total_files_processed"`
	StatementsAdded int64         `json:"total_statements_loaded"`
	TotalDuration   time.Duration `json:"total_loading_time"`
	Successes       int           `json:"successful_loads"`
	Failures        int           `json:"failed_loads"`
}

// Loader drives batch statement loading into one repository.
type Loader struct {
	client      *Client
	repository  string
	concurrency int
	logger      *slog.Logger
	metrics     *metric.MetricsRegistry

	mu    sync.Mutex
	stats LoaderStats
}

// NewLoader builds a Loader over a store client.
func NewLoader(client *Client, repository string, concurrency int, opts ...LoaderOption) *Loader {
	l := &Loader{
		client:      client,
		repository:  repository,
		concurrency: concurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the structured logger.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithLoaderMetrics registers loading-pool metrics on the registry.
func WithLoaderMetrics(registry *metric.MetricsRegistry) LoaderOption {
	return func(l *Loader) { l.metrics = registry }
}

// LoadFile validates and loads one RDF file, counting the statements
// added by comparing repository size before and after.
func (l *Loader) LoadFile(ctx context.Context, path, graphContext string) LoadResult {
	start := time.Now()
	result := LoadResult{Path: path}

	format := rdf.FormatForPath(path)

	// Parse locally first so a corrupt file never reaches the store.
	if _, err := rdf.DecodeFile(path); err != nil {
		result.Err = fmt.Errorf("validate %s: %w", path, err)
		result.Duration = time.Since(start)
		l.record(result)
		return result
	}

	before, err := l.client.Size(ctx, l.repository)
	if err != nil {
		l.logger.Warn("size probe failed", "repository", l.repository, "error", err)
	}

	if err := l.client.LoadFile(ctx, l.repository, path, format, graphContext); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		l.record(result)
		return result
	}

	after, err := l.client.Size(ctx, l.repository)
	if err != nil {
		l.logger.Warn("size probe failed", "repository", l.repository, "error", err)
	}

	result.Success = true
	result.Statements = after - before
	result.Duration = time.Since(start)
	l.record(result)
	l.logger.Info("file loaded",
		"path", path,
		"statements", result.Statements,
		"duration", result.Duration)
	return result
}

// LoadGraph serializes an in-memory graph and posts it straight to the
// repository, skipping the file round trip.
func (l *Loader) LoadGraph(ctx context.Context, g *rdf.Graph, graphContext string) LoadResult {
	start := time.Now()
	result := LoadResult{Path: "<memory>"}

	data, err := g.Serialize(rdf.FormatNTriples)
	if err != nil {
		result.Err = fmt.Errorf("serialize graph: %w", err)
		result.Duration = time.Since(start)
		l.record(result)
		return result
	}

	before, err := l.client.Size(ctx, l.repository)
	if err != nil {
		l.logger.Warn("size probe failed", "repository", l.repository, "error", err)
	}

	if err := l.client.LoadBytes(ctx, l.repository, []byte(data), rdf.FormatNTriples, graphContext); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		l.record(result)
		return result
	}

	after, err := l.client.Size(ctx, l.repository)
	if err != nil {
		l.logger.Warn("size probe failed", "repository", l.repository, "error", err)
	}

	result.Success = true
	result.Statements = after - before
	result.Duration = time.Since(start)
	l.record(result)
	l.logger.Info("graph loaded",
		"triples", g.Len(),
		"statements", result.Statements,
		"duration", result.Duration)
	return result
}

// LoadDirectory loads every recognized RDF file under dir concurrently
// and returns per-file results ordered by path. Individual failures do
// not abort the batch.
func (l *Loader) LoadDirectory(ctx context.Context, dir, graphContext string) ([]LoadResult, error) {
	paths, err := collectRDFFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	if _, err := l.client.CreateRepository(ctx, l.repository); err != nil {
		return nil, fmt.Errorf("ensure repository %s: %w", l.repository, err)
	}

	results := make([]LoadResult, 0, len(paths))
	var resultsMu sync.Mutex

	var poolOpts []worker.Option[string]
	if l.metrics != nil {
		poolOpts = append(poolOpts, worker.WithMetricsRegistry[string](l.metrics, "store_loader"))
	}
	pool := worker.NewPool(l.concurrency, len(paths), func(ctx context.Context, path string) error {
		result := l.LoadFile(ctx, path, graphContext)
		resultsMu.Lock()
		results = append(results, result)
		resultsMu.Unlock()
		return result.Err
	}, poolOpts...)

	if err := pool.Start(ctx); err != nil {
		return nil, fmt.Errorf("start loading pool: %w", err)
	}
	for _, path := range paths {
		if err := pool.Submit(path); err != nil {
			l.logger.Warn("load submit failed", "path", path, "error", err)
		}
	}
	if err := pool.Stop(30 * time.Minute); err != nil {
		l.logger.Error("loading pool did not drain", "error", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// Stats returns a snapshot of the loader statistics.
func (l *Loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *Loader) record(result LoadResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.FilesProcessed++
	l.stats.TotalDuration += result.Duration
	if result.Success {
		l.stats.Successes++
		l.stats.StatementsAdded += result.Statements
	} else {
		l.stats.Failures++
	}
}

// collectRDFFiles lists loadable files directly under dir.
func collectRDFFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".ttl", ".nt", ".rdf", ".xml", ".n3":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
