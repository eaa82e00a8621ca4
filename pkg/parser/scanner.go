package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/testatlas/core/pkg/domain"
)

const (
	// DefaultTimeout is the default scan timeout duration.
	DefaultTimeout = 5 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
	// DefaultMaxFileSize is the default maximum file size for scanning (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// DefaultSkipDirs contains directory names skipped during file discovery.
var DefaultSkipDirs = []string{
	"node_modules",
	".git",
	"vendor",
	"dist",
	"build",
	".next",
	"coverage",
	".cache",
}

// DefaultPatterns selects conventional test files when no patterns are
// configured.
var DefaultPatterns = []string{
	"**/*.test.{js,jsx,ts,tsx}",
	"**/*.spec.{js,jsx,ts,tsx}",
	"**/__tests__/**/*.{js,jsx,ts,tsx}",
}

var (
	// ErrScanCancelled is returned when scanning is cancelled via context.
	ErrScanCancelled = errors.New("scanner: scan cancelled")
	// ErrScanTimeout is returned when scanning exceeds the timeout duration.
	ErrScanTimeout = errors.New("scanner: scan timeout")
)

// ScanError is a non-fatal per-file error collected during a scan.
type ScanError struct {
	Path string
	Err  error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// ScanStats summarizes a scan operation.
type ScanStats struct {
	// FilesScanned is the number of test file candidates discovered.
	FilesScanned int
	// FilesParsed is the number of files successfully parsed.
	FilesParsed int
	// FilesFailed is the number of files that failed to parse or read.
	FilesFailed int
	// Duration is the total scan duration.
	Duration time.Duration
}

// ScanResult contains the outcome of a scan.
type ScanResult struct {
	Inventory *domain.Inventory
	Errors    []ScanError
	Stats     ScanStats
}

// ScanOptions configures a scan.
type ScanOptions struct {
	// ExcludeDirs are directory names to skip, combined with
	// DefaultSkipDirs.
	ExcludeDirs []string
	// MaxFileSize is the maximum file size in bytes; larger files are
	// skipped.
	MaxFileSize int64
	// ParseOptions are forwarded to every per-file Parse call.
	ParseOptions []Option
	// Patterns are doublestar globs selecting test files; empty uses
	// DefaultPatterns.
	Patterns []string
	// Timeout bounds the whole scan. Zero or negative uses DefaultTimeout.
	Timeout time.Duration
	// Workers is the number of concurrent file parsers. Zero or negative
	// uses runtime.GOMAXPROCS(0).
	Workers int
}

// ScanOption is a functional option for Scan.
type ScanOption func(*ScanOptions)

// WithWorkers sets the number of concurrent file parsers.
func WithWorkers(n int) ScanOption {
	return func(o *ScanOptions) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithTimeout sets the scan timeout duration.
func WithTimeout(d time.Duration) ScanOption {
	return func(o *ScanOptions) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithPatterns sets the glob patterns selecting test files.
func WithPatterns(patterns ...string) ScanOption {
	return func(o *ScanOptions) {
		o.Patterns = append(o.Patterns, patterns...)
	}
}

// WithExcludeDirs adds directory names to skip during discovery.
func WithExcludeDirs(dirs ...string) ScanOption {
	return func(o *ScanOptions) {
		o.ExcludeDirs = append(o.ExcludeDirs, dirs...)
	}
}

// WithMaxFileSize sets the maximum file size to process.
func WithMaxFileSize(size int64) ScanOption {
	return func(o *ScanOptions) {
		if size > 0 {
			o.MaxFileSize = size
		}
	}
}

// WithParseOptions forwards parse options to every file.
func WithParseOptions(opts ...Option) ScanOption {
	return func(o *ScanOptions) {
		o.ParseOptions = append(o.ParseOptions, opts...)
	}
}

// Scan walks the directory tree rooted at root on the OS filesystem and
// parses every matching test file concurrently.
func Scan(ctx context.Context, root string, opts ...ScanOption) (*ScanResult, error) {
	return ScanFS(ctx, os.DirFS(root), root, opts...)
}

// ScanFS is Scan over an arbitrary fs.FS; rootLabel only labels results.
// Per-file failures are collected in the result, never fatal: a broken file
// must not abort discovery for the rest of the tree.
func ScanFS(ctx context.Context, fsys fs.FS, rootLabel string, opts ...ScanOption) (*ScanResult, error) {
	options := &ScanOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.MaxFileSize <= 0 {
		options.MaxFileSize = DefaultMaxFileSize
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(ctx, options.Timeout)
	defer cancel()

	result := &ScanResult{
		Inventory: &domain.Inventory{RootPath: rootLabel, Files: []*domain.ParseResult{}},
		Errors:    []ScanError{},
	}

	files, discoveryErrs := discoverTestFiles(ctx, fsys, options)
	result.Errors = append(result.Errors, discoveryErrs...)
	result.Stats.FilesScanned = len(files)

	if len(files) > 0 {
		parsed, parseErrs := parseFilesParallel(ctx, fsys, files, options)
		result.Inventory.Files = parsed
		result.Errors = append(result.Errors, parseErrs...)
	}

	result.Stats.FilesParsed = len(result.Inventory.Files)
	result.Stats.FilesFailed = len(result.Errors)
	result.Stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrScanTimeout
		}
		return result, ErrScanCancelled
	}

	return result, nil
}

func discoverTestFiles(ctx context.Context, fsys fs.FS, options *ScanOptions) ([]string, []ScanError) {
	skipSet := buildSkipSet(append(append([]string{}, DefaultSkipDirs...), options.ExcludeDirs...))
	patterns := options.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	var (
		files []string
		errs  []ScanError
	)

	walkErr := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			errs = append(errs, ScanError{Path: p, Err: err})
			return nil
		}

		if d.IsDir() {
			if p != "." && skipSet[path.Base(p)] {
				return fs.SkipDir
			}
			return nil
		}

		if !isTestFileCandidate(p) || !matchesAnyPattern(p, patterns) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			errs = append(errs, ScanError{Path: p, Err: err})
			return nil
		}
		if info.Size() > options.MaxFileSize {
			return nil
		}

		files = append(files, p)
		return nil
	})

	if walkErr != nil && !errors.Is(walkErr, context.Canceled) && !errors.Is(walkErr, context.DeadlineExceeded) {
		errs = append(errs, ScanError{Path: ".", Err: walkErr})
	}

	return files, errs
}

func parseFilesParallel(ctx context.Context, fsys fs.FS, files []string, options *ScanOptions) ([]*domain.ParseResult, []ScanError) {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu       sync.Mutex
		results  = make([]*domain.ParseResult, 0, len(files))
		scanErrs []ScanError
	)

	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			res, err := parseOne(gCtx, fsys, file, options.ParseOptions)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				scanErrs = append(scanErrs, ScanError{Path: file, Err: err})
				return nil
			}
			results = append(results, res)
			return nil
		})
	}

	_ = g.Wait()

	// Goroutines finish in file-size order, not source order.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, scanErrs
}

func parseOne(ctx context.Context, fsys fs.FS, file string, parseOpts []Option) (*domain.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return ParseCtx(ctx, file, content, parseOpts...)
}

func buildSkipSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func isTestFileCandidate(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".js", ".jsx", ".ts", ".tsx":
		return true
	}
	return false
}

func matchesAnyPattern(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}
