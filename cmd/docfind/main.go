package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docfind"
	"github.com/fwojciec/docfind/bloom"
	"github.com/fwojciec/docfind/docx"
	"github.com/fwojciec/docfind/flock"
	"github.com/fwojciec/docfind/fs"
	"github.com/fwojciec/docfind/lru"
	"github.com/fwojciec/docfind/pdf"
	"github.com/fwojciec/docfind/search"
	dfslog "github.com/fwojciec/docfind/slog"
	"github.com/fwojciec/docfind/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path. DOCFIND_DB and --db take precedence.
	DBPath string

	// JSON configuration files consulted for flag defaults, in order.
	ConfigPaths []string

	// SQLite database backing the result cache. Opened by Run.
	DB *sqlite.DB

	// Cross-process lock on the database. Held for the duration of Run.
	Lock *flock.StoreLock

	// Input for the interactive command.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{defaultConfigPath},
		Stdin:       os.Stdin,
	}
}

// Close releases the database and the store lock.
func (m *Main) Close() error {
	var err error
	if m.DB != nil {
		err = m.DB.Close()
	}
	if m.Lock != nil && m.Lock.Locked() {
		if uerr := m.Lock.Unlock(); err == nil {
			err = uerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	stdin := m.Stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docfind"),
		kong.Description("Search PDF and DOCX documents for a keyword."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db_path": m.DBPath},
		kong.Configuration(kong.JSON, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docfind --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	formats := newRegistry(logger)
	deps.Formats = formats

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "formats" {
		return kongCtx.Run(deps)
	}

	defer m.Close()
	if err := m.open(ctx, cli.DB, logger); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCFIND_DB or --db to use a different cache path\n")
		return err
	}

	var cache docfind.ResultCache = sqlite.NewResultCache(m.DB)
	cache = dfslog.NewLoggingResultCache(cache, logger)
	cache = lru.NewResultCache(cache, lru.DefaultSize)
	deps.Cache = cache

	var opts *SearchOptions
	switch cmd {
	case "search":
		opts = &cli.Search.SearchOptions
	case "interactive":
		opts = &cli.Interactive.SearchOptions
	}
	if opts != nil {
		walker := fs.NewWalker(formats)
		walker.ContextSize = opts.Context
		walker.OnSkip = func(path string, err error) {
			logger.Warn("skipped", "path", path, "err", err)
		}

		keys, err := seedKeys(ctx, cache)
		if err != nil {
			return err
		}

		svc := search.NewService(cache, dfslog.NewLoggingWalker(walker, logger))
		svc.Keys = keys
		svc.Scoped = opts.Scoped
		deps.Search = dfslog.NewLoggingSearchService(svc, logger)
	}

	return kongCtx.Run(deps)
}

// open takes the store lock and opens the database at path. Whatever it
// acquires is released by Close, including on failure.
func (m *Main) open(ctx context.Context, path string, logger *slog.Logger) error {
	m.DB, m.Lock = nil, nil
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return docfind.Errorf(docfind.EUNAVAILABLE, "cannot create cache directory: %v", err)
		}
		m.Lock = flock.NewStoreLock(path)
		ok, err := m.Lock.TryLock()
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("cache store in use, waiting", "lock", m.Lock.Path())
			if err := m.Lock.Lock(ctx); err != nil {
				return err
			}
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return err
	}
	return nil
}

// newRegistry registers every supported document format.
func newRegistry(logger *slog.Logger) *fs.Registry {
	r := fs.NewRegistry()
	for _, ext := range pdf.Extensions {
		r.Register(ext, dfslog.NewLoggingDocumentSearcher(pdf.NewSearcher(), logger))
	}
	for _, ext := range docx.Extensions {
		r.Register(ext, dfslog.NewLoggingDocumentSearcher(docx.NewSearcher(), logger))
	}
	return r
}

// seedKeys loads every stored cache key into a new key filter.
func seedKeys(ctx context.Context, cache docfind.ResultCache) (*bloom.KeyFilter, error) {
	entries, err := cache.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	keys := bloom.NewKeyFilter(uint(max(2*len(entries), minFilterSize)), filterFalsePositiveRate)
	for _, e := range entries {
		keys.Add(e.Key)
	}
	return keys, nil
}

const (
	minFilterSize           = 1024
	filterFalsePositiveRate = 0.01
)

const defaultConfigPath = "~/.docfind/config.json"

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docfind.db"
	}
	return filepath.Join(home, ".docfind", "cache.db")
}
