package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docfind"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Cache   docfind.ResultCache
	Search  docfind.SearchService
	Formats docfind.FormatRegistry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"DOCFIND_DB" default:"${db_path}" help:"Path to the result cache database"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Search      SearchCmd      `cmd:"" help:"Search a directory for a keyword"`
	Interactive InteractiveCmd `cmd:"" help:"Search a directory for each keyword read from stdin"`
	Cache       CacheCmd       `cmd:"" help:"Inspect or clear the result cache"`
	Formats     FormatsCmd     `cmd:"" help:"List supported document formats"`
}

// SearchOptions are the flags shared by the search commands.
type SearchOptions struct {
	Context int  `short:"c" default:"30" env:"DOCFIND_CONTEXT" help:"Characters of context on each side of a match"`
	Scoped  bool `help:"Cache results per directory instead of per keyword"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Dir     string `arg:"" help:"Directory to search"`
	Keyword string `arg:"" help:"Keyword to find (case-insensitive)"`

	SearchOptions `embed:""`
}

// InteractiveCmd is the "interactive" subcommand. It reads one keyword per
// line until EOF.
type InteractiveCmd struct {
	Dir string `arg:"" help:"Directory to search"`

	SearchOptions `embed:""`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	List  CacheListCmd  `cmd:"" help:"List cached keywords"`
	Clear CacheClearCmd `cmd:"" help:"Remove cached results"`
}

// CacheListCmd is the "cache list" subcommand.
type CacheListCmd struct{}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct {
	Keys []string `arg:"" optional:"" help:"Cache keys to remove (all when omitted)"`
}

// FormatsCmd is the "formats" subcommand.
type FormatsCmd struct{}
