package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/teologia"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Sources teologia.SourceService
	Writer  teologia.SourceWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"TEOLOGIA_DB" help:"SQLite database to read sources from (default: built-in catalog)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Search SearchCmd `cmd:"" help:"Search sources and print a composed answer"`
	List   ListCmd   `cmd:"" help:"List sources in the catalog"`
	Show   ShowCmd   `cmd:"" help:"Show a single source"`
	Seed   SeedCmd   `cmd:"" help:"Write sources to the SQLite database"`
	Export ExportCmd `cmd:"" help:"Write sources as markdown files to a directory"`
	Serve  ServeCmd  `cmd:"" help:"Serve the interactive search page"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query      string   `arg:"" optional:"" help:"Author, work or topic to search for"`
	Mode       string   `short:"m" default:"puntual" help:"Answer mode: puntual, comparativo or resumen"`
	Categories []string `short:"c" name:"category" help:"Restrict to a category (repeatable)"`
	Results    bool     `short:"r" help:"Also print the matching sources"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Categories []string `short:"c" name:"category" help:"Restrict to a category (repeatable)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Source ID"`
}

// SeedCmd is the "seed" subcommand.
type SeedCmd struct {
	From string `type:"existingdir" help:"Load sources from a directory written by export instead of the built-in catalog"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory (replaced if it exists)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string        `default:":8080" env:"TEOLOGIA_ADDR" help:"Listen address"`
	SessionTTL  time.Duration `name:"session-ttl" default:"30m" help:"How long idle sessions are kept"`
	SearchRate  float64       `name:"search-rate" default:"5" help:"Searches per second allowed per client (0 disables)"`
	SearchBurst int           `name:"search-burst" default:"10" help:"Burst of searches allowed per client"`
}
