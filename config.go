package specenum

import (
	"io"
	"log/slog"

	"github.com/broady/specenum/sink"
)

// Config holds the configuration for one compilation run. Run-scoped
// flags travel in the Config rather than in ambient globals, so a run is
// fully described by its Config and identical inputs always produce
// identical output.
type Config struct {
	// OutPath is the path the generated header is written to.
	OutPath string

	// DefPaths are the enum definition files, in load order. Later
	// files may add new enums, but a name colliding with an earlier
	// file is an error.
	DefPaths []string

	// Verbose enables log messages during code generation.
	Verbose bool

	// LazyOverwrite only overwrites the output file when its contents
	// actually changed, preserving its modification time otherwise.
	LazyOverwrite bool

	// Logger overrides the logger used for verbose output.
	// Defaults to slog.Default when Verbose is set.
	Logger *slog.Logger

	// Sink overrides the output destination. Defaults to a FileSink
	// honoring LazyOverwrite. Useful for tests.
	Sink sink.Sink
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Verbose {
		return slog.Default()
	}
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
}

func (c *Config) sink() sink.Sink {
	if c.Sink != nil {
		return c.Sink
	}
	return sink.NewFileSink(c.LazyOverwrite)
}
