package specenum

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/broady/specenum/cheader"
	"github.com/broady/specenum/ir"
	"github.com/broady/specenum/parser"
	"github.com/broady/specenum/sink"
)

// toolName is recorded in the generated-file disclaimer.
const toolName = "specenum"

// Generate reads the definition files named in cfg, in order, and writes
// the generated header to cfg.OutPath. The first parse or I/O error
// aborts the run; the destination file is only replaced on clean
// completion.
func Generate(cfg *Config) error {
	if cfg.OutPath == "" {
		return errors.New("OutPath is required")
	}
	if len(cfg.DefPaths) == 0 {
		return errors.New("at least one definition path is required")
	}
	if err := sink.ValidatePath(cfg.OutPath); err != nil {
		return fmt.Errorf("invalid output path %q: %w", cfg.OutPath, err)
	}
	for _, path := range cfg.DefPaths {
		if err := sink.ValidatePath(path); err != nil {
			return fmt.Errorf("invalid definition path %q: %w", path, err)
		}
	}

	logger := cfg.logger()

	p := parser.New()
	for _, path := range cfg.DefPaths {
		logger.Info("reading definitions", slog.String("path", path))
		lines, err := readLines(path)
		if err != nil {
			return err
		}
		if err := p.Parse(lines); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	logger.Info("writing header",
		slog.String("path", cfg.OutPath),
		slog.Int("enums", p.Definitions().Len()),
		slog.Bool("lazy", cfg.LazyOverwrite))

	content := render(cfg.OutPath, cfg.DefPaths, p.Definitions())
	if err := cfg.sink().WriteFile(context.Background(), cfg.OutPath, content); err != nil {
		return err
	}

	logger.Info("done writing", slog.String("path", cfg.OutPath))
	return nil
}

// render assembles the complete header: disclaimer banner, inclusion
// guard, and one fragment block per enum, each preceded by exactly one
// blank line.
func render(outPath string, defPaths []string, defs *ir.Set) []byte {
	var buf bytes.Buffer

	writeDisclaimer(&buf, defPaths)

	guard := guardName(outPath)
	fmt.Fprintf(&buf, "#ifndef %s\n#define %s\n\n", guard, guard)

	for _, e := range defs.Enums() {
		buf.WriteByte('\n')
		for _, frag := range cheader.Fragments(e) {
			buf.WriteString(frag)
		}
	}

	fmt.Fprintf(&buf, "\n#endif /* %s */\n", guard)
	return buf.Bytes()
}

// writeDisclaimer writes the generated-file banner recording the tool
// and the input files.
func writeDisclaimer(buf *bytes.Buffer, defPaths []string) {
	buf.WriteString(" /**************************************************************************\n")
	buf.WriteString(" *                         THIS FILE WAS GENERATED                         *\n")
	fmt.Fprintf(buf, " * Script: %-63s *\n", toolName)
	for _, path := range defPaths {
		fmt.Fprintf(buf, " * Input:  %-63s *\n", path)
	}
	buf.WriteString(" *                         DO NOT CHANGE THIS FILE                         *\n")
	buf.WriteString(" **************************************************************************/\n\n")
}

var nonWord = regexp.MustCompile(`\W+`)

// guardName derives the multiple-inclusion guard from the output file's
// base name: everything up to the first dot, non-word runs replaced by
// underscores, uppercased.
func guardName(path string) string {
	base, _, _ := strings.Cut(filepath.Base(path), ".")
	return "FC__" + strings.ToUpper(nonWord.ReplaceAllString(base, "_")) + "_H"
}

// readLines returns the raw text lines of the named file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
