// Package driver runs one batch job against an order-statistic B-tree:
// it loads the insert and delete key files, executes the command file
// line by line, and writes one result line per command to the output
// file.
package driver

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KilimcininKorOglu/ostat/internal/btree"
	"github.com/KilimcininKorOglu/ostat/internal/config"
)

// Runner executes a batch run against a single tree.
type Runner struct {
	tree *btree.Tree
	log  zerolog.Logger
}

// NewRunner creates a Runner around an empty tree of the configured
// minimum degree.
func NewRunner(minDegree int, log zerolog.Logger) (*Runner, error) {
	tree, err := btree.New(minDegree)
	if err != nil {
		return nil, err
	}
	return &Runner{tree: tree, log: log}, nil
}

// Tree exposes the runner's tree, mainly for tests.
func (r *Runner) Tree() *btree.Tree {
	return r.tree
}

// Run executes the whole batch described by cfg. It returns an error
// only for a minimum degree below 2 or an I/O failure; malformed
// command lines are rendered as "-1" in the output instead.
func Run(cfg config.RunConfig, log zerolog.Logger) error {
	r, err := NewRunner(cfg.MinDegree, log)
	if err != nil {
		return err
	}

	if err := r.LoadInserts(cfg.InsertFile); err != nil {
		return fmt.Errorf("loading insert file: %w", err)
	}
	if err := r.LoadDeletes(cfg.DeleteFile); err != nil {
		return fmt.Errorf("loading delete file: %w", err)
	}

	results, err := r.ExecuteFile(cfg.CommandsFile)
	if err != nil {
		return fmt.Errorf("executing commands file: %w", err)
	}

	if err := writeOutput(cfg.OutputFile, results); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	log.Info().
		Int("keys", r.tree.Len()).
		Int("commands", len(results)).
		Str("output", cfg.OutputFile).
		Msg("batch run complete")
	return nil
}

// LoadInserts inserts every key listed in the file, in file order.
// Blank lines are skipped; lines that do not parse as a positive
// integer are skipped with a warning rather than aborting the batch.
// Duplicate keys are silently ignored by the tree.
func (r *Runner) LoadInserts(path string) error {
	return r.eachLine(path, func(line string) {
		k, err := strconv.ParseUint(line, 10, 64)
		if err != nil || k == 0 {
			r.log.Warn().Str("line", line).Msg("skipping invalid insert key")
			return
		}
		// Insert only fails for key 0, which was filtered above.
		_ = r.tree.Insert(k)
	})
}

// LoadDeletes deletes every key listed in the file, in file order.
// Absent keys are silently ignored by the tree; unparseable lines are
// skipped with a warning.
func (r *Runner) LoadDeletes(path string) error {
	return r.eachLine(path, func(line string) {
		k, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			r.log.Warn().Str("line", line).Msg("skipping invalid delete key")
			return
		}
		r.tree.Delete(k)
	})
}

// ExecuteFile runs every command in the file and returns one rendered
// result line per command line.
func (r *Runner) ExecuteFile(path string) ([]string, error) {
	var results []string
	err := r.eachLine(path, func(line string) {
		results = append(results, r.ExecuteLine(line))
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// eachLine calls fn for every non-blank, whitespace-trimmed line of the
// file.
func (r *Runner) eachLine(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	return scanner.Err()
}

// writeOutput writes the result lines to path, one per line with a
// trailing newline each.
func writeOutput(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
