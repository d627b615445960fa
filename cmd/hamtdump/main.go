// Command hamtdump is a small debug tool for the hamt package: it
// reads "key value" pairs from stdin (or a file), builds a
// hamt.Trie[string,int], and writes a human-readable dump of the
// resulting structure. It exists only to exercise the package's
// public surface end to end; the dump format is explicitly unstable.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleece-index/hamt/hamt"
)

var (
	inputPath string
	quiet     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hamtdump",
		Short: "Build a hash-array-mapped trie from key/value pairs and dump it",
		RunE:  runDump,
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to read \"key value\" lines from (default: stdin)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational logging")
	return cmd
}

func runDump(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("hamtdump: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	in := cmd.InOrStdin()
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			logger.Error("failed to open input file", zap.String("path", inputPath), zap.Error(err))
			return err
		}
		defer f.Close()
		in = f
	}

	tr := hamt.New[string, int](hamt.NewStringHasher())

	count, err := loadPairs(in, tr, logger)
	if err != nil {
		return err
	}
	logger.Info("loaded key/value pairs", zap.Int("count", count))

	tr.Dump(cmd.OutOrStdout())
	logger.Info("dump complete", zap.Int("leaves", tr.Count()))
	return nil
}

func loadPairs(in io.Reader, tr *hamt.Trie[string, int], logger *zap.Logger) (int, error) {
	scanner := bufio.NewScanner(in)
	count := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			logger.Warn("skipping malformed line", zap.String("line", line))
			continue
		}
		val, err := strconv.Atoi(fields[1])
		if err != nil {
			logger.Warn("skipping line with non-integer value", zap.String("line", line))
			continue
		}
		if err := tr.Insert(fields[0], val); err != nil {
			return count, fmt.Errorf("hamtdump: inserting %q: %w", fields[0], err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("hamtdump: reading input: %w", err)
	}
	return count, nil
}

func newLogger() (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
