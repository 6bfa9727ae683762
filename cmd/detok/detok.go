// file: cmd/detok/detok.go

package detok

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tch80/decb/pkg/basic"
)

// DetokOptions configures the detokenize operation.
type DetokOptions struct {
	OutputPath string // Defaults to replacing the input extension with .txt
	Force      bool
	Quiet      bool
}

// DefaultDetokOptions returns default options for Detok.
func DefaultDetokOptions() *DetokOptions {
	return &DetokOptions{}
}

// Detok reads a tokenized BASIC program from inputPath and writes its
// detokenized text.
func Detok(inputPath string, opts *DetokOptions) error {
	if opts == nil {
		opts = DefaultDetokOptions()
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if !basic.IsTokenized(data) {
		return fmt.Errorf("input does not look like a tokenized BASIC program")
	}

	result, err := basic.Detokenize(data)
	if err != nil {
		return fmt.Errorf("failed to detokenize: %w", err)
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".txt"
	}

	if !opts.Force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output file already exists: %s (use force to overwrite)", outPath)
		}
	}

	var sb strings.Builder
	for _, line := range result.Lines {
		sb.WriteString(line.Text)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(outPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if !opts.Quiet {
		fmt.Printf("Detokenized %s to %s\n", inputPath, outPath)
		if result.Truncated {
			fmt.Println("Warning: input stream was truncated before a proper terminator")
		}
	}
	return nil
}
