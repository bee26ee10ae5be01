// Package output writes name=value results for the calling pipeline
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lattiam/ebwait/internal/interfaces"
	"github.com/lattiam/ebwait/pkg/logging"
)

// multilineDelimiter terminates values that span several lines, using the
// heredoc form GitHub Actions accepts in $GITHUB_OUTPUT
const multilineDelimiter = "EBWAIT_OUTPUT_EOF"

// formatEntry renders a single output assignment, including the trailing newline
func formatEntry(name, value string) (string, error) {
	if name == "" || strings.ContainsAny(name, "=\n\r") {
		return "", fmt.Errorf("invalid output name %q", name)
	}
	if !strings.ContainsAny(value, "\n\r") {
		return fmt.Sprintf("%s=%s\n", name, value), nil
	}
	if strings.Contains(value, multilineDelimiter) {
		return "", fmt.Errorf("output %s contains reserved delimiter %s", name, multilineDelimiter)
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, multilineDelimiter, value, multilineDelimiter), nil
}

// FileSink appends assignments to a file such as $GITHUB_OUTPUT. The file is
// opened for every write so concurrent writers from other steps are not clobbered.
type FileSink struct {
	path string
}

// NewFileSink creates a sink appending to path
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the file the sink appends to
func (s *FileSink) Path() string {
	return s.path
}

// Set appends name=value to the file
func (s *FileSink) Set(name, value string) error {
	line, err := formatEntry(name, value)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // #nosec G304 - path comes from the runner
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if _, err := f.WriteString(line); err != nil {
		_ = f.Close() // Ignore error - write already failed
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// WriterSink writes assignments to an io.Writer, typically stdout when no
// output file is configured
type WriterSink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterSink creates a sink writing to w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Set writes name=value to the writer
func (s *WriterSink) Set(name, value string) error {
	line, err := formatEntry(name, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, line); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}

// NewSink returns a FileSink when path is set, otherwise a WriterSink on fallback
func NewSink(path string, fallback io.Writer) interfaces.OutputSink {
	if path != "" {
		logging.Output.Debug("Writing outputs to %s", path)
		return NewFileSink(path)
	}
	logging.Output.Debug("No output file configured, writing outputs to stdout")
	return NewWriterSink(fallback)
}

// WriteSnapshot emits the three snapshot outputs in order, stopping at the first failure
func WriteSnapshot(sink interfaces.OutputSink, snapshot interfaces.EnvironmentSnapshot) error {
	for _, entry := range snapshot.Outputs() {
		if err := sink.Set(entry.Name, entry.Value); err != nil {
			return err
		}
	}
	return nil
}
