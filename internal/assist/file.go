package assist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
)

// ErrReadOnlySource is returned when deleting from a file-backed source.
var ErrReadOnlySource = errors.New("experiments read from a file cannot be deleted")

// FileSource reads a saved assist "get" response from disk or standard input.
type FileSource struct {
	path  string
	stdin io.Reader
}

var _ contract.ExperimentSource = &FileSource{} // Compile-time check

// NewFileSource returns a source for path; "-" reads standard input.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, stdin: os.Stdin}
}

// NewReaderSource returns a source that reads r once, as "-" does with stdin.
func NewReaderSource(r io.Reader) *FileSource {
	return &FileSource{path: contract.StdinInput, stdin: r}
}

// Fetch decodes the experiments in the file.
func (f *FileSource) Fetch(ctx context.Context) ([]schema.Experiment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := f.read()
	if err != nil {
		return nil, err
	}
	exps, err := DecodeExperiments(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.name(), err)
	}
	contract.Logger().Debugw("read experiments", "source", f.name(), "count", len(exps))
	return exps, nil
}

// Delete always fails with ErrReadOnlySource.
func (f *FileSource) Delete(_ context.Context, id string) error {
	return fmt.Errorf("delete %s: %w", id, ErrReadOnlySource)
}

func (f *FileSource) read() ([]byte, error) {
	if f.path == contract.StdinInput {
		data, err := io.ReadAll(io.LimitReader(f.stdin, maxResponseBytes))
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiments: %w", err)
	}
	return data, nil
}

func (f *FileSource) name() string {
	if f.path == contract.StdinInput {
		return "stdin"
	}
	return f.path
}

// ReadRecord decodes a single JSON document from path ("-" for stdin).
func ReadRecord(path string, stdin io.Reader) (schema.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == contract.StdinInput || path == "" {
		data, err = io.ReadAll(io.LimitReader(stdin, maxResponseBytes))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return schema.Record{}, fmt.Errorf("failed to read record: %w", err)
	}
	return DecodeRecord(data)
}

// NewSource picks the configured experiment source.
func NewSource(cfg *contract.Config) contract.ExperimentSource {
	if cfg.UsesFile() {
		return NewFileSource(cfg.InputFile)
	}
	return NewClient(cfg.Endpoint, cfg.Timeout)
}
