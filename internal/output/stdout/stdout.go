package stdout

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hejijunhao/lovetype/internal/output"
)

// Output writes JSON-encoded values to stdout, one per line unless pretty.
type Output struct {
	w      io.Writer
	pretty bool
}

// New creates a new stdout Output with optional pretty-printed JSON.
func New(pretty bool) *Output {
	return NewWriter(os.Stdout, pretty)
}

// NewWriter is New for a caller-supplied writer, such as a command's
// configured output stream.
func NewWriter(w io.Writer, pretty bool) *Output {
	return &Output{w: w, pretty: pretty}
}

func (o *Output) Write(_ context.Context, v any) error {
	if err := output.Encode(o.w, v, o.pretty); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
