package output

import (
	"context"
	"io"

	"github.com/goccy/go-json"
)

// Output defines the interface for classification result destinations.
// Values are JSON-encoded one per line.
type Output interface {
	Write(ctx context.Context, v any) error
	Close() error
}

// Encode writes v as a single JSON document followed by a newline.
// Non-ASCII text and HTML characters are written verbatim.
func Encode(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
