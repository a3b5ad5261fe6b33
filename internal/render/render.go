package render

import (
	"io"
	"strings"

	"github.com/lonng/mjdeal/internal/deal"
	"github.com/lonng/mjdeal/internal/errutil"
	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls how results are written.
type Options struct {
	Format string
	// Sort orders each hand by tile index before it is written. The
	// dealt order is kept in the result itself.
	Sort bool
	Seed int64
}

type Renderer interface {
	Render(w io.Writer, results []*deal.Result) error
}

// New returns the renderer for opts.Format.
func New(opts Options) (Renderer, error) {
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return &textRenderer{opts: opts}, nil
	case FormatJSON:
		return &jsonRenderer{opts: opts}, nil
	}
	return nil, errors.Wrapf(errutil.ErrUnsupportedFormat, "format=%q", opts.Format)
}

func Write(w io.Writer, opts Options, results ...*deal.Result) error {
	r, err := New(opts)
	if err != nil {
		return err
	}
	return r.Render(w, results)
}
