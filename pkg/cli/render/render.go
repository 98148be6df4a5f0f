package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

// Format selects how results are written
type Format string

const (
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// Renderer writes command results in the selected format
type Renderer struct {
	w      io.Writer
	format Format
}

// New creates a renderer writing to w
func New(w io.Writer, format Format) *Renderer {
	if format != FormatJSON {
		format = FormatPretty
	}
	return &Renderer{w: w, format: format}
}

// IsJSON reports whether results are written as JSON
func (r *Renderer) IsJSON() bool {
	return r.format == FormatJSON
}

// JSON writes v as indented JSON
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.Faint)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errColor     = color.New(color.FgRed, color.Bold)
)

// printer accumulates the first write error so pretty renderers can write
// line by line without checking each call.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = headingColor.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) field(label string, value any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "  %s %v\n", labelColor.Sprintf("%-20s", label+":"), value)
}

func (p *printer) done() error {
	if p.err != nil {
		return goerr.Wrap(p.err, "failed to write output")
	}
	return nil
}

func (r *Renderer) printer() *printer {
	return &printer{w: r.w}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
