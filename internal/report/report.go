package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tunediff/tunediff/internal/diff"
)

// Format selects how the ranked pairs are laid out.
type Format string

const (
	// FormatAligned is the dot-padded before -> after table.
	FormatAligned Format = "aligned"
	// FormatPercent is the fixed-column signed-percentage table.
	FormatPercent Format = "percent"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatAligned, FormatPercent:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want %q or %q)", s, FormatAligned, FormatPercent)
}

// Options control rendering. Color resolves the change direction to ANSI
// styling at the render boundary only; scoring never sees it.
type Options struct {
	Format Format
	Color  bool
}

// Report holds the scored pairs, ranked by magnitude of change.
type Report struct {
	Metric diff.Metric `json:"metric"`
	Pairs  []diff.Pair `json:"options"`
}

// New ranks the pairs and wraps them in a report.
func New(metric diff.Metric, pairs []diff.Pair) *Report {
	diff.Rank(pairs)
	return &Report{Metric: metric, Pairs: pairs}
}

// JSON returns the report as formatted JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Human returns the report as a colored table in the requested format.
func (r *Report) Human(opts Options) string {
	var b strings.Builder
	if opts.Format == FormatPercent {
		r.renderPercent(&b, opts)
	} else {
		r.renderAligned(&b, opts)
	}
	return b.String()
}

// Render writes the human-readable report to w.
func (r *Report) Render(w io.Writer, opts Options) error {
	_, err := io.WriteString(w, r.Human(opts))
	return err
}

const lineWidth = 45

func (r *Report) renderAligned(b *strings.Builder, opts Options) {
	s := newStyles()

	fmt.Fprintln(b)
	fmt.Fprintf(b, "OPTION NAME %s CHANGE\n", strings.Repeat(" ", lineWidth-20))
	fmt.Fprintln(b, strings.Repeat("-", lineWidth+5))

	for _, p := range r.Pairs {
		before := formatValue(p.Before.Value)
		after := formatValue(p.After.Value)
		if opts.Color {
			after = s.forDirection(directionOf(p)).Render(after)
		}

		pad := dots(36 - (len(p.Before.Name) + displayWidth(p.Before.Value)))
		tail := dots(5 - displayWidth(p.After.Value))
		fmt.Fprintf(b, "%s %s %s -> %s %s\n", p.Before.Name, pad, before, after, tail)
	}
}

func (r *Report) renderPercent(b *strings.Builder, opts Options) {
	s := newStyles()

	for _, p := range r.Pairs {
		pct := fmt.Sprintf("%+7.1f", p.Change*100)
		if opts.Color {
			pct = s.forDirection(directionOf(p)).Render(pct)
		}
		fmt.Fprintf(b, "%-28.28s %s%%\n", p.Before.Name, pct)
	}
}

// formatValue renders a float the shortest way that round-trips, so whole
// numbers print without a trailing ".0".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// displayWidth is the alignment cost of a value: the order of magnitude of
// its integer part plus one column for a leading minus sign. Matches the
// report's historical dot-padding arithmetic.
func displayWidth(v float64) int {
	w := 0
	if a := math.Abs(v); a >= 1 {
		w = int(math.Log10(a))
	}
	if v < 0 {
		w++
	}
	return w
}

func dots(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(".", n)
}
