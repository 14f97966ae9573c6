package diff

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tunediff/tunediff/internal/tune"
)

// Metric selects how a pair's change fraction is computed.
type Metric string

const (
	// MetricRange normalizes the value change by the option's declared
	// tuning range. Options without bounds report a change of zero.
	MetricRange Metric = "range"
	// MetricValue normalizes the value change by the magnitude of the
	// starting value. A zero starting value reports a change of zero.
	MetricValue Metric = "value"
)

// ParseMetric validates a metric name from the command line.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricRange, MetricValue:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric %q (want %q or %q)", s, MetricRange, MetricValue)
}

// Pair is one option's before/after correspondence plus its scored change.
type Pair struct {
	Before tune.Option `json:"before"`
	After  tune.Option `json:"after"`
	Change float64     `json:"change"`
}

// PairPositional joins the two sequences by index: before[i] corresponds to
// after[i] and both must name the same option. Unequal lengths or a name
// mismatch at any position is a reported error, never a silent truncation.
func PairPositional(before, after []tune.Option, metric Metric) ([]Pair, error) {
	if len(before) != len(after) {
		return nil, fmt.Errorf("pairing mismatch: %d input options but %d output options", len(before), len(after))
	}

	pairs := make([]Pair, len(before))
	for i := range before {
		if before[i].Name != after[i].Name {
			return nil, fmt.Errorf("pairing mismatch at position %d: input names %q but output names %q", i, before[i].Name, after[i].Name)
		}
		pairs[i] = Pair{
			Before: before[i],
			After:  after[i],
			Change: score(before[i], after[i], metric),
		}
	}

	return pairs, nil
}

// PairByName joins the two sequences by option name, preserving the input
// order. Names present on only one side are a reported error listing them.
func PairByName(before, after []tune.Option, metric Metric) ([]Pair, error) {
	afterByName := make(map[string]tune.Option, len(after))
	for _, o := range after {
		afterByName[o.Name] = o
	}

	pairs := make([]Pair, 0, len(before))
	var missing []string
	for _, b := range before {
		a, ok := afterByName[b.Name]
		if !ok {
			missing = append(missing, b.Name)
			continue
		}
		delete(afterByName, b.Name)
		pairs = append(pairs, Pair{Before: b, After: a, Change: score(b, a, metric)})
	}

	var extra []string
	for _, o := range after {
		if _, ok := afterByName[o.Name]; ok {
			extra = append(extra, o.Name)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		var parts []string
		if len(missing) > 0 {
			parts = append(parts, "only in input: "+strings.Join(missing, ", "))
		}
		if len(extra) > 0 {
			parts = append(parts, "only in output: "+strings.Join(extra, ", "))
		}
		return nil, fmt.Errorf("pairing mismatch: %s", strings.Join(parts, "; "))
	}

	return pairs, nil
}

func score(before, after tune.Option, metric Metric) float64 {
	diff := after.Value - before.Value

	switch metric {
	case MetricValue:
		if before.Value == 0 {
			return 0
		}
		return diff / math.Abs(before.Value)
	default:
		lo := math.Inf(-1)
		if before.Min != nil {
			lo = *before.Min
		}
		hi := math.Inf(1)
		if before.Max != nil {
			hi = *before.Max
		}
		// An undeclared range is infinite, so any change reads as zero.
		// min == max yields a zero range and an Inf/NaN change, which
		// Rank treats as maximal.
		return diff / (hi - lo)
	}
}

// Rank sorts pairs descending by magnitude of change, stable on ties.
// NaN and infinite changes sort as maximal.
func Rank(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return magnitude(pairs[i].Change) > magnitude(pairs[j].Change)
	})
}

func magnitude(change float64) float64 {
	if math.IsNaN(change) {
		return math.Inf(1)
	}
	return math.Abs(change)
}
