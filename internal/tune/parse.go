package tune

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldSep is the literal two-character field separator of the record
// grammar. Fields containing the separator are not representable.
const fieldSep = ", "

// Parse turns one newline-delimited text block into options, in line order.
// The whole call fails on the first line whose name or value cannot be
// extracted; optional bound fields that are absent or unparsable are nil.
func Parse(text string, format Format) ([]Option, error) {
	lines := splitLines(text)
	options := make([]Option, 0, len(lines))

	for i, line := range lines {
		opt, err := parseLine(line, format)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", i, line, err)
		}
		options = append(options, opt)
	}

	return options, nil
}

func parseLine(line string, format Format) (Option, error) {
	fields := strings.Split(line, fieldSep)

	if fields[0] == "" {
		return Option{}, fmt.Errorf("no name field")
	}
	name := fields[0]

	// The input grammar carries a type tag between name and value.
	valueIndex := 1
	if format == InputFormat {
		valueIndex = 2
	}

	if len(fields) <= valueIndex {
		return Option{}, fmt.Errorf("no value field")
	}
	value, err := strconv.ParseFloat(fields[valueIndex], 64)
	if err != nil {
		return Option{}, fmt.Errorf("value %q is not a number", fields[valueIndex])
	}

	opt := Option{Name: name, Value: value}
	if format == InputFormat {
		opt.Min = optionalNumber(fields, valueIndex+1)
		opt.Max = optionalNumber(fields, valueIndex+2)
		opt.Step = optionalNumber(fields, valueIndex+3)
	}

	return opt, nil
}

// optionalNumber parses fields[i] as a float, or returns nil when the field
// is absent or not numeric. Bound fields are best-effort, never an error.
func optionalNumber(fields []string, i int) *float64 {
	if i >= len(fields) {
		return nil
	}
	v, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		return nil
	}
	return &v
}

// splitLines behaves like iterating a text block's lines: the trailing
// newline does not produce an empty final line, and CR is stripped.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
