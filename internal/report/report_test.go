package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/tunediff/tunediff/internal/diff"
	"github.com/tunediff/tunediff/internal/tune"
)

func pair(name string, before, after, change float64) diff.Pair {
	return diff.Pair{
		Before: tune.Option{Name: name, Value: before},
		After:  tune.Option{Name: name, Value: after},
		Change: change,
	}
}

func plain(format Format) Options {
	return Options{Format: format, Color: false}
}

func TestAlignedHeader(t *testing.T) {
	r := New(diff.MetricRange, nil)
	out := r.Human(plain(FormatAligned))

	lines := strings.Split(out, "\n")
	if lines[0] != "" {
		t.Errorf("expected leading blank line, got %q", lines[0])
	}
	header := lines[1]
	if !strings.HasPrefix(header, "OPTION NAME") || !strings.HasSuffix(header, "CHANGE") {
		t.Errorf("bad header line: %q", header)
	}
	if len(header) != len("OPTION NAME")+1+25+1+len("CHANGE") {
		t.Errorf("header width = %d: %q", len(header), header)
	}
	if lines[2] != strings.Repeat("-", 50) {
		t.Errorf("bad separator line: %q", lines[2])
	}
}

func TestAlignedRowPadding(t *testing.T) {
	r := New(diff.MetricRange, []diff.Pair{pair("ASPIRATION_WINDOW", 6.0, 5.0, -1.0/49.0)})
	out := r.Human(plain(FormatAligned))

	want := "ASPIRATION_WINDOW " + strings.Repeat(".", 19) + " 6 -> 5 ....."
	if !strings.Contains(out, want) {
		t.Errorf("output missing row %q:\n%s", want, out)
	}
}

func TestAlignedRowNegativeValues(t *testing.T) {
	r := New(diff.MetricRange, []diff.Pair{pair("HISTORY_PRUNING_MARGIN", -2500.0, -2474.0, 26.0/6000.0)})
	out := r.Human(plain(FormatAligned))

	// Name is 22 chars, -2500 costs 4 columns: 36-26 = 10 leading dots;
	// -2474 costs 4 of the 5-column tail budget.
	want := "HISTORY_PRUNING_MARGIN " + strings.Repeat(".", 10) + " -2500 -> -2474 ."
	if !strings.Contains(out, want) {
		t.Errorf("output missing row %q:\n%s", want, out)
	}
}

func TestAlignedPaddingNeverNegative(t *testing.T) {
	long := strings.Repeat("X", 60)
	r := New(diff.MetricRange, []diff.Pair{pair(long, 1.0, 2.0, 0.1)})
	out := r.Human(plain(FormatAligned))

	if !strings.Contains(out, long+"  1 -> 2") {
		t.Errorf("expected zero-dot padding for oversized name:\n%s", out)
	}
}

func TestNewRanksPairs(t *testing.T) {
	r := New(diff.MetricRange, []diff.Pair{
		pair("SMALL", 1, 2, 0.02),
		pair("BIG", 1, 2, 0.5),
		pair("MID", 1, 2, -0.1),
	})
	out := r.Human(plain(FormatAligned))

	big := strings.Index(out, "BIG")
	mid := strings.Index(out, "MID")
	small := strings.Index(out, "SMALL")
	if big == -1 || mid == -1 || small == -1 {
		t.Fatalf("missing rows:\n%s", out)
	}
	if !(big < mid && mid < small) {
		t.Errorf("rows not ranked by |change|:\n%s", out)
	}
}

func TestPercentFormat(t *testing.T) {
	r := New(diff.MetricValue, []diff.Pair{
		pair("RFP_MARGIN", 73.0, 80.3, 0.1),
		pair("ASPIRATION_WINDOW", 6.0, 3.0, -0.5),
	})
	out := r.Human(plain(FormatPercent))

	wantLines := []string{
		"ASPIRATION_WINDOW" + strings.Repeat(" ", 11) + "   -50.0%",
		"RFP_MARGIN" + strings.Repeat(" ", 18) + "   +10.0%",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
		// Name column 28 wide, then the 7-column signed percentage.
		if len(want) != 28+1+7+1 {
			t.Fatalf("test expectation malformed: %q is %d wide", want, len(want))
		}
	}
}

func TestPercentFormatTruncatesName(t *testing.T) {
	long := strings.Repeat("Y", 40)
	r := New(diff.MetricValue, []diff.Pair{pair(long, 1, 1, 0)})
	out := r.Human(plain(FormatPercent))

	if !strings.Contains(out, strings.Repeat("Y", 28)+"    +0.0%") {
		t.Errorf("expected name truncated to 28 columns:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("Y", 29)) {
		t.Errorf("name not truncated:\n%s", out)
	}
}

func TestColoredValuesOnlyWrapNumbers(t *testing.T) {
	r := New(diff.MetricRange, []diff.Pair{pair("A", 1.0, 2.0, 0.1)})
	out := r.Human(Options{Format: FormatAligned, Color: true})

	// Styling, when the terminal supports it, must wrap only the after
	// value: the arrow and padding stay uncolored.
	if !strings.Contains(out, "1 -> ") {
		t.Errorf("before value or arrow was styled:\n%q", out)
	}
}

func TestDirectionClassification(t *testing.T) {
	cases := []struct {
		before, after float64
		want          direction
	}{
		{6.0, 5.0, decreased},
		{5.0, 6.0, increased},
		{73.0, 73.0, unchanged},
	}
	for _, tc := range cases {
		if got := directionOf(pair("X", tc.before, tc.after, 0)); got != tc.want {
			t.Errorf("directionOf(%v -> %v) = %v, want %v", tc.before, tc.after, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	r := New(diff.MetricRange, []diff.Pair{pair("A", 1.0, 2.0, 0.1)})
	data, err := r.JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Metric != diff.MetricRange {
		t.Errorf("metric = %q, want %q", decoded.Metric, diff.MetricRange)
	}
	if len(decoded.Pairs) != 1 || decoded.Pairs[0].Before.Name != "A" {
		t.Errorf("pairs did not round-trip: %+v", decoded.Pairs)
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("percent"); err != nil {
		t.Errorf("ParseFormat(percent) failed: %v", err)
	}
	if _, err := ParseFormat("fancy"); err == nil {
		t.Error("ParseFormat(fancy) should fail")
	}
}
