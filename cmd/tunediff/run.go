package main

import (
	"fmt"
	"io"

	"github.com/tunediff/tunediff/internal/diff"
	"github.com/tunediff/tunediff/internal/page"
	"github.com/tunediff/tunediff/internal/report"
	"github.com/tunediff/tunediff/internal/tune"
)

// run executes the whole pipeline: fetch, extract, parse, pair, rank, render.
func run(w io.Writer, url string) error {
	metric, err := diff.ParseMetric(metricName)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "FETCHING %s\n", url)

	text, err := page.Fetch(url, timeout)
	if err != nil {
		return err
	}

	inputText, outputText, err := page.ExtractBlocks(text)
	if err != nil {
		return err
	}

	before, err := tune.Parse(inputText, tune.InputFormat)
	if err != nil {
		return fmt.Errorf("parsing input block: %w", err)
	}
	after, err := tune.Parse(outputText, tune.OutputFormat)
	if err != nil {
		return fmt.Errorf("parsing output block: %w", err)
	}

	pairFn := diff.PairPositional
	if byName {
		pairFn = diff.PairByName
	}
	pairs, err := pairFn(before, after, metric)
	if err != nil {
		return err
	}

	r := report.New(metric, pairs)

	if jsonOutput {
		data, err := r.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	return r.Render(w, report.Options{Format: format, Color: !noColor})
}
