package page

import (
	"fmt"
	"strings"
)

// Markers identifying the two embedded plain-text blocks on the tuning page.
const (
	inputMarker  = "spsa-input"
	outputMarker = "spsa-output"
)

// ExtractBlocks locates the two embedded text blocks in the fetched page:
// the tuner's starting configuration and its result. Each block is the text
// between the first '>' after its marker token and the following '<'. The
// output block is searched for after the input block. Every missing marker
// or delimiter is an error naming what was not found.
func ExtractBlocks(text string) (input, output string, err error) {
	input, rest, err := extractBlock(text, inputMarker)
	if err != nil {
		return "", "", err
	}
	output, _, err = extractBlock(rest, outputMarker)
	if err != nil {
		return "", "", err
	}
	return input, output, nil
}

// extractBlock returns the block following marker and the remainder of the
// text after the block's closing delimiter.
func extractBlock(text, marker string) (block, rest string, err error) {
	_, rest, found := strings.Cut(text, marker)
	if !found {
		return "", "", fmt.Errorf("marker %q not found in page", marker)
	}
	_, rest, found = strings.Cut(rest, ">")
	if !found {
		return "", "", fmt.Errorf("end of tag after %q not found in page", marker)
	}
	block, rest, found = strings.Cut(rest, "<")
	if !found {
		return "", "", fmt.Errorf("start of tag after %q block not found in page", marker)
	}
	return block, rest, nil
}
