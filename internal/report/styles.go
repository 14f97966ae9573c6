package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tunediff/tunediff/internal/diff"
)

// direction classifies how an option's value moved.
type direction int

const (
	unchanged direction = iota
	increased
	decreased
)

func directionOf(p diff.Pair) direction {
	switch {
	case p.After.Value > p.Before.Value:
		return increased
	case p.After.Value < p.Before.Value:
		return decreased
	}
	return unchanged
}

type styles struct {
	increased, decreased, unchanged lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	return styles{
		increased: base.Foreground(lipgloss.Color("2")),
		decreased: base.Foreground(lipgloss.Color("1")),
		unchanged: base.Foreground(lipgloss.Color("243")),
	}
}

func (s styles) forDirection(d direction) lipgloss.Style {
	switch d {
	case increased:
		return s.increased
	case decreased:
		return s.decreased
	}
	return s.unchanged
}
