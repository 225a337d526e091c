package ui

import "gtr/internal/domain"

// Viewer displays failed tests of a run in an interactive TUI
type Viewer interface {
	View(summary domain.Summary) error
}
