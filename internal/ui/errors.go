package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gtr/internal/domain"
	"gtr/internal/verify"
)

// FailureViewer displays failed tests in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View browses the failures of a run: the list of failed tests on the left,
// expected and captured output of the selected one on the right.
func (fv *FailureViewer) View(summary domain.Summary) error {
	failures := summary.Failures()
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(failure.Test.Identifier)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Test Failures (%d of %d) | ↑↓ navigate, → view details, ← back, q or Ctrl+C exit ", len(failures), len(summary.Results)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			statsView.SetText(formatFailureStats(failures[index]))
			detailsView.SetText(formatFailureDetails(failures[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureStats formats the header line of a failure
func formatFailureStats(failure domain.TestResult) string {
	return fmt.Sprintf("[cyan]test:[white] [yellow]%s[white] | [cyan]kind:[white] %s | [cyan]stream:[white] %s\n[cyan]path:[white] %s",
		tview.Escape(failure.Test.Identifier), failure.Kind, failure.Kind.StreamName(), tview.Escape(failure.Test.Path))
}

// formatFailureDetails formats expected and captured output with tview color
// tags, marking the first mismatching line
func formatFailureDetails(failure domain.TestResult) string {
	var builder strings.Builder

	mismatch, ok := verify.FirstMismatch(failure.Kind, failure.Expected, failure.Output)
	if !ok {
		fmt.Fprintf(&builder, "[red]✗ First mismatch at line %d[white]\n\n", mismatch+1)
	}

	fmt.Fprintf(&builder, "[yellow]Expected:[white]\n")
	writeNumbered(&builder, failure.Expected, mismatch, !ok)
	fmt.Fprintf(&builder, "\n[yellow]Captured %s:[white]\n", failure.Kind.StreamName())
	writeNumbered(&builder, failure.Output, mismatch, !ok)

	return builder.String()
}

func writeNumbered(b *strings.Builder, text string, mark int, marked bool) {
	for i, line := range strings.Split(text, "\n") {
		if marked && i == mark {
			fmt.Fprintf(b, "[red]%4d │ %s[white]\n", i+1, tview.Escape(line))
			continue
		}
		fmt.Fprintf(b, "[gray]%4d │[white] %s\n", i+1, tview.Escape(line))
	}
}
