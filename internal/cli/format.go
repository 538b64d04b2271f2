package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/elemlist/internal/engine"
)

var (
	// fatih/color disables these when stdout is not a TTY
	successColor  = color.New(color.FgGreen, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	errorColor    = color.New(color.FgRed, color.Bold)
	infoColor     = color.New(color.FgCyan)
	headerColor   = color.New(color.FgBlue, color.Bold)
	labelColor    = color.New(color.FgWhite, color.Bold)
	valueColor    = color.New(color.FgHiBlack)
	dimColor      = color.New(color.FgHiBlack)
	selectedColor = color.New(color.FgMagenta, color.Bold)
)

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	fmt.Println(msg)
}

// PrintLabelValue prints a label-value pair
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = valueColor.Println(value)
}

// PrintEmptyState prints a message when there's no data to show
func PrintEmptyState(msg string) {
	_, _ = dimColor.Printf("  %s\n", msg)
}

// PrintOrder prints an element order as "a → b → c".
func PrintOrder(label string, keys []string) {
	if len(keys) == 0 {
		PrintLabelValue(label, "(empty)")
		return
	}
	PrintLabelValue(label, strings.Join(keys, " → "))
}

// PrintElements prints a numbered element list, marking selected elements
// with their position in the selection.
func PrintElements(elements []engine.ElementInfo, selection []string) {
	rank := make(map[string]int, len(selection))
	for i, id := range selection {
		rank[id] = i + 1
	}

	for _, el := range elements {
		marker := "   "
		if n, ok := rank[el.ID]; ok {
			marker = fmt.Sprintf("[%d]", n)
		}
		line := fmt.Sprintf("  %3d. %s %s", el.Index+1, marker, el.Key)
		if el.Selected {
			_, _ = selectedColor.Print(line)
		} else {
			fmt.Print(line)
		}
		if el.Type != "" {
			_, _ = dimColor.Printf("  (%s)", el.Type)
		}
		_, _ = dimColor.Printf("  %s\n", shortID(el.ID))
	}
}

// PrintTable prints a simple table
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	_, _ = headerColor.Print("  ")
	for i, header := range headers {
		if i > 0 {
			fmt.Print("  ")
		}
		_, _ = headerColor.Printf("%-*s", colWidths[i], header)
	}
	fmt.Println()

	fmt.Print("  ")
	for i, width := range colWidths {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Print(strings.Repeat("-", width))
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Print("  ")
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				fmt.Print("  ")
			}
			_, _ = valueColor.Printf("%-*s", colWidths[i], cell)
		}
		fmt.Println()
	}
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// shortID abbreviates an element id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
