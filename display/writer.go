package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/olekukonko/tablewriter"
)

// Built-in display limits, restored by ResetOption.
const (
	DefaultMaxColumns  = 20
	DefaultMaxRows     = 60
	DefaultMaxColWidth = 50
)

// Writer renders tables with tablewriter, honoring the configured
// display limits. It implements Library; a zero limit means no cap.
type Writer struct {
	out io.Writer

	mu          sync.Mutex
	maxColumns  int
	maxRows     int
	maxColWidth int
}

// NewWriter returns a Writer with the built-in limits writing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:         out,
		maxColumns:  DefaultMaxColumns,
		maxRows:     DefaultMaxRows,
		maxColWidth: DefaultMaxColWidth,
	}
}

func (w *Writer) SetOption(name string, value int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch name {
	case MaxColumns:
		w.maxColumns = value
	case MaxRows:
		w.maxRows = value
	case MaxColWidth:
		w.maxColWidth = value
	default:
		return fmt.Errorf("unknown display option %q", name)
	}
	return nil
}

func (w *Writer) ResetOption(name string) error {
	switch name {
	case MaxColumns:
		return w.SetOption(name, DefaultMaxColumns)
	case MaxRows:
		return w.SetOption(name, DefaultMaxRows)
	case MaxColWidth:
		return w.SetOption(name, DefaultMaxColWidth)
	}
	return fmt.Errorf("unknown display option %q", name)
}

// Render writes rows as a table under header, truncating columns and
// rows beyond the configured limits.
func (w *Writer) Render(header []string, rows [][]string) error {
	w.mu.Lock()
	maxColumns, maxRows, maxColWidth := w.maxColumns, w.maxRows, w.maxColWidth
	w.mu.Unlock()

	t := tablewriter.NewWriter(w.out)
	if maxColWidth > 0 {
		t.SetColWidth(maxColWidth)
	}
	t.SetHeader(clipRow(header, maxColumns))

	clipped := 0
	for i, row := range rows {
		if maxRows > 0 && i >= maxRows {
			clipped = len(rows) - maxRows
			break
		}
		t.Append(clipRow(row, maxColumns))
	}
	t.Render()

	if clipped > 0 {
		fmt.Fprintf(w.out, "(%d more rows)\n", clipped)
	}
	return nil
}

func clipRow(row []string, max int) []string {
	if max > 0 && len(row) > max {
		return row[:max]
	}
	return row
}
