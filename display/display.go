// Package display configures an external tabular-display library
// through a narrow option surface, and provides a concrete renderer
// backed by olekukonko/tablewriter.
package display

// Recognized display option names.
const (
	MaxColumns  = "max_columns"
	MaxRows     = "max_rows"
	MaxColWidth = "max_col_width"
)

// Library is the option surface of a tabular-display library. Its
// configuration is typically process wide and unguarded: concurrent
// callers need external synchronization.
type Library interface {
	SetOption(name string, value int) error
	ResetOption(name string) error
}

// Options selects the display limits to apply with Reset.
// Zero-valued fields are left unchanged.
type Options struct {
	// Default restores the library's built-in value for every
	// limit. The other fields are ignored when set.
	Default bool

	MaxColumns  int
	MaxRows     int
	MaxColWidth int
}

// Reset applies o to lib. Last call wins.
func Reset(lib Library, o Options) error {
	if o.Default {
		for _, name := range []string{MaxColumns, MaxRows, MaxColWidth} {
			if err := lib.ResetOption(name); err != nil {
				return err
			}
		}
		return nil
	}

	if o.MaxColumns != 0 {
		if err := lib.SetOption(MaxColumns, o.MaxColumns); err != nil {
			return err
		}
	}
	if o.MaxRows != 0 {
		if err := lib.SetOption(MaxRows, o.MaxRows); err != nil {
			return err
		}
	}
	if o.MaxColWidth != 0 {
		if err := lib.SetOption(MaxColWidth, o.MaxColWidth); err != nil {
			return err
		}
	}
	return nil
}
