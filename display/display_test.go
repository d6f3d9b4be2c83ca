package display

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibrary struct {
	set   []string
	reset []string
	err   error
}

func (f *fakeLibrary) SetOption(name string, value int) error {
	if f.err != nil {
		return f.err
	}
	f.set = append(f.set, fmt.Sprintf("%s=%d", name, value))
	return nil
}

func (f *fakeLibrary) ResetOption(name string) error {
	if f.err != nil {
		return f.err
	}
	f.reset = append(f.reset, name)
	return nil
}

func TestResetDefault(t *testing.T) {
	f := &fakeLibrary{}
	require.NoError(t, Reset(f, Options{Default: true, MaxColumns: 5, MaxRows: 7}))
	assert.Equal(t, []string{MaxColumns, MaxRows, MaxColWidth}, f.reset)
	assert.Empty(t, f.set, "other arguments are ignored with Default")
}

func TestResetPartial(t *testing.T) {
	f := &fakeLibrary{}
	require.NoError(t, Reset(f, Options{MaxRows: 100, MaxColWidth: 25}))
	assert.Equal(t, []string{"max_rows=100", "max_col_width=25"}, f.set)
	assert.Empty(t, f.reset)
}

func TestResetZeroValuesNoop(t *testing.T) {
	f := &fakeLibrary{}
	require.NoError(t, Reset(f, Options{}))
	assert.Empty(t, f.set)
	assert.Empty(t, f.reset)
}

func TestResetPropagatesErrors(t *testing.T) {
	f := &fakeLibrary{err: errors.New("boom")}
	require.Error(t, Reset(f, Options{MaxRows: 10}))
	require.Error(t, Reset(f, Options{Default: true}))
}

func TestWriterOptions(t *testing.T) {
	w := NewWriter(io.Discard)
	require.NoError(t, w.SetOption(MaxRows, 10))
	require.NoError(t, w.ResetOption(MaxRows))
	require.Error(t, w.SetOption("max_width", 1))
	require.Error(t, w.ResetOption("bogus"))
}

func TestWriterRenderLimits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, Reset(w, Options{MaxRows: 2, MaxColumns: 2}))

	header := []string{"name", "lat", "long"}
	rows := [][]string{
		{"IAD", "38.9531", "77.4565"},
		{"ORD", "41.9803", "87.9090"},
		{"LAS", "36.1699", "115.1398"},
	}
	require.NoError(t, w.Render(header, rows))

	out := buf.String()
	assert.Contains(t, out, "IAD")
	assert.Contains(t, out, "ORD")
	assert.NotContains(t, out, "LAS", "rows beyond max_rows are dropped")
	assert.NotContains(t, out, "77.4565", "columns beyond max_columns are dropped")
	assert.Contains(t, out, "(1 more rows)")
}

func TestWriterRenderDefaults(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Render([]string{"a", "b"}, [][]string{{"x", "y"}}))
	out := buf.String()
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "y")
	assert.NotContains(t, out, "more rows")
}
