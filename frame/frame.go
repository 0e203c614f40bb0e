package frame

import (
	"fmt"

	"github.com/midbel/plot"
)

// Column is a named column of a frame.
type Column interface {
	plot.Column
	Name() string
}

// Frame is an ordered set of equal length columns. It owns its
// columns; plots borrow them for the duration of a draw.
type Frame struct {
	columns []Column
}

func New(columns ...Column) (*Frame, error) {
	for i := 1; i < len(columns); i++ {
		if columns[i].Len() != columns[0].Len() {
			return nil, fmt.Errorf("column %s has %d rows, want %d",
				columns[i].Name(), columns[i].Len(), columns[0].Len())
		}
	}
	return &Frame{columns: columns}, nil
}

// Len reports the row count.
func (f *Frame) Len() int {
	if len(f.columns) == 0 {
		return 0
	}
	return f.columns[0].Len()
}

func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name()
	}
	return names
}

// Column finds a column by name.
func (f *Frame) Column(name string) (Column, error) {
	for _, c := range f.columns {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no column named %s", name)
}

// At returns the column at the given position.
func (f *Frame) At(i int) (Column, error) {
	if i < 0 || i >= len(f.columns) {
		return nil, fmt.Errorf("column %d out of %d", i, len(f.columns))
	}
	return f.columns[i], nil
}
