package plot

// Dtype tags the declared type of a Column.
type Dtype int

const (
	DtypeNumber Dtype = iota
	DtypeDuration
	DtypeDate
	DtypeString
)

// Column is the tabular source the plot reads from. Series hold plain
// references into caller owned columns for the duration of one draw,
// nothing is copied. Numeric accessors report values as float64 in the
// unit implied by the dtype: nanoseconds for durations, days since the
// Unix epoch for dates.
type Column interface {
	Len() int
	// Get returns the value at the given row, wrapping ErrExtract
	// when the row is absent or not numeric.
	Get(int) (float64, error)
	// Label returns the display text of the value at the given row.
	Label(int) string
	// Min and Max reduce the column, wrapping ErrEmptyRange over zero
	// rows and ErrExtract for non numeric columns.
	Min() (float64, error)
	Max() (float64, error)
	// UniqueStable returns the distinct labels preserving first seen
	// order.
	UniqueStable() []string
	Dtype() Dtype
}
