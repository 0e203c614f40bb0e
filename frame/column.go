package frame

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/midbel/plot"
)

// Floats is a numeric column. NaN entries stand for missing values:
// they fail row access and are skipped by the reductions.
type Floats struct {
	name   string
	values []float64
}

func NewFloats(name string, values []float64) *Floats {
	return &Floats{
		name:   name,
		values: values,
	}
}

func (c *Floats) Name() string {
	return c.name
}

func (c *Floats) Len() int {
	return len(c.values)
}

func (c *Floats) Get(i int) (float64, error) {
	if i < 0 || i >= len(c.values) {
		return 0, fmt.Errorf("%s: row %d out of %d: %w", c.name, i, len(c.values), plot.ErrExtract)
	}
	v := c.values[i]
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%s: row %d is null: %w", c.name, i, plot.ErrExtract)
	}
	return v, nil
}

func (c *Floats) Label(i int) string {
	v, err := c.Get(i)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (c *Floats) Min() (float64, error) {
	return c.reduce(math.Min, math.Inf(1))
}

func (c *Floats) Max() (float64, error) {
	return c.reduce(math.Max, math.Inf(-1))
}

func (c *Floats) reduce(pick func(float64, float64) float64, seed float64) (float64, error) {
	var (
		acc  = seed
		seen bool
	)
	for _, v := range c.values {
		if math.IsNaN(v) {
			continue
		}
		acc = pick(acc, v)
		seen = true
	}
	if !seen {
		return 0, fmt.Errorf("%s: %w", c.name, plot.ErrEmptyRange)
	}
	return acc, nil
}

func (c *Floats) UniqueStable() []string {
	return uniqueStable(len(c.values), c.Label)
}

func (c *Floats) Dtype() plot.Dtype {
	return plot.DtypeNumber
}

// Strings is a categorical column. It has no numeric view: row access
// and reductions fail with ErrExtract.
type Strings struct {
	name   string
	values []string
}

func NewStrings(name string, values []string) *Strings {
	return &Strings{
		name:   name,
		values: values,
	}
}

func (c *Strings) Name() string {
	return c.name
}

func (c *Strings) Len() int {
	return len(c.values)
}

func (c *Strings) Get(int) (float64, error) {
	return 0, fmt.Errorf("%s: string column is not numeric: %w", c.name, plot.ErrExtract)
}

func (c *Strings) Label(i int) string {
	if i < 0 || i >= len(c.values) {
		return ""
	}
	return c.values[i]
}

func (c *Strings) Min() (float64, error) {
	return 0, fmt.Errorf("%s: string column is not numeric: %w", c.name, plot.ErrExtract)
}

func (c *Strings) Max() (float64, error) {
	return 0, fmt.Errorf("%s: string column is not numeric: %w", c.name, plot.ErrExtract)
}

func (c *Strings) UniqueStable() []string {
	return uniqueStable(len(c.values), c.Label)
}

func (c *Strings) Dtype() plot.Dtype {
	return plot.DtypeString
}

// Times is a date column. Its numeric view is the day count since the
// Unix epoch.
type Times struct {
	name   string
	values []time.Time
}

func NewTimes(name string, values []time.Time) *Times {
	return &Times{
		name:   name,
		values: values,
	}
}

func (c *Times) Name() string {
	return c.name
}

func (c *Times) Len() int {
	return len(c.values)
}

func (c *Times) Get(i int) (float64, error) {
	if i < 0 || i >= len(c.values) {
		return 0, fmt.Errorf("%s: row %d out of %d: %w", c.name, i, len(c.values), plot.ErrExtract)
	}
	return dayCount(c.values[i]), nil
}

func (c *Times) Label(i int) string {
	if i < 0 || i >= len(c.values) {
		return ""
	}
	return c.values[i].Format("2006-01-02")
}

func (c *Times) Min() (float64, error) {
	return c.reduce(func(a, b time.Time) bool { return b.Before(a) })
}

func (c *Times) Max() (float64, error) {
	return c.reduce(func(a, b time.Time) bool { return b.After(a) })
}

func (c *Times) reduce(better func(time.Time, time.Time) bool) (float64, error) {
	if len(c.values) == 0 {
		return 0, fmt.Errorf("%s: %w", c.name, plot.ErrEmptyRange)
	}
	acc := c.values[0]
	for _, v := range c.values[1:] {
		if better(acc, v) {
			acc = v
		}
	}
	return dayCount(acc), nil
}

func (c *Times) UniqueStable() []string {
	return uniqueStable(len(c.values), c.Label)
}

func (c *Times) Dtype() plot.Dtype {
	return plot.DtypeDate
}

// Durations is an elapsed time column. Its numeric view is the
// nanosecond count.
type Durations struct {
	name   string
	values []time.Duration
}

func NewDurations(name string, values []time.Duration) *Durations {
	return &Durations{
		name:   name,
		values: values,
	}
}

func (c *Durations) Name() string {
	return c.name
}

func (c *Durations) Len() int {
	return len(c.values)
}

func (c *Durations) Get(i int) (float64, error) {
	if i < 0 || i >= len(c.values) {
		return 0, fmt.Errorf("%s: row %d out of %d: %w", c.name, i, len(c.values), plot.ErrExtract)
	}
	return float64(c.values[i]), nil
}

func (c *Durations) Label(i int) string {
	if i < 0 || i >= len(c.values) {
		return ""
	}
	return c.values[i].String()
}

func (c *Durations) Min() (float64, error) {
	if len(c.values) == 0 {
		return 0, fmt.Errorf("%s: %w", c.name, plot.ErrEmptyRange)
	}
	acc := c.values[0]
	for _, v := range c.values[1:] {
		if v < acc {
			acc = v
		}
	}
	return float64(acc), nil
}

func (c *Durations) Max() (float64, error) {
	if len(c.values) == 0 {
		return 0, fmt.Errorf("%s: %w", c.name, plot.ErrEmptyRange)
	}
	acc := c.values[0]
	for _, v := range c.values[1:] {
		if v > acc {
			acc = v
		}
	}
	return float64(acc), nil
}

func (c *Durations) UniqueStable() []string {
	return uniqueStable(len(c.values), c.Label)
}

func (c *Durations) Dtype() plot.Dtype {
	return plot.DtypeDuration
}

func dayCount(t time.Time) float64 {
	return float64(t.Unix()) / 86400
}

func uniqueStable(n int, label func(int) string) []string {
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for i := 0; i < n; i++ {
		v := label(i)
		if _, ok := seen[v]; ok {
			continue
		}
		list = append(list, v)
		seen[v] = struct{}{}
	}
	return list
}
