package plot

import (
	"fmt"
	"strconv"
)

// testCol is the in-memory column the tests feed the plot with.
type testCol struct {
	values []float64
	labels []string
	dtype  Dtype
}

func numCol(values ...float64) *testCol {
	return &testCol{values: values, dtype: DtypeNumber}
}

func durationCol(values ...float64) *testCol {
	return &testCol{values: values, dtype: DtypeDuration}
}

func labelCol(labels ...string) *testCol {
	return &testCol{labels: labels, dtype: DtypeString}
}

func (c *testCol) Len() int {
	if c.labels != nil {
		return len(c.labels)
	}
	return len(c.values)
}

func (c *testCol) Get(i int) (float64, error) {
	if c.values == nil {
		return 0, fmt.Errorf("labels only: %w", ErrExtract)
	}
	if i < 0 || i >= len(c.values) {
		return 0, fmt.Errorf("row %d: %w", i, ErrExtract)
	}
	return c.values[i], nil
}

func (c *testCol) Label(i int) string {
	if c.labels != nil {
		return c.labels[i]
	}
	return strconv.FormatFloat(c.values[i], 'g', -1, 64)
}

func (c *testCol) Min() (float64, error) {
	return c.pick(func(a, b float64) bool { return b < a })
}

func (c *testCol) Max() (float64, error) {
	return c.pick(func(a, b float64) bool { return b > a })
}

func (c *testCol) pick(better func(float64, float64) bool) (float64, error) {
	if c.values == nil {
		return 0, fmt.Errorf("labels only: %w", ErrExtract)
	}
	if len(c.values) == 0 {
		return 0, ErrEmptyRange
	}
	acc := c.values[0]
	for _, v := range c.values[1:] {
		if better(acc, v) {
			acc = v
		}
	}
	return acc, nil
}

func (c *testCol) UniqueStable() []string {
	var (
		seen = make(map[string]struct{})
		list []string
	)
	for i := 0; i < c.Len(); i++ {
		v := c.Label(i)
		if _, ok := seen[v]; ok {
			continue
		}
		list = append(list, v)
		seen[v] = struct{}{}
	}
	return list
}

func (c *testCol) Dtype() Dtype {
	return c.dtype
}
