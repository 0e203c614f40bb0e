package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"
)

var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ReadCSV builds a frame from comma separated rows. The first row
// names the columns, the first data row decides each column type:
// number, date, duration, or plain string. Empty numeric cells become
// nulls.
func ReadCSV(r io.Reader) (*Frame, error) {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true

	records, err := rs.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv needs a header and at least one row")
	}
	var (
		header = slices.Fst(records)
		rows   = slices.Rest(records)
	)
	columns := make([]Column, len(header))
	for i, name := range header {
		cells := make([]string, len(rows))
		for j, row := range rows {
			cells[j] = row[i]
		}
		columns[i] = sniffColumn(name, cells)
	}
	return New(columns...)
}

// Load reads one CSV file.
func Load(file string) (*Frame, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadCSV(r)
}

// LoadAll reads every file concurrently, keeping the input order. The
// first failure cancels the batch.
func LoadAll(files ...string) ([]*Frame, error) {
	var (
		grp    errgroup.Group
		frames = make([]*Frame, len(files))
	)
	for i, file := range files {
		grp.Go(func() error {
			f, err := Load(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			frames[i] = f
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func sniffColumn(name string, cells []string) Column {
	probe := slices.Fst(cells)
	if _, err := strconv.ParseFloat(probe, 64); err == nil {
		values := make([]float64, len(cells))
		for i, c := range cells {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				v = math.NaN()
			}
			values[i] = v
		}
		return NewFloats(name, values)
	}
	if format, ok := dateFormat(probe); ok {
		values := make([]time.Time, len(cells))
		for i, c := range cells {
			values[i], _ = time.Parse(format, c)
		}
		return NewTimes(name, values)
	}
	if _, err := time.ParseDuration(probe); err == nil {
		values := make([]time.Duration, len(cells))
		for i, c := range cells {
			values[i], _ = time.ParseDuration(c)
		}
		return NewDurations(name, values)
	}
	return NewStrings(name, cells)
}

func dateFormat(cell string) (string, bool) {
	for _, f := range dateFormats {
		if _, err := time.Parse(f, cell); err == nil {
			return f, true
		}
	}
	return "", false
}
