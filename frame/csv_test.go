package frame

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/plot"
)

const sample = `a,b,day,lap
1,x,2024-01-01,1s
2.5,y,2024-01-02,90s
,z,2024-01-03,2m
`

func TestReadCSV(t *testing.T) {
	df, err := ReadCSV(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if df.Len() != 3 {
		t.Fatalf("rows: got %d", df.Len())
	}

	a, err := df.Column("a")
	if err != nil {
		t.Fatal(err)
	}
	if a.Dtype() != plot.DtypeNumber {
		t.Fatalf("a: got %v", a.Dtype())
	}
	// The empty cell is a null, not a parse failure.
	if _, err := a.Get(2); !errors.Is(err, plot.ErrExtract) {
		t.Fatalf("null cell: got %v", err)
	}
	max, err := a.Max()
	if err != nil {
		t.Fatal(err)
	}
	if max != 2.5 {
		t.Fatalf("max: got %g", max)
	}

	b, err := df.Column("b")
	if err != nil {
		t.Fatal(err)
	}
	if b.Dtype() != plot.DtypeString {
		t.Fatalf("b: got %v", b.Dtype())
	}

	day, err := df.Column("day")
	if err != nil {
		t.Fatal(err)
	}
	if day.Dtype() != plot.DtypeDate {
		t.Fatalf("day: got %v", day.Dtype())
	}
	if day.Label(0) != "2024-01-01" {
		t.Fatalf("day label: got %q", day.Label(0))
	}

	lap, err := df.Column("lap")
	if err != nil {
		t.Fatal(err)
	}
	if lap.Dtype() != plot.DtypeDuration {
		t.Fatalf("lap: got %v", lap.Dtype())
	}
	if lap.Label(1) != "1m30s" {
		t.Fatalf("lap label: got %q", lap.Label(1))
	}
}

func TestReadCSVTooShort(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("a,b\n")); err == nil {
		t.Fatal("header only input should fail")
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	files := make([]string, 3)
	for i := range files {
		files[i] = filepath.Join(dir, string(rune('a'+i))+".csv")
		if err := os.WriteFile(files[i], []byte("x,y\n1,2\n3,4\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	frames, err := LoadAll(files...)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames", len(frames))
	}
	for _, f := range frames {
		if f.Len() != 2 {
			t.Fatalf("rows: got %d", f.Len())
		}
	}

	if _, err := LoadAll(files[0], filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatal("missing file should fail the batch")
	}
}
