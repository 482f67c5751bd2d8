package csvfile

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"salesgen/internal/core"
	"salesgen/internal/export"
)

func sampleDataset(months, products int) core.Dataset {
	base := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	var records []core.Record
	for m := 0; m < months; m++ {
		month := base.AddDate(0, m, 0)
		for p := 1; p <= products; p++ {
			price := core.Money{Cents: int64(500 + m*100 + p)}
			records = append(records, core.NewRecord(month, "Product "+strconv.Itoa(p), price, 50+p))
		}
	}
	return core.Dataset{RunID: "test-run", GeneratedAt: base, Records: records}
}

func TestWriteDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	ds := sampleDataset(3, 2)

	ref, err := New(path).WriteDataset(context.Background(), ds)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if ref != path {
		t.Fatalf("expected ref %q, got %q", path, ref)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	first := strings.SplitN(string(data), "\n", 2)[0]
	if want := strings.Join(export.Header, ","); first != want {
		t.Fatalf("header: expected %q, got %q", want, first)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1+len(ds.Records) {
		t.Fatalf("expected %d lines, got %d", 1+len(ds.Records), len(rows))
	}

	for i, row := range rows[1:] {
		if len(row) != 5 {
			t.Fatalf("row %d: expected 5 fields, got %d", i, len(row))
		}
		want := ds.Records[i]
		if row[0] != core.MonthLabel(want.Month) || row[1] != want.Product {
			t.Fatalf("row %d labels: got %v", i, row)
		}
		priceCents, err := core.ParseDecimalToCents(row[2])
		if err != nil {
			t.Fatalf("row %d price %q: %v", i, row[2], err)
		}
		qty, err := strconv.Atoi(row[3])
		if err != nil {
			t.Fatalf("row %d quantity %q: %v", i, row[3], err)
		}
		amountCents, err := core.ParseDecimalToCents(row[4])
		if err != nil {
			t.Fatalf("row %d amount %q: %v", i, row[4], err)
		}
		if amountCents != priceCents*int64(qty) {
			t.Fatalf("row %d: amount %d != price %d * qty %d", i, amountCents, priceCents, qty)
		}
	}
}

func TestWriteDatasetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	w := New(path)

	if _, err := w.WriteDataset(context.Background(), sampleDataset(12, 5)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := w.WriteDataset(context.Background(), sampleDataset(1, 1)); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines after overwrite, got %d", len(lines))
	}
}

func TestWriteDatasetQuotesDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	month := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := core.Dataset{RunID: "run", Records: []core.Record{
		core.NewRecord(month, "Widgets, large", core.Money{Cents: 500}, 50),
	}}

	if _, err := New(path).WriteDataset(context.Background(), ds); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), `"Widgets, large"`) {
		t.Fatalf("expected quoted product name, got:\n%s", data)
	}
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rows[1][1] != "Widgets, large" {
		t.Fatalf("round trip: got %q", rows[1][1])
	}
}

func TestWriteDatasetCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "fixtures", "sales_data.csv")
	if _, err := New(path).WriteDataset(context.Background(), sampleDataset(1, 1)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestWriteDatasetRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	ds := sampleDataset(1, 1)
	ds.Records[0].Amount.Cents++

	if _, err := New(path).WriteDataset(context.Background(), ds); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("invalid dataset must not produce a file, stat err=%v", err)
	}
}
