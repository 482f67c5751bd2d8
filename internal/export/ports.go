// Package export defines the outbound sinks a generated dataset can be
// flushed to, plus the row layout they share.
package export

import (
	"context"
	"strconv"

	"salesgen/internal/core"
)

// Ports for outbound adapters.
type (
	// DatasetWriter flushes a complete dataset to one destination,
	// replacing whatever a previous run left there. The returned ref
	// names the written target (file path, sheet range, queue, table).
	DatasetWriter interface {
		WriteDataset(ctx context.Context, ds core.Dataset) (ref string, err error)
	}
)

// Header is the fixed column header, in output order.
var Header = []string{"month/year", "product name", "unit price", "quantity", "sales amount"}

// RecordRow renders one record as strings in Header order. Money fields
// carry exactly two decimals.
func RecordRow(r core.Record) []string {
	return []string{
		core.MonthLabel(r.Month),
		r.Product,
		r.UnitPrice.Format(),
		strconv.Itoa(r.Quantity),
		r.Amount.Format(),
	}
}
