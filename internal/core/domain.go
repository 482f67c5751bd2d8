package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type (
	Money struct {
		Cents int64
	}

	// Record is one generated sales row: a product sold in a given month.
	Record struct {
		Month     time.Time
		Product   string
		UnitPrice Money
		Quantity  int
		Amount    Money
	}

	// Dataset is the full output of one generation run, ordered by month
	// first and product second.
	Dataset struct {
		RunID       string
		GeneratedAt time.Time
		Records     []Record
	}
)

var (
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyProduct    = errors.New("empty product name")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrAmountMismatch  = errors.New("sales amount does not match unit price times quantity")
)

// NewRecord builds a record with the sales amount derived from the unit
// price and quantity, so the amount always matches by construction.
func NewRecord(month time.Time, product string, unitPrice Money, quantity int) Record {
	return Record{
		Month:     month,
		Product:   product,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Amount:    Money{Cents: unitPrice.Cents * int64(quantity)},
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (r Record) Validate() error {
	if r.Month.IsZero() {
		return ErrInvalidMonth
	}
	if len(strings.TrimSpace(r.Product)) == 0 {
		return ErrEmptyProduct
	}
	if err := r.UnitPrice.Validate(); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Amount.Cents != r.UnitPrice.Cents*int64(r.Quantity) {
		return ErrAmountMismatch
	}
	return nil
}

func (d Dataset) Validate() error {
	for i, r := range d.Records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
