package amqp

import (
	"encoding/json"
	"time"

	"salesgen/internal/core"
)

// RecordMessage carries one generated sales record. Consumers can rebuild
// the full dataset from the run id plus the sequence numbers.
type RecordMessage struct {
	RunID          string    `json:"run_id"`
	Sequence       int       `json:"sequence"`
	Month          string    `json:"month"`
	Product        string    `json:"product"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	AmountCents    int64     `json:"amount_cents"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewRecordMessage builds the message for one record of a run.
func NewRecordMessage(runID string, sequence int, r core.Record) *RecordMessage {
	return &RecordMessage{
		RunID:          runID,
		Sequence:       sequence,
		Month:          core.MonthLabel(r.Month),
		Product:        r.Product,
		UnitPriceCents: r.UnitPrice.Cents,
		Quantity:       r.Quantity,
		AmountCents:    r.Amount.Cents,
		Timestamp:      time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecordMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordMessageFromJSON creates a message from JSON bytes
func RecordMessageFromJSON(data []byte) (*RecordMessage, error) {
	var msg RecordMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
