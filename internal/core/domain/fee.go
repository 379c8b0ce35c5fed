package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeType classifies a fee-collection record.
type FeeType string

const (
	FeeTypeNetwork    FeeType = "network"
	FeeTypeProtocol   FeeType = "protocol"
	FeeTypeConversion FeeType = "conversion"
)

// FeeStatus tracks a record from scheduling to completion.
type FeeStatus string

const (
	FeeStatusPending   FeeStatus = "pending"
	FeeStatusCollected FeeStatus = "collected"
)

// FeeCollectionRecord is one append-only entry in the fee-collection trail.
type FeeCollectionRecord struct {
	TransactionID     uuid.UUID       `json:"transaction_id"`
	FeeAmount         decimal.Decimal `json:"fee_amount"`
	FeeType           FeeType         `json:"fee_type"`
	CollectionAddress string          `json:"collection_address"`
	Timestamp         time.Time       `json:"timestamp"`
	Status            FeeStatus       `json:"status"`
}
