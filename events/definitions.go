package events

import (
	"github.com/shopspring/decimal"

	"unified-ledger/shared"
)

// Amounts recorded in the journal are in the reference unit.

type AccountOpenedEvent struct {
	BaseEvent
	Name         string          `json:"name"`
	Currency     shared.Currency `json:"currency"`
	InitialValue decimal.Decimal `json:"initialValue"`
}

type MoneyAddedEvent struct {
	BaseEvent
	Amount decimal.Decimal `json:"amount"`
}

type MoneyRetrievedEvent struct {
	BaseEvent
	Amount decimal.Decimal `json:"amount"`
}

type AccountRenamedEvent struct {
	BaseEvent
	PreviousName string `json:"previousName"`
	Name         string `json:"name"`
}
