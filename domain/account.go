package domain

import (
	"fmt"

	"github.com/google/uuid"

	"unified-ledger/shared"
)

// Holder is an account seen independently of its currency. Every amount that
// crosses it is in the reference unit, except Amount.
type Holder interface {
	ID() uuid.UUID
	Name() string
	Currency() shared.Currency
	// Amount is the balance in the account's own currency. It differs from
	// Value whenever the exchange rate is not 1.
	Amount() float64
	Value() float64
	AddMoney(ref float64)
	RetrieveMoney(ref float64) float64
	Rename(name string)
	View() AccountView
}

// AccountView is a read-only copy of an account's state.
type AccountView struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Currency shared.Currency `json:"currency"`
	Amount   float64         `json:"amount"`
	Value    float64         `json:"value"`
}

var (
	_ Holder = (*Account[Dollar, *Dollar])(nil)
	_ Holder = (*Account[Euro, *Euro])(nil)
	_ Holder = (*Account[Ouguiya, *Ouguiya])(nil)
)

// Account holds money in exactly one currency, fixed by its type parameter.
type Account[C any, PC Denomination[C]] struct {
	id    uuid.UUID
	name  string
	money C
}

type accountOptions struct {
	id     uuid.UUID
	amount float64
}

type AccountOption func(*accountOptions)

// WithID sets the account id instead of generating one. uuid.Nil means generate.
func WithID(id uuid.UUID) AccountOption {
	return func(o *accountOptions) { o.id = id }
}

// WithAmount sets the opening balance, given in the reference unit.
func WithAmount(ref float64) AccountOption {
	return func(o *accountOptions) { o.amount = ref }
}

// NewAccount opens an account in currency C, e.g. NewAccount[Euro]("alice").
func NewAccount[C any, PC Denomination[C]](name string, opts ...AccountOption) *Account[C, PC] {
	var o accountOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	return &Account[C, PC]{
		id:    o.id,
		name:  name,
		money: *NewMoney[C, PC](o.amount),
	}
}

// OpenAccount opens an account in the currency named by code.
func OpenAccount(code shared.Currency, name string, opts ...AccountOption) (Holder, error) {
	switch code {
	case shared.USD:
		return NewAccount[Dollar](name, opts...), nil
	case shared.EUR:
		return NewAccount[Euro](name, opts...), nil
	case shared.MRU:
		return NewAccount[Ouguiya](name, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownCurrency, code, shared.Supported)
	}
}

func (a *Account[C, PC]) wallet() PC {
	return PC(&a.money)
}

func (a *Account[C, PC]) ID() uuid.UUID {
	return a.id
}

func (a *Account[C, PC]) Name() string {
	return a.name
}

func (a *Account[C, PC]) Currency() shared.Currency {
	return a.wallet().Currency()
}

func (a *Account[C, PC]) Amount() float64 {
	return a.wallet().Amount()
}

func (a *Account[C, PC]) Value() float64 {
	return a.wallet().Value()
}

func (a *Account[C, PC]) AddMoney(ref float64) {
	a.wallet().Add(ref)
}

// RetrieveMoney takes ref out of the account and returns it. The balance may
// go negative; the result is always the requested amount.
func (a *Account[C, PC]) RetrieveMoney(ref float64) float64 {
	a.wallet().Remove(ref)
	return ref
}

func (a *Account[C, PC]) Rename(name string) {
	a.name = name
}

func (a *Account[C, PC]) View() AccountView {
	return AccountView{
		ID:       a.id,
		Name:     a.name,
		Currency: a.Currency(),
		Amount:   a.Amount(),
		Value:    a.Value(),
	}
}
