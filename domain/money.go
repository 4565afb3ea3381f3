package domain

import "unified-ledger/shared"

// Money is the capability every concrete currency implements. Arguments and
// results of Value, Add and Remove are expressed in the reference unit; only
// Amount reports the currency's own unit.
type Money interface {
	// ExchangeRate is the number of reference units one native unit is worth.
	ExchangeRate() float64
	Amount() float64
	Value() float64
	Add(ref float64)
	Remove(ref float64)
	Currency() shared.Currency
}

// Denomination constrains a type parameter to a concrete currency whose
// pointer implements Money.
type Denomination[C any] interface {
	*C
	Money
}

// NewMoney holds ref, given in the reference unit, in currency C, e.g.
// NewMoney[Euro](10).
func NewMoney[C any, PC Denomination[C]](ref float64) PC {
	m := PC(new(C))
	m.Add(ref)
	return m
}

// Exchange rates are bound to the concrete types, never to instances.
const (
	dollarRate  = 1.0
	euroRate    = 1.17
	ouguiyaRate = 0.03
)

// Dollar is the reference currency.
type Dollar struct {
	amount float64
}

func (Dollar) ExchangeRate() float64     { return dollarRate }
func (Dollar) Currency() shared.Currency { return shared.USD }
func (d Dollar) Amount() float64         { return d.amount }
func (d Dollar) Value() float64          { return d.amount * dollarRate }
func (d *Dollar) Add(ref float64)        { d.amount += ref / dollarRate }
func (d *Dollar) Remove(ref float64)     { d.amount -= ref / dollarRate }

// Euro is worth more than the reference unit.
type Euro struct {
	amount float64
}

func (Euro) ExchangeRate() float64     { return euroRate }
func (Euro) Currency() shared.Currency { return shared.EUR }
func (e Euro) Amount() float64         { return e.amount }
func (e Euro) Value() float64          { return e.amount * euroRate }
func (e *Euro) Add(ref float64)        { e.amount += ref / euroRate }
func (e *Euro) Remove(ref float64)     { e.amount -= ref / euroRate }

// Ouguiya is worth a small fraction of the reference unit, so its native
// amounts are large.
type Ouguiya struct {
	amount float64
}

func (Ouguiya) ExchangeRate() float64     { return ouguiyaRate }
func (Ouguiya) Currency() shared.Currency { return shared.MRU }
func (o Ouguiya) Amount() float64         { return o.amount }
func (o Ouguiya) Value() float64          { return o.amount * ouguiyaRate }
func (o *Ouguiya) Add(ref float64)        { o.amount += ref / ouguiyaRate }
func (o *Ouguiya) Remove(ref float64)     { o.amount -= ref / ouguiyaRate }
