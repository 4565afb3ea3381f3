package app

import (
	"sort"

	"github.com/google/uuid"

	"unified-ledger/domain"
)

// Service is the currency-agnostic ledger API. Every amount is in the
// reference unit.
type Service interface {
	AddAccount(account domain.Holder) uuid.UUID
	GetAccount(id uuid.UUID) (domain.AccountView, error)
	AddAccountMoney(id uuid.UUID, amount float64) error
	RetrieveAccountMoney(id uuid.UUID, amount float64) (float64, error)
	GetAccountMoney(id uuid.UUID) (float64, error)
	RenameAccount(id uuid.UUID, name string) error
	Accounts() []domain.AccountView
}

// Ledger owns accounts of any currency, keyed by account id. It is not safe
// for concurrent use.
type Ledger struct {
	accounts map[uuid.UUID]domain.Holder
}

var _ Service = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[uuid.UUID]domain.Holder),
	}
}

// AddAccount takes ownership of account and returns its id. An account
// already stored under the same id is replaced.
func (l *Ledger) AddAccount(account domain.Holder) uuid.UUID {
	id := account.ID()
	l.accounts[id] = account
	return id
}

func (l *Ledger) GetAccount(id uuid.UUID) (domain.AccountView, error) {
	account, err := l.account(id)
	if err != nil {
		return domain.AccountView{}, err
	}
	return account.View(), nil
}

func (l *Ledger) AddAccountMoney(id uuid.UUID, amount float64) error {
	account, err := l.account(id)
	if err != nil {
		return err
	}
	account.AddMoney(amount)
	return nil
}

// RetrieveAccountMoney returns the requested amount, whatever the balance.
func (l *Ledger) RetrieveAccountMoney(id uuid.UUID, amount float64) (float64, error) {
	account, err := l.account(id)
	if err != nil {
		return 0, err
	}
	return account.RetrieveMoney(amount), nil
}

func (l *Ledger) GetAccountMoney(id uuid.UUID) (float64, error) {
	account, err := l.account(id)
	if err != nil {
		return 0, err
	}
	return account.Value(), nil
}

func (l *Ledger) RenameAccount(id uuid.UUID, name string) error {
	account, err := l.account(id)
	if err != nil {
		return err
	}
	account.Rename(name)
	return nil
}

// Accounts lists every account sorted by name, then id.
func (l *Ledger) Accounts() []domain.AccountView {
	views := make([]domain.AccountView, 0, len(l.accounts))
	for _, account := range l.accounts {
		views = append(views, account.View())
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Name != views[j].Name {
			return views[i].Name < views[j].Name
		}
		return views[i].ID.String() < views[j].ID.String()
	})
	return views
}

func (l *Ledger) account(id uuid.UUID) (domain.Holder, error) {
	account, ok := l.accounts[id]
	if !ok {
		return nil, domain.AccountNotFoundError{ID: id}
	}
	return account, nil
}
