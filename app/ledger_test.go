package app_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"unified-ledger/app"
	"unified-ledger/domain"
	"unified-ledger/shared"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func assertNotFound(t *testing.T, err error, id uuid.UUID) {
	t.Helper()
	var notFound domain.AccountNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected AccountNotFoundError, got %T: %v", err, err)
	}
	if notFound.ID != id {
		t.Errorf("expected not-found id %s, got %s", id, notFound.ID)
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected error to match ErrAccountNotFound")
	}
}

func TestLedger_AddAccount(t *testing.T) {
	ledger := app.NewLedger()
	id := uuid.New()

	got := ledger.AddAccount(domain.NewAccount[domain.Euro]("account", domain.WithID(id)))
	if got != id {
		t.Fatalf("expected AddAccount to return %s, got %s", id, got)
	}

	view, err := ledger.GetAccount(id)
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if view.Name != "account" {
		t.Errorf("expected name 'account', got '%s'", view.Name)
	}
	if view.Currency != shared.EUR {
		t.Errorf("expected currency EUR, got %s", view.Currency)
	}
}

func TestLedger_AddMultipleCurrencies(t *testing.T) {
	ledger := app.NewLedger()
	id1, id2, id3 := uuid.New(), uuid.New(), uuid.New()
	{
		ledger.AddAccount(domain.NewAccount[domain.Euro]("account1", domain.WithID(id1)))
		ledger.AddAccount(domain.NewAccount[domain.Dollar]("account2", domain.WithID(id2)))
		ledger.AddAccount(domain.NewAccount[domain.Ouguiya]("account3", domain.WithID(id3), domain.WithAmount(5)))
	}

	for id, name := range map[uuid.UUID]string{id1: "account1", id2: "account2", id3: "account3"} {
		view, err := ledger.GetAccount(id)
		if err != nil {
			t.Fatalf("GetAccount(%s) failed: %v", name, err)
		}
		if view.Name != name {
			t.Errorf("expected name '%s', got '%s'", name, view.Name)
		}
	}

	if err := ledger.AddAccountMoney(id1, 100); err != nil {
		t.Fatalf("AddAccountMoney failed: %v", err)
	}
	if err := ledger.AddAccountMoney(id2, 10); err != nil {
		t.Fatalf("AddAccountMoney failed: %v", err)
	}
	if _, err := ledger.RetrieveAccountMoney(id3, 2); err != nil {
		t.Fatalf("RetrieveAccountMoney failed: %v", err)
	}

	want := map[uuid.UUID]float64{id1: 100, id2: 10, id3: 3}
	for id, value := range want {
		got, err := ledger.GetAccountMoney(id)
		if err != nil {
			t.Fatalf("GetAccountMoney failed: %v", err)
		}
		if !approx(got, value) {
			t.Errorf("account %s: expected %v, got %v", id, value, got)
		}
	}
}

func TestLedger_UnknownAccount(t *testing.T) {
	ledger := app.NewLedger()
	ledger.AddAccount(domain.NewAccount[domain.Dollar]("account"))
	missing := uuid.New()

	t.Run("GetAccount", func(t *testing.T) {
		_, err := ledger.GetAccount(missing)
		assertNotFound(t, err, missing)
	})
	t.Run("GetAccountMoney", func(t *testing.T) {
		_, err := ledger.GetAccountMoney(missing)
		assertNotFound(t, err, missing)
	})
	t.Run("AddAccountMoney", func(t *testing.T) {
		assertNotFound(t, ledger.AddAccountMoney(missing, 10), missing)
	})
	t.Run("RetrieveAccountMoney", func(t *testing.T) {
		_, err := ledger.RetrieveAccountMoney(missing, 10)
		assertNotFound(t, err, missing)
	})
	t.Run("RenameAccount", func(t *testing.T) {
		assertNotFound(t, ledger.RenameAccount(missing, "hello"), missing)
	})
}

func TestLedger_AddMoneyWeakCurrency(t *testing.T) {
	ledger := app.NewLedger()
	id := ledger.AddAccount(domain.NewAccount[domain.Ouguiya]("account"))

	if err := ledger.AddAccountMoney(id, 10); err != nil {
		t.Fatalf("AddAccountMoney failed: %v", err)
	}
	got, err := ledger.GetAccountMoney(id)
	if err != nil {
		t.Fatalf("GetAccountMoney failed: %v", err)
	}
	if !approx(got, 10) {
		t.Errorf("expected 10, got %v", got)
	}

	view, _ := ledger.GetAccount(id)
	if view.Amount < 333 {
		t.Errorf("expected a native amount above 333, got %v", view.Amount)
	}
}

func TestLedger_RetrieveMoney(t *testing.T) {
	ledger := app.NewLedger()
	id := ledger.AddAccount(domain.NewAccount[domain.Euro]("account"))

	if err := ledger.AddAccountMoney(id, 10); err != nil {
		t.Fatalf("AddAccountMoney failed: %v", err)
	}
	got, err := ledger.RetrieveAccountMoney(id, 5)
	if err != nil {
		t.Fatalf("RetrieveAccountMoney failed: %v", err)
	}
	if got != 5 {
		t.Errorf("expected to retrieve 5, got %v", got)
	}
	value, _ := ledger.GetAccountMoney(id)
	if !approx(value, 5) {
		t.Errorf("expected balance 5, got %v", value)
	}

	t.Run("Overdraft", func(t *testing.T) {
		got, err := ledger.RetrieveAccountMoney(id, 20)
		if err != nil {
			t.Fatalf("RetrieveAccountMoney failed: %v", err)
		}
		if got != 20 {
			t.Errorf("expected to retrieve 20, got %v", got)
		}
		value, _ := ledger.GetAccountMoney(id)
		if !approx(value, -15) {
			t.Errorf("expected balance -15, got %v", value)
		}
	})
}

func TestLedger_RenameAccount(t *testing.T) {
	ledger := app.NewLedger()
	id := ledger.AddAccount(domain.NewAccount[domain.Euro]("account"))

	if err := ledger.RenameAccount(id, "hello"); err != nil {
		t.Fatalf("RenameAccount failed: %v", err)
	}
	view, _ := ledger.GetAccount(id)
	if view.Name != "hello" {
		t.Errorf("expected name 'hello', got '%s'", view.Name)
	}
	if view.ID != id {
		t.Errorf("rename changed the id")
	}
}

func TestLedger_GetAccountReturnsCopy(t *testing.T) {
	ledger := app.NewLedger()
	id := ledger.AddAccount(domain.NewAccount[domain.Dollar]("account", domain.WithAmount(10)))

	view, _ := ledger.GetAccount(id)
	view.Name = "changed"
	view.Value = 1e9

	again, _ := ledger.GetAccount(id)
	if again.Name != "account" || !approx(again.Value, 10) {
		t.Errorf("ledger state changed through a view: %+v", again)
	}
}

func TestLedger_Accounts(t *testing.T) {
	ledger := app.NewLedger()
	if got := ledger.Accounts(); len(got) != 0 {
		t.Fatalf("expected no accounts, got %d", len(got))
	}

	ledger.AddAccount(domain.NewAccount[domain.Euro]("carol"))
	ledger.AddAccount(domain.NewAccount[domain.Dollar]("alice"))
	ledger.AddAccount(domain.NewAccount[domain.Ouguiya]("bob"))

	got := ledger.Accounts()
	if len(got) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(got))
	}
	for i, name := range []string{"alice", "bob", "carol"} {
		if got[i].Name != name {
			t.Errorf("position %d: expected '%s', got '%s'", i, name, got[i].Name)
		}
	}
}
