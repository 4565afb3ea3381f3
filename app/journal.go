package app

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"unified-ledger/domain"
	"unified-ledger/events"
	"unified-ledger/store"
)

// journalingService decorates a Service by recording every successful
// mutation in an EventStore.
type journalingService struct {
	next   Service
	store  store.EventStore
	logger log.Logger
}

// NewJournalingService returns a Service that appends an event to es after
// each successful mutation of next. Append failures are logged; they never
// change the result of the ledger operation.
func NewJournalingService(next Service, es store.EventStore, logger log.Logger) Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &journalingService{
		next:   next,
		store:  es,
		logger: logger,
	}
}

func (s *journalingService) AddAccount(account domain.Holder) uuid.UUID {
	id := s.next.AddAccount(account)
	view, err := s.next.GetAccount(id)
	if err != nil {
		level.Error(s.logger).Log("msg", "added account not found", "account", id, "err", err)
		return id
	}
	initial, ok := s.amount(id, events.AccountOpenedType, view.Value)
	if !ok {
		return id
	}
	s.record(id, events.AccountOpenedType, func(base events.BaseEvent) events.Event {
		return events.AccountOpenedEvent{
			BaseEvent:    base,
			Name:         view.Name,
			Currency:     view.Currency,
			InitialValue: initial,
		}
	})
	return id
}

func (s *journalingService) GetAccount(id uuid.UUID) (domain.AccountView, error) {
	return s.next.GetAccount(id)
}

func (s *journalingService) AddAccountMoney(id uuid.UUID, amount float64) error {
	if err := s.next.AddAccountMoney(id, amount); err != nil {
		return err
	}
	added, ok := s.amount(id, events.MoneyAddedType, amount)
	if !ok {
		return nil
	}
	s.record(id, events.MoneyAddedType, func(base events.BaseEvent) events.Event {
		return events.MoneyAddedEvent{BaseEvent: base, Amount: added}
	})
	return nil
}

func (s *journalingService) RetrieveAccountMoney(id uuid.UUID, amount float64) (float64, error) {
	retrieved, err := s.next.RetrieveAccountMoney(id, amount)
	if err != nil {
		return retrieved, err
	}
	removed, ok := s.amount(id, events.MoneyRetrievedType, retrieved)
	if !ok {
		return retrieved, nil
	}
	s.record(id, events.MoneyRetrievedType, func(base events.BaseEvent) events.Event {
		return events.MoneyRetrievedEvent{BaseEvent: base, Amount: removed}
	})
	return retrieved, nil
}

func (s *journalingService) GetAccountMoney(id uuid.UUID) (float64, error) {
	return s.next.GetAccountMoney(id)
}

func (s *journalingService) RenameAccount(id uuid.UUID, name string) error {
	before, err := s.next.GetAccount(id)
	if err != nil {
		return err
	}
	if err := s.next.RenameAccount(id, name); err != nil {
		return err
	}
	s.record(id, events.AccountRenamedType, func(base events.BaseEvent) events.Event {
		return events.AccountRenamedEvent{BaseEvent: base, PreviousName: before.Name, Name: name}
	})
	return nil
}

func (s *journalingService) Accounts() []domain.AccountView {
	return s.next.Accounts()
}

// amount converts a reference amount for an event. Balances that overflowed
// float64 have no decimal form, so the event is reported and skipped.
func (s *journalingService) amount(id uuid.UUID, eventType events.EventType, v float64) (decimal.Decimal, bool) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		level.Error(s.logger).Log("msg", "non-finite amount not journaled", "account", id, "type", eventType, "amount", v)
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(v), true
}

func (s *journalingService) record(id uuid.UUID, eventType events.EventType, build func(events.BaseEvent) events.Event) {
	version := s.store.CurrentVersion(id)
	event := build(events.NewBaseEvent(id, version+1, eventType))
	if err := s.store.SaveEvents(id, version, []events.Event{event}); err != nil {
		level.Error(s.logger).Log("msg", "journal append failed", "account", id, "type", eventType, "err", err)
	}
}

// History returns a page of the journal recorded for an account, counting
// only the events newer than query.AfterVersion.
func History(es store.EventStore, query GetHistoryQuery) ([]events.Event, error) {
	var history []events.Event
	var err error
	if query.AfterVersion > 0 {
		history, err = es.GetEventsAfterVersion(query.AccountID, query.AfterVersion)
	} else {
		history, err = es.GetEvents(query.AccountID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("cannot get history: %w", domain.AccountNotFoundError{ID: query.AccountID})
		}
		return nil, fmt.Errorf("failed to get event history for account %s: %w", query.AccountID, err)
	}

	totalEvents := len(history)
	start := query.Skip
	if start < 0 {
		start = 0
	}
	if start >= totalEvents {
		return []events.Event{}, nil
	}

	end := start + query.Limit
	if query.Limit <= 0 || end > totalEvents {
		end = totalEvents
	}

	return history[start:end], nil
}
