package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

type BaseEvent struct {
	EventID     uuid.UUID `json:"eventId"`
	AggregateID uuid.UUID `json:"aggregateId"`
	Version     int       `json:"version"` // Version of the account's journal *after* this event.
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
}

type Event interface {
	GetBase() BaseEvent
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

const (
	AccountOpenedType  EventType = "AccountOpened"
	MoneyAddedType     EventType = "MoneyAdded"
	MoneyRetrievedType EventType = "MoneyRetrieved"
	AccountRenamedType EventType = "AccountRenamed"
)

func NewBaseEvent(aggregateID uuid.UUID, version int, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New(),
		AggregateID: aggregateID,
		Version:     version,
		Timestamp:   time.Now().UTC(),
		Type:        eventType,
	}
}
