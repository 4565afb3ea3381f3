package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"unified-ledger/events"
)

var (
	ErrOptimisticLock = errors.New("optimistic lock error: version conflict")
	ErrNotFound       = errors.New("journal not found")
)

// EventStore keeps the journal of every account, one ordered stream per
// account id.
type EventStore interface {
	SaveEvents(aggregateID uuid.UUID, expectedVersion int, eventsToSave []events.Event) error

	GetEvents(aggregateID uuid.UUID) ([]events.Event, error)

	GetEventsAfterVersion(aggregateID uuid.UUID, version int) ([]events.Event, error)

	// CurrentVersion is the version of the last saved event, or 0 when the
	// stream is empty.
	CurrentVersion(aggregateID uuid.UUID) int
}

type InMemoryEventStore struct {
	sync.RWMutex
	streams map[uuid.UUID][]events.Event
}

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		streams: make(map[uuid.UUID][]events.Event),
	}
}

func (s *InMemoryEventStore) SaveEvents(aggregateID uuid.UUID, expectedVersion int, newEvents []events.Event) error {
	s.Lock()
	defer s.Unlock()

	if len(newEvents) == 0 {
		return nil
	}

	currentVersion := s.currentVersionLocked(aggregateID)
	if currentVersion != expectedVersion {
		return fmt.Errorf("%w: expected version %d, but current version is %d for account %s",
			ErrOptimisticLock, expectedVersion, currentVersion, aggregateID)
	}

	nextVersion := expectedVersion
	for _, event := range newEvents {
		base := event.GetBase()
		nextVersion++
		if base.Version != nextVersion {
			return fmt.Errorf("event sequence error for account %s: expected version %d for event %T (%s), but got %d",
				aggregateID, nextVersion, event, base.EventID, base.Version)
		}
		if base.AggregateID != aggregateID {
			return fmt.Errorf("event account ID mismatch: stream is for %s, but event %T (%s) has ID %s",
				aggregateID, event, base.EventID, base.AggregateID)
		}
	}

	s.streams[aggregateID] = append(s.streams[aggregateID], newEvents...)
	return nil
}

// GetEvents returns a copy of the stream, ErrNotFound when nothing was ever
// saved for aggregateID.
func (s *InMemoryEventStore) GetEvents(aggregateID uuid.UUID) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	streamData, ok := s.streams[aggregateID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, aggregateID)
	}

	copiedStream := make([]events.Event, len(streamData))
	copy(copiedStream, streamData)
	return copiedStream, nil
}

func (s *InMemoryEventStore) GetEventsAfterVersion(aggregateID uuid.UUID, version int) ([]events.Event, error) {
	s.RLock()
	defer s.RUnlock()

	streamData, ok := s.streams[aggregateID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, aggregateID)
	}

	startIndex := -1
	for i, event := range streamData {
		if event.GetBase().Version > version {
			startIndex = i
			break
		}
	}

	if startIndex == -1 {
		return []events.Event{}, nil
	}

	result := make([]events.Event, len(streamData)-startIndex)
	copy(result, streamData[startIndex:])
	return result, nil
}

func (s *InMemoryEventStore) CurrentVersion(aggregateID uuid.UUID) int {
	s.RLock()
	defer s.RUnlock()
	return s.currentVersionLocked(aggregateID)
}

func (s *InMemoryEventStore) currentVersionLocked(aggregateID uuid.UUID) int {
	stream := s.streams[aggregateID]
	if len(stream) == 0 {
		return 0
	}
	return stream[len(stream)-1].GetBase().Version
}
