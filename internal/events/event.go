package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType doubles as the AMQP routing key
type EventType string

const (
	EntryCreated    EventType = "entry.created"
	EntryDeleted    EventType = "entry.deleted"
	TransferCreated EventType = "transfer.created"
	TransferDeleted EventType = "transfer.deleted"
)

// BalanceChange is one account movement caused by the event
type BalanceChange struct {
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// Event announces a committed ledger mutation
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       EventType       `json:"type"`
	UserID     uuid.UUID       `json:"user_id"`
	RecordID   uuid.UUID       `json:"record_id"`
	Changes    []BalanceChange `json:"changes"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewEvent stamps a new event with an id and the current time
func NewEvent(eventType EventType, userID, recordID uuid.UUID, changes []BalanceChange) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		RecordID:   recordID,
		Changes:    changes,
		OccurredAt: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EventFromJSON decodes an event published by ToJSON
func EventFromJSON(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
