package journal

import (
	"encoding/json"
	"time"

	"petshop/catalog/internal/domain"
)

// Event records one successful mutation.
type Event struct {
	Resource string      `json:"resource"`            // categories, sizes
	Action   string      `json:"action"`              // create, update, delete, toggle, reorder
	EntityID domain.ID   `json:"entity_id,omitempty"` // zero for create and reorder
	IDs      []domain.ID `json:"ids,omitempty"`       // reorder sequence
	Message  string      `json:"message,omitempty"`
	At       time.Time   `json:"at"`
}

func (e Event) EventType() string {
	return e.Resource + "." + e.Action
}

func (e Event) EventValue() ([]byte, error) {
	return json.Marshal(e)
}

// Entry is an event read back with its stream id.
type Entry struct {
	ID    string
	Event Event
}
