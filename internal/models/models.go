package models

// Dataset is the persisted root: every event plus the current-event
// pointer. It is stored as a single JSON blob and is also the wire
// shape for import/export.
type Dataset struct {
	Events         map[string]*Event `json:"events"`
	CurrentEventID string            `json:"currentEventId"`
}

// NewDataset returns an empty dataset ready for use.
func NewDataset() *Dataset {
	return &Dataset{Events: make(map[string]*Event)}
}

// Event represents one voting occasion
type Event struct {
	ID         string         `json:"id"`
	Year       string         `json:"year"`
	Name       string         `json:"name"`
	EventDate  string         `json:"eventDate,omitempty"`
	Categories []string       `json:"categories"`
	CarNames   map[int]string `json:"carNames"` // keys are the car roster
	Slips      []Slip         `json:"slips"`    // newest first
	CreatedAt  string         `json:"createdAt"`
}

// Clone returns a deep copy of the event. Roster and ledger edits
// operate on copies so callers never observe partial mutation.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	out := *e
	out.Categories = append([]string(nil), e.Categories...)
	out.CarNames = make(map[int]string, len(e.CarNames))
	for num, name := range e.CarNames {
		out.CarNames[num] = name
	}
	out.Slips = make([]Slip, len(e.Slips))
	for i, s := range e.Slips {
		out.Slips[i] = Slip{
			Timestamp: s.Timestamp,
			Votes:     append([]Vote(nil), s.Votes...),
		}
	}
	return &out
}

// SortDate returns the key used to order events, most recent first.
func (e *Event) SortDate() string {
	if e.EventDate != "" {
		return e.EventDate
	}
	return e.CreatedAt
}

// Slip is one voter's submission: at most one car choice per category.
// The timestamp is a display key; removal identity is positional.
type Slip struct {
	Timestamp int64  `json:"timestamp"`
	Votes     []Vote `json:"votes"`
}

// Vote is a single category choice within a slip
type Vote struct {
	Category  string `json:"category"`
	CarNumber int    `json:"carNumber"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
