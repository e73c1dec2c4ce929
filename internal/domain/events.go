package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged             EventType = "QueryChanged"
	EventResultSelected           EventType = "ResultSelected"
	EventResultsVisibilityChanged EventType = "ResultsVisibilityChanged"
	EventSourceReplaced           EventType = "SourceReplaced"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted every time the query text changes,
// including changes to the empty string.
type QueryChangedEvent struct {
	Query string // raw text, not trimmed
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ResultSelectedEvent is emitted when a result is committed
type ResultSelectedEvent struct {
	Item any
}

func (e ResultSelectedEvent) Type() EventType { return EventResultSelected }

// ResultsVisibilityChangedEvent is emitted when the results popup is shown or hidden
type ResultsVisibilityChangedEvent struct {
	Visible bool
	Count   int // size of the result set at the time of the change
}

func (e ResultsVisibilityChangedEvent) Type() EventType { return EventResultsVisibilityChanged }

// SourceReplacedEvent is emitted when the caller swaps the source collection
type SourceReplacedEvent struct {
	Size int
}

func (e SourceReplacedEvent) Type() EventType { return EventSourceReplaced }
