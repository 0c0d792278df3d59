package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageLoaded         EventType = "PageLoaded"
	EventFetchFailed        EventType = "FetchFailed"
	EventSelectionChanged   EventType = "SelectionChanged"
	EventSelectionCleared   EventType = "SelectionCleared"
	EventBulkSelectStarted  EventType = "BulkSelectStarted"
	EventBulkSelectFinished EventType = "BulkSelectFinished"
	EventPageSizeChanged    EventType = "PageSizeChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageLoadedEvent is emitted when a fetched page has been applied
type PageLoadedEvent struct {
	PageNumber int
	PageSize   int
	Count      int // items on the page
	Total      int // total records reported by the catalog
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// FetchFailedEvent is emitted when a page fetch returns an error
type FetchFailedEvent struct {
	PageNumber int
	PageSize   int
	Err        error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// SelectionChangedEvent is emitted when a record's membership flips
type SelectionChangedEvent struct {
	RecordID int64
	Selected bool
	Count    int // selection size after the change
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the whole selection is dropped
type SelectionClearedEvent struct {
	Previous int // selection size before clearing
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// BulkSelectStartedEvent is emitted when a select-next run begins
type BulkSelectStartedEvent struct {
	Target int
}

func (e BulkSelectStartedEvent) Type() EventType { return EventBulkSelectStarted }

// BulkSelectFinishedEvent is emitted when a select-next run returns to idle
type BulkSelectFinishedEvent struct {
	Requested int
	Selected  int
	Exhausted bool // ran out of pages before satisfying the request
}

func (e BulkSelectFinishedEvent) Type() EventType { return EventBulkSelectFinished }

// PageSizeChangedEvent is emitted when the page size changes
type PageSizeChangedEvent struct {
	From int
	To   int
}

func (e PageSizeChangedEvent) Type() EventType { return EventPageSizeChanged }

// ConfigLoadedEvent is emitted after the configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
