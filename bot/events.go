package bot

// EventKind classifies lifecycle events derived from consecutive snapshots.
type EventKind string

const (
	// EventUnitDestroyed fires for every tag listed dead since the last
	// tick, own and enemy alike.
	EventUnitDestroyed EventKind = "unit_destroyed"
	// EventUnitCreated fires when an own non-structure tag is seen for the
	// first time.
	EventUnitCreated EventKind = "unit_created"
	// EventConstructionStarted fires when an own structure tag is first
	// seen with construction still in progress.
	EventConstructionStarted EventKind = "construction_started"
	// EventConstructionComplete fires when an own structure finishes, either
	// on first sight already complete or on the tick its progress reaches 1.
	EventConstructionComplete EventKind = "construction_complete"
)

// Event is one lifecycle notification delivered before the step callback.
type Event struct {
	Kind EventKind
	Tag  uint64
}
