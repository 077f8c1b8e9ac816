package field

// Event is the record dispatched to a field's parse listeners.
type Event struct {
	Field      *Field
	Collection *Collection
	// Name is the name or alias the token matched, e.g. "vv" for the verbose field.
	Name string
}

// Listener reacts to a parse event. A non-nil error stops the binder.
type Listener func(ev Event) error
