package arbor

// ChangeType identifies the kind of ChangeEvent.
type ChangeType uint8

const (
	// ChangeValue is emitted when a control's value is edited.
	ChangeValue ChangeType = iota
	// ChangeClick is emitted when a button is activated.
	ChangeClick
	// ChangeSelect is emitted when a selector or notebook picks a new
	// state.
	ChangeSelect
	// ChangeText is emitted when an input box's text is edited or
	// entered.
	ChangeText
)

func (t ChangeType) String() string {
	switch t {
	case ChangeValue:
		return "value"
	case ChangeClick:
		return "click"
	case ChangeSelect:
		return "select"
	case ChangeText:
		return "text"
	}
	return "unknown"
}

// ChangeEvent reports a user edit. Source is the control that changed;
// Value carries the float value, Index the selected state and On the
// button state, whichever apply. Text events carry the text, with On set
// when it was committed with Enter.
type ChangeEvent struct {
	Type   ChangeType
	Source Element
	Value  float64
	Index  int
	On     bool
	Text   string
}

// EventSink receives ChangeEvents from a View. Implement it to bridge UI
// edits into another system; see the ecs sub-package for a Donburi
// adapter.
type EventSink interface {
	EmitEvent(event ChangeEvent)
}
