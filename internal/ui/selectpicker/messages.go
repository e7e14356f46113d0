package selectpicker

// Fallback messages, emitted whenever the corresponding Config callback
// is nil. Every message carries the picker's instance ID so hosts with
// several pickers on screen can route by sender.

// SelectMsg reports an option being committed.
type SelectMsg[T any] struct {
	ID    string
	Value string
	Item  T
}

// ChangeMsg reports the committed value changing. An empty Value means
// the selection was cleared.
type ChangeMsg struct {
	ID    string
	Value string
}

// SearchMsg reports the search keyword changing.
type SearchMsg struct {
	ID      string
	Keyword string
}

// CleanMsg reports the clear affordance being used.
type CleanMsg struct {
	ID string
}

// GroupTitleClickMsg reports a click on a group header.
type GroupTitleClickMsg struct {
	ID    string
	Group string
}

// OpenMsg reports the menu opening.
type OpenMsg struct {
	ID string
}

// CloseMsg reports the menu closing.
type CloseMsg struct {
	ID string
}

// EnteredMsg follows OpenMsg once the open transition has settled.
type EnteredMsg struct {
	ID string
}

// ExitedMsg follows CloseMsg once the close transition has settled.
type ExitedMsg struct {
	ID string
}
