package models

import "fmt"

// Selection is the form mode: either nothing is selected (Add creates a new
// contact) or a contact id is selected (Update and Delete act on it).
type Selection struct {
	id       int64
	selected bool
}

// NoSelection returns the "new entry" state.
func NoSelection() Selection {
	return Selection{}
}

// Selected returns the "editing" state for id.
func Selected(id int64) Selection {
	return Selection{id: id, selected: true}
}

// ID returns the selected contact id and whether a contact is selected.
func (s Selection) ID() (int64, bool) {
	return s.id, s.selected
}

func (s Selection) IsSelected() bool {
	return s.selected
}

func (s Selection) String() string {
	if !s.selected {
		return "none"
	}
	return fmt.Sprintf("contact %d", s.id)
}
