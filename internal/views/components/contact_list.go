package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ContactList is the scrollable single-selection list of contact entries
type ContactList struct {
	container *fyne.Container
	list      *widget.List
	entries   []string
	selected  int

	selectHandler   func(int)
	unselectHandler func()
}

// NewContactList creates a new contact list component
func NewContactList() *ContactList {
	cl := &ContactList{selected: -1}
	cl.createComponents()
	cl.buildLayout()
	cl.setupEventHandlers()
	return cl
}

func (cl *ContactList) createComponents() {
	cl.list = widget.NewList(
		func() int {
			return len(cl.entries)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("0 - Template Name (000-0000)")
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(cl.entries) {
				return
			}
			item.(*widget.Label).SetText(cl.entries[id])
		},
	)
}

func (cl *ContactList) buildLayout() {
	// widget.List scrolls internally; the border stretches it to fill.
	cl.container = container.NewBorder(nil, nil, nil, nil, cl.list)
}

func (cl *ContactList) setupEventHandlers() {
	cl.list.OnSelected = func(id widget.ListItemID) {
		cl.selected = id
		if cl.selectHandler != nil {
			cl.selectHandler(id)
		}
	}

	cl.list.OnUnselected = func(id widget.ListItemID) {
		if cl.selected == id {
			cl.selected = -1
		}
		if cl.unselectHandler != nil {
			cl.unselectHandler()
		}
	}
}

func (cl *ContactList) SetSelectHandler(handler func(int)) {
	cl.selectHandler = handler
}

func (cl *ContactList) SetUnselectHandler(handler func()) {
	cl.unselectHandler = handler
}

// SetEntries replaces the list contents and drops any selection.
func (cl *ContactList) SetEntries(entries []string) {
	cl.list.UnselectAll()
	cl.entries = append([]string(nil), entries...)
	cl.selected = -1
	cl.list.Refresh()
}

// Entries returns the lines currently displayed.
func (cl *ContactList) Entries() []string {
	return append([]string(nil), cl.entries...)
}

// Select highlights entry index, firing the select handler.
func (cl *ContactList) Select(index int) {
	cl.list.Select(index)
}

// SelectedIndex returns the highlighted entry or -1.
func (cl *ContactList) SelectedIndex() int {
	return cl.selected
}

// GetContainer returns the list container
func (cl *ContactList) GetContainer() *fyne.Container {
	return cl.container
}
