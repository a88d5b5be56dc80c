package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar holds the keyword entry and its Go button
type SearchBar struct {
	container *fyne.Container
	entry     *widget.Entry
	goButton  *widget.Button

	searchHandler func()
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	sb.setupEventHandlers()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("Name or phone")

	sb.goButton = widget.NewButton("Go", nil)
	sb.goButton.Importance = widget.HighImportance
}

func (sb *SearchBar) buildLayout() {
	sb.container = container.NewBorder(
		nil,
		nil,
		widget.NewLabel("Search:"),
		sb.goButton,
		sb.entry,
	)
}

func (sb *SearchBar) setupEventHandlers() {
	sb.goButton.OnTapped = sb.fire
	sb.entry.OnSubmitted = func(string) {
		sb.fire()
	}
}

func (sb *SearchBar) fire() {
	if sb.searchHandler != nil {
		sb.searchHandler()
	}
}

// SetSearchHandler sets the handler run by the Go button and the Enter key
func (sb *SearchBar) SetSearchHandler(handler func()) {
	sb.searchHandler = handler
}

// Text returns the raw search entry text.
func (sb *SearchBar) Text() string {
	return sb.entry.Text
}

func (sb *SearchBar) SetText(text string) {
	sb.entry.SetText(text)
}

// GetContainer returns the search bar container
func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
