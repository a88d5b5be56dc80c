package views

import (
	"fmt"

	"contact-manager/internal/models"
	"contact-manager/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// formPanelOffset is the share of the window width given to the entry form.
const formPanelOffset = 0.44

// MainView is the contact manager window: entry form on the left, search
// and contact list on the right, status bar along the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	form          *components.ContactForm
	searchBar     *components.SearchBar
	contactList   *components.ContactList
	statusBar     *components.StatusBar
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.form = components.NewContactForm()
	mv.searchBar = components.NewSearchBar()
	mv.contactList = components.NewContactList()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	formPanel := widget.NewCard("Contact", "", mv.form.GetContainer())

	listPanel := container.NewBorder(
		mv.searchBar.GetContainer(), // top
		nil,                         // bottom
		nil,                         // left
		nil,                         // right
		mv.contactList.GetContainer(),
	)

	split := container.NewHSplit(formPanel, listPanel)
	split.SetOffset(formPanelOffset)

	mv.mainContainer = container.NewBorder(
		nil,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		split,
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

func (mv *MainView) SetAddHandler(handler func()) {
	mv.form.SetAddHandler(handler)
}

func (mv *MainView) SetUpdateHandler(handler func()) {
	mv.form.SetUpdateHandler(handler)
}

func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.form.SetDeleteHandler(handler)
}

func (mv *MainView) SetClearHandler(handler func()) {
	mv.form.SetClearHandler(handler)
}

func (mv *MainView) SetSearchHandler(handler func()) {
	mv.searchBar.SetSearchHandler(handler)
}

func (mv *MainView) SetSelectHandler(handler func(index int)) {
	mv.contactList.SetSelectHandler(handler)
}

func (mv *MainView) SetUnselectHandler(handler func()) {
	mv.contactList.SetUnselectHandler(handler)
}

// UI update methods - called by controller

func (mv *MainView) Fields() models.ContactFields {
	return mv.form.Fields()
}

func (mv *MainView) SetFields(fields models.ContactFields) {
	mv.form.SetFields(fields)
}

func (mv *MainView) ClearFields() {
	mv.form.Clear()
}

func (mv *MainView) SearchText() string {
	return mv.searchBar.Text()
}

// SetEntries replaces the visible contact list.
func (mv *MainView) SetEntries(entries []string) {
	mv.contactList.SetEntries(entries)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SetContactCount(count int) {
	mv.statusBar.SetContactCount(count)
}

// ShowWarning displays a blocking information dialog
func (mv *MainView) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

// ShowConfirm displays a yes/no confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) GetForm() *components.ContactForm {
	return mv.form
}

func (mv *MainView) GetSearchBar() *components.SearchBar {
	return mv.searchBar
}

func (mv *MainView) GetContactList() *components.ContactList {
	return mv.contactList
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
