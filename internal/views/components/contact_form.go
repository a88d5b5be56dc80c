package components

import (
	"contact-manager/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ContactForm is the entry form with its action buttons
type ContactForm struct {
	container *fyne.Container

	nameEntry    *widget.Entry
	phoneEntry   *widget.Entry
	emailEntry   *widget.Entry
	addressEntry *widget.Entry

	addButton    *widget.Button
	updateButton *widget.Button
	deleteButton *widget.Button
	clearButton  *widget.Button

	// Event handlers
	addHandler    func()
	updateHandler func()
	deleteHandler func()
	clearHandler  func()
}

// NewContactForm creates a new contact form component
func NewContactForm() *ContactForm {
	form := &ContactForm{}
	form.createComponents()
	form.buildLayout()
	form.setupEventHandlers()
	return form
}

func (f *ContactForm) createComponents() {
	f.nameEntry = widget.NewEntry()
	f.nameEntry.SetPlaceHolder("Full name")

	f.phoneEntry = widget.NewEntry()
	f.phoneEntry.SetPlaceHolder("Phone number")

	f.emailEntry = widget.NewEntry()
	f.emailEntry.SetPlaceHolder("Email (optional)")

	f.addressEntry = widget.NewEntry()
	f.addressEntry.SetPlaceHolder("Address (optional)")

	f.addButton = widget.NewButton("Add Contact", nil)
	f.addButton.Importance = widget.SuccessImportance

	f.updateButton = widget.NewButton("Update Contact", nil)
	f.updateButton.Importance = widget.WarningImportance

	f.deleteButton = widget.NewButton("Delete Contact", nil)
	f.deleteButton.Importance = widget.DangerImportance

	f.clearButton = widget.NewButton("Clear", nil)
	f.clearButton.Importance = widget.LowImportance
}

func (f *ContactForm) buildLayout() {
	fields := container.New(layout.NewFormLayout(),
		widget.NewLabel("Name:"), f.nameEntry,
		widget.NewLabel("Phone:"), f.phoneEntry,
		widget.NewLabel("Email:"), f.emailEntry,
		widget.NewLabel("Address:"), f.addressEntry,
	)

	buttons := container.NewGridWithColumns(2,
		f.addButton, f.updateButton,
		f.deleteButton, f.clearButton,
	)

	f.container = container.NewVBox(
		fields,
		widget.NewSeparator(),
		buttons,
	)
}

func (f *ContactForm) setupEventHandlers() {
	f.addButton.OnTapped = func() {
		if f.addHandler != nil {
			f.addHandler()
		}
	}

	f.updateButton.OnTapped = func() {
		if f.updateHandler != nil {
			f.updateHandler()
		}
	}

	f.deleteButton.OnTapped = func() {
		if f.deleteHandler != nil {
			f.deleteHandler()
		}
	}

	f.clearButton.OnTapped = func() {
		if f.clearHandler != nil {
			f.clearHandler()
		}
	}
}

func (f *ContactForm) SetAddHandler(handler func()) {
	f.addHandler = handler
}

func (f *ContactForm) SetUpdateHandler(handler func()) {
	f.updateHandler = handler
}

func (f *ContactForm) SetDeleteHandler(handler func()) {
	f.deleteHandler = handler
}

func (f *ContactForm) SetClearHandler(handler func()) {
	f.clearHandler = handler
}

// Fields returns the current entry values as typed.
func (f *ContactForm) Fields() models.ContactFields {
	return models.ContactFields{
		Name:    f.nameEntry.Text,
		Phone:   f.phoneEntry.Text,
		Email:   f.emailEntry.Text,
		Address: f.addressEntry.Text,
	}
}

// SetFields replaces all four entry values.
func (f *ContactForm) SetFields(fields models.ContactFields) {
	f.nameEntry.SetText(fields.Name)
	f.phoneEntry.SetText(fields.Phone)
	f.emailEntry.SetText(fields.Email)
	f.addressEntry.SetText(fields.Address)
}

// Clear empties every entry.
func (f *ContactForm) Clear() {
	f.SetFields(models.ContactFields{})
}

// GetContainer returns the form container
func (f *ContactForm) GetContainer() *fyne.Container {
	return f.container
}
