package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"contact-manager/internal/logger"
	"contact-manager/internal/models"
	"contact-manager/internal/services"
)

const (
	requiredFieldsMessage = "Name and Phone are required!"
	noSelectionMessage    = "No contact selected!"
	confirmDeleteMessage  = "Are you sure you want to delete this contact?"

	defaultOperationTimeout = 5 * time.Second
)

// View is the window the controller drives
type View interface {
	Fields() models.ContactFields
	SetFields(fields models.ContactFields)
	ClearFields()
	SearchText() string
	SetEntries(entries []string)

	SetStatus(status string)
	SetContactCount(count int)

	ShowWarning(title, message string)
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))

	SetAddHandler(handler func())
	SetUpdateHandler(handler func())
	SetDeleteHandler(handler func())
	SetClearHandler(handler func())
	SetSearchHandler(handler func())
	SetSelectHandler(handler func(index int))
	SetUnselectHandler(handler func())
}

// MainController turns window events into contact operations. Every handler
// runs to completion on the UI event loop; the only state it keeps is the
// visible list and the current selection.
type MainController struct {
	service *services.ContactService
	logger  logger.Logger

	mainView View

	entries   []string
	selection models.Selection

	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// NewMainController creates a new main controller
func NewMainController(ctx context.Context, service *services.ContactService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(ctx)

	return &MainController{
		service:   service,
		logger:    log,
		selection: models.NoSelection(),
		ctx:       ctx,
		cancel:    cancel,
		timeout:   defaultOperationTimeout,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetAddHandler(mc.Add)
	mc.mainView.SetUpdateHandler(mc.Update)
	mc.mainView.SetDeleteHandler(mc.Delete)
	mc.mainView.SetClearHandler(mc.ClearFields)
	mc.mainView.SetSearchHandler(mc.Search)
	mc.mainView.SetSelectHandler(mc.Select)
	mc.mainView.SetUnselectHandler(mc.Unselect)
}

// Start populates the list for the first time.
func (mc *MainController) Start() {
	mc.Reload()
	mc.mainView.SetStatus("Ready")
}

func (mc *MainController) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(mc.ctx, mc.timeout)
}

// Add stores the form contents as a new contact.
func (mc *MainController) Add() {
	ctx, cancel := mc.operationContext()
	defer cancel()

	_, err := mc.service.Add(ctx, mc.mainView.Fields())
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			mc.mainView.ShowWarning("Error", requiredFieldsMessage)
			return
		}
		mc.handleError("Add failed", err)
		return
	}

	mc.Reload()
	mc.ClearFields()
	mc.mainView.SetStatus("Contact added")
}

// Update overwrites the selected contact with the form contents.
func (mc *MainController) Update() {
	sel := mc.selection
	if !sel.IsSelected() {
		mc.mainView.ShowWarning("Error", noSelectionMessage)
		return
	}

	ctx, cancel := mc.operationContext()
	defer cancel()

	if err := mc.service.Update(ctx, sel, mc.mainView.Fields()); err != nil {
		mc.handleError("Update failed", err)
		return
	}

	mc.Reload()
	mc.ClearFields()
	mc.mainView.SetStatus("Contact updated")
}

// Delete asks for confirmation and removes the selected contact. The
// selection is captured when the button is pressed, not when the dialog closes.
func (mc *MainController) Delete() {
	sel := mc.selection
	if !sel.IsSelected() {
		mc.mainView.ShowWarning("Error", noSelectionMessage)
		return
	}

	mc.mainView.ShowConfirm("Delete", confirmDeleteMessage, func(confirmed bool) {
		if !confirmed {
			mc.logger.Debug("MainController", "delete declined", map[string]interface{}{
				"selection": sel.String(),
			})
			return
		}

		ctx, cancel := mc.operationContext()
		defer cancel()

		if err := mc.service.Delete(ctx, sel); err != nil {
			mc.handleError("Delete failed", err)
			return
		}

		mc.Reload()
		mc.ClearFields()
		mc.mainView.SetStatus("Contact deleted")
	})
}

// Search replaces the list with contacts matching the search box. An empty
// search box shows every contact.
func (mc *MainController) Search() {
	query := strings.TrimSpace(mc.mainView.SearchText())
	if query == "" {
		mc.Reload()
		return
	}

	ctx, cancel := mc.operationContext()
	defer cancel()

	results, err := mc.service.Search(ctx, query)
	if err != nil {
		mc.handleError("Search failed", err)
		return
	}

	mc.showSummaries(results)
	mc.mainView.SetStatus(fmt.Sprintf("%d match(es) for %q", len(results), query))
}

// Reload shows every contact in name order.
func (mc *MainController) Reload() {
	ctx, cancel := mc.operationContext()
	defer cancel()

	summaries, err := mc.service.Load(ctx)
	if err != nil {
		mc.handleError("Load failed", err)
		return
	}
	mc.showSummaries(summaries)

	count, err := mc.service.Count(ctx)
	if err != nil {
		mc.handleError("Count failed", err)
		return
	}
	mc.mainView.SetContactCount(count)
}

func (mc *MainController) showSummaries(summaries []models.ContactSummary) {
	entries := make([]string, len(summaries))
	for i, s := range summaries {
		entries[i] = models.FormatListEntry(s)
	}

	mc.entries = entries
	mc.selection = models.NoSelection()
	mc.mainView.SetEntries(entries)
}

// Select loads the contact behind list entry index into the form. Entries
// that cannot be parsed or resolved leave the form untouched.
func (mc *MainController) Select(index int) {
	if index < 0 || index >= len(mc.entries) {
		mc.selection = models.NoSelection()
		return
	}

	line := mc.entries[index]
	id, ok := models.ParseListEntryID(line)
	if !ok {
		mc.selection = models.NoSelection()
		mc.logger.Debug("MainController", "ignoring unparseable selection", map[string]interface{}{
			"line": line,
		})
		return
	}
	mc.selection = models.Selected(id)

	ctx, cancel := mc.operationContext()
	defer cancel()

	contact, found := mc.service.Lookup(ctx, line)
	if !found {
		return
	}
	mc.mainView.SetFields(contact.Fields())
}

// Unselect returns the form to new-entry mode.
func (mc *MainController) Unselect() {
	mc.selection = models.NoSelection()
}

// ClearFields empties the form.
func (mc *MainController) ClearFields() {
	mc.mainView.ClearFields()
}

// Selection returns the current form mode.
func (mc *MainController) Selection() models.Selection {
	return mc.selection
}

// Entries returns the lines currently shown in the list.
func (mc *MainController) Entries() []string {
	out := make([]string, len(mc.entries))
	copy(out, mc.entries)
	return out
}

func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"operation": title,
	})
	mc.mainView.ShowError(title, err)
}

// Close cancels outstanding operations.
func (mc *MainController) Close() error {
	mc.cancel()
	return nil
}
