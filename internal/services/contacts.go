package services

import (
	"context"
	"errors"
	"strings"

	"contact-manager/internal/logger"
	"contact-manager/internal/models"
)

// ErrNoSelection is returned by operations that need a selected contact.
var ErrNoSelection = errors.New("no contact selected")

// ContactStore is the persistence the service depends on
type ContactStore interface {
	Insert(ctx context.Context, f models.ContactFields) (int64, error)
	Update(ctx context.Context, c models.Contact) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (models.Contact, error)
	List(ctx context.Context) ([]models.ContactSummary, error)
	Search(ctx context.Context, text string) ([]models.ContactSummary, error)
	Count(ctx context.Context) (int, error)
}

// ContactService applies form rules on top of the contact store
type ContactService struct {
	store  ContactStore
	logger logger.Logger
}

// NewContactService creates a new contact service
func NewContactService(store ContactStore, log logger.Logger) *ContactService {
	if log == nil {
		log = logger.Nop()
	}
	return &ContactService{
		store:  store,
		logger: log,
	}
}

// Add validates and stores a new contact. Name and phone are required;
// nothing is written when validation fails.
func (cs *ContactService) Add(ctx context.Context, fields models.ContactFields) (int64, error) {
	fields = fields.Trimmed()
	if err := fields.Validate(); err != nil {
		cs.logger.Debug("ContactService", "add rejected", map[string]interface{}{
			"reason": err.Error(),
		})
		return 0, err
	}

	id, err := cs.store.Insert(ctx, fields)
	if err != nil {
		return 0, err
	}

	cs.logger.Info("ContactService", "contact added", map[string]interface{}{"id": id})
	return id, nil
}

// Update overwrites the selected contact with fields.
func (cs *ContactService) Update(ctx context.Context, sel models.Selection, fields models.ContactFields) error {
	id, ok := sel.ID()
	if !ok {
		return ErrNoSelection
	}

	updated, err := cs.store.Update(ctx, fields.Trimmed().WithID(id))
	if err != nil {
		return err
	}

	if !updated {
		cs.logger.Warning("ContactService", "update matched no contact", map[string]interface{}{"id": id})
		return nil
	}
	cs.logger.Info("ContactService", "contact updated", map[string]interface{}{"id": id})
	return nil
}

// Delete removes the selected contact.
func (cs *ContactService) Delete(ctx context.Context, sel models.Selection) error {
	id, ok := sel.ID()
	if !ok {
		return ErrNoSelection
	}

	deleted, err := cs.store.Delete(ctx, id)
	if err != nil {
		return err
	}

	if !deleted {
		cs.logger.Warning("ContactService", "delete matched no contact", map[string]interface{}{"id": id})
		return nil
	}
	cs.logger.Info("ContactService", "contact deleted", map[string]interface{}{"id": id})
	return nil
}

// Load returns every contact in name order.
func (cs *ContactService) Load(ctx context.Context) ([]models.ContactSummary, error) {
	return cs.store.List(ctx)
}

// Search returns contacts whose name or phone contains query. A blank query
// returns the full list.
func (cs *ContactService) Search(ctx context.Context, query string) ([]models.ContactSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return cs.Load(ctx)
	}

	results, err := cs.store.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	cs.logger.Debug("ContactService", "search completed", map[string]interface{}{
		"query":   query,
		"matches": len(results),
	})
	return results, nil
}

// Lookup resolves a formatted list entry to its full contact. Any failure,
// whether a malformed line, a stale id or a store error, yields false.
func (cs *ContactService) Lookup(ctx context.Context, line string) (models.Contact, bool) {
	id, ok := models.ParseListEntryID(line)
	if !ok {
		cs.logger.Debug("ContactService", "unparseable list entry", map[string]interface{}{"line": line})
		return models.Contact{}, false
	}

	c, err := cs.store.Get(ctx, id)
	if err != nil {
		cs.logger.Debug("ContactService", "lookup failed", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return models.Contact{}, false
	}
	return c, true
}

// Count returns the number of stored contacts.
func (cs *ContactService) Count(ctx context.Context) (int, error) {
	return cs.store.Count(ctx)
}
