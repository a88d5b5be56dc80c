package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Contact is a single stored contact record
type Contact struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}

// ContactSummary is the subset of a contact shown in the list
type ContactSummary struct {
	ID    int64
	Name  string
	Phone string
}

// ContactFields holds the editable values of the entry form
type ContactFields struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// Fields returns the editable values of the contact.
func (c Contact) Fields() ContactFields {
	return ContactFields{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

// Summary returns the list representation of the contact.
func (c Contact) Summary() ContactSummary {
	return ContactSummary{ID: c.ID, Name: c.Name, Phone: c.Phone}
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f ContactFields) Trimmed() ContactFields {
	return ContactFields{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
		Address: strings.TrimSpace(f.Address),
	}
}

// Validate reports the required fields that are empty after trimming.
func (f ContactFields) Validate() error {
	t := f.Trimmed()
	var missing []string
	if t.Name == "" {
		missing = append(missing, "name")
	}
	if t.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// WithID attaches an identifier, producing a full contact record.
func (f ContactFields) WithID(id int64) Contact {
	return Contact{
		ID:      id,
		Name:    f.Name,
		Phone:   f.Phone,
		Email:   f.Email,
		Address: f.Address,
	}
}

// ValidationError is returned when required contact fields are missing
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Fields, ", "))
}

const listEntrySeparator = " - "

// FormatListEntry renders a summary as "{id} - {name} ({phone})".
func FormatListEntry(s ContactSummary) string {
	return fmt.Sprintf("%d%s%s (%s)", s.ID, listEntrySeparator, s.Name, s.Phone)
}

// ParseListEntryID extracts the id prefix of a formatted list entry.
func ParseListEntryID(line string) (int64, bool) {
	prefix, _, found := strings.Cut(line, listEntrySeparator)
	if !found {
		return 0, false
	}
	id, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
