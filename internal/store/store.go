// Package store persists contacts in a local SQLite database.
//
// Every statement binds its values as parameters; no user input is ever
// formatted into SQL text.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"contact-manager/internal/logger"
	"contact-manager/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrNotFound is returned by Get when no contact has the requested id.
var ErrNotFound = errors.New("contact not found")

const summaryColumns = `id, COALESCE(name, ''), COALESCE(phone, '')`

// Store is the contact table backed by one SQLite connection.
type Store struct {
	db        *sql.DB
	path      string
	logger    logger.Logger
	closeOnce sync.Once
	closeErr  error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes store diagnostics to log.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// Open creates or opens the database at path and makes sure the contacts
// table exists. Calling it repeatedly on the same file is safe.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases alive and serializes writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	s.db = db
	s.logger.Info("ContactStore", "database opened", map[string]interface{}{
		"path": path,
	})
	return s, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Path returns the database location given to Open.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle. Subsequent calls return the first result.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
		s.logger.Info("ContactStore", "database closed", map[string]interface{}{
			"path": s.path,
		})
	})
	return s.closeErr
}

// Insert appends a contact and returns the id SQLite assigned to it.
func (s *Store) Insert(ctx context.Context, f models.ContactFields) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (name, phone, email, address) VALUES (?, ?, ?, ?)`,
		f.Name, f.Phone, f.Email, f.Address)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert contact: read id: %w", err)
	}

	s.logger.Debug("ContactStore", "contact inserted", map[string]interface{}{"id": id})
	return id, nil
}

// Update overwrites every field of the contact with c.ID. It reports false
// without error when no such contact exists.
func (s *Store) Update(ctx context.Context, c models.Contact) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contacts SET name = ?, phone = ?, email = ?, address = ? WHERE id = ?`,
		c.Name, c.Phone, c.Email, c.Address, c.ID)
	if err != nil {
		return false, fmt.Errorf("update contact %d: %w", c.ID, err)
	}
	return affected(res, "update", c.ID)
}

// Delete removes the contact with id, reporting whether a row was removed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete contact %d: %w", id, err)
	}
	return affected(res, "delete", id)
}

func affected(res sql.Result, op string, id int64) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s contact %d: rows affected: %w", op, id, err)
	}
	return n > 0, nil
}

// Get fetches every field of one contact.
func (s *Store) Get(ctx context.Context, id int64) (models.Contact, error) {
	var c models.Contact
	err := s.db.QueryRowContext(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, '')
		FROM contacts WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, fmt.Errorf("get contact %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact %d: %w", id, err)
	}
	return c, nil
}

// List returns all contacts ordered by name.
func (s *Store) List(ctx context.Context) ([]models.ContactSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+summaryColumns+` FROM contacts ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return scanSummaries(rows)
}

// Search returns contacts whose name or phone contains text. Matching is
// case-sensitive and treats text literally; results use List's ordering.
func (s *Store) Search(ctx context.Context, text string) ([]models.ContactSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+summaryColumns+` FROM contacts
		WHERE instr(COALESCE(name, ''), ?) > 0 OR instr(COALESCE(phone, ''), ?) > 0
		ORDER BY name, id`, text, text)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return scanSummaries(rows)
}

// Count returns the number of stored contacts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

func scanSummaries(rows *sql.Rows) ([]models.ContactSummary, error) {
	defer rows.Close()

	summaries := make([]models.ContactSummary, 0)
	for rows.Next() {
		var cs models.ContactSummary
		if err := rows.Scan(&cs.ID, &cs.Name, &cs.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		summaries = append(summaries, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return summaries, nil
}
