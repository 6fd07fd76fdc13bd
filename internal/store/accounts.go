package store

import (
	"context"
	"database/sql"
	"fmt"

	"chirp/internal/models"
)

// AccountStore is the directory of registered accounts. Accounts are
// created once and never updated or deleted.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

// FindByUsername returns the account with the given username, or nil when
// no such account exists.
func (s *AccountStore) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	var a models.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM accounts WHERE username = ?`, username).
		Scan(&a.ID, &a.Username, &a.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by username: %w", err)
	}
	return &a, nil
}

// FindByID returns the account with the given id, or nil when absent.
func (s *AccountStore) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	var a models.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM accounts WHERE id = ?`, id).
		Scan(&a.ID, &a.Username, &a.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return &a, nil
}

// Register persists a new account and assigns it an id. A username collision
// comes back as ErrDuplicateUsername.
func (s *AccountStore) Register(ctx context.Context, a models.Account) (models.Account, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts(username, password) VALUES(?, ?)`, a.Username, a.Password)
	if isUniqueViolation(err) {
		return models.Account{}, ErrDuplicateUsername
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("register account: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return models.Account{}, fmt.Errorf("register account: %w", err)
	}
	return a, nil
}
