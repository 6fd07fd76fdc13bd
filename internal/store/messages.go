package store

import (
	"context"
	"database/sql"
	"fmt"

	"chirp/internal/models"
)

// MessageStore holds the posted messages.
type MessageStore struct {
	db *sql.DB
}

func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Create persists a message and assigns it an id. A posted_by value that
// matches no account comes back as ErrUnknownAuthor and nothing is written.
func (s *MessageStore) Create(ctx context.Context, m models.Message) (models.Message, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages(posted_by, text, posted_at) VALUES(?, ?, ?)`,
		m.PostedBy, m.Text, m.PostedAt)
	if isForeignKeyViolation(err) {
		return models.Message{}, ErrUnknownAuthor
	}
	if err != nil {
		return models.Message{}, fmt.Errorf("create message: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return models.Message{}, fmt.Errorf("create message: %w", err)
	}
	return m, nil
}

// FindAll returns every message, oldest first. The slice is empty, not nil,
// when there are no messages.
func (s *MessageStore) FindAll(ctx context.Context) ([]models.Message, error) {
	return s.list(ctx, `SELECT id, posted_by, text, posted_at FROM messages ORDER BY id`)
}

// FindByID returns the message with the given id, or nil when absent.
func (s *MessageStore) FindByID(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	err := s.db.QueryRowContext(ctx,
		`SELECT id, posted_by, text, posted_at FROM messages WHERE id = ?`, id).
		Scan(&m.ID, &m.PostedBy, &m.Text, &m.PostedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find message by id: %w", err)
	}
	return &m, nil
}

// FindByAuthor returns all messages posted by the given account, oldest
// first. Unknown accounts yield an empty slice, not an error.
func (s *MessageStore) FindByAuthor(ctx context.Context, accountID int64) ([]models.Message, error) {
	return s.list(ctx,
		`SELECT id, posted_by, text, posted_at FROM messages WHERE posted_by = ? ORDER BY id`,
		accountID)
}

// UpdateText replaces the text of the message with the given id, leaving
// every other field untouched. ErrMessageNotFound when no row matched.
func (s *MessageStore) UpdateText(ctx context.Context, id int64, text string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE messages SET text = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("update message text: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update message text: %w", err)
	}
	if n == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// DeleteByID removes the message with the given id and reports how many rows
// went away. Deleting a missing id is not an error: it returns 0.
func (s *MessageStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete message: %w", err)
	}
	return n, nil
}

func (s *MessageStore) list(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.PostedBy, &m.Text, &m.PostedAt); err != nil {
			return nil, fmt.Errorf("list messages: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
