package store

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateUsername is returned by Register when the username is
	// already taken. The UNIQUE constraint is the check: there is no
	// separate read, so two racing registrations cannot both win.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrUnknownAuthor is returned by Create when posted_by does not
	// reference an existing account. Enforced by the foreign key.
	ErrUnknownAuthor = errors.New("posting account does not exist")

	// ErrMessageNotFound is returned by UpdateText when no message has
	// the given id.
	ErrMessageNotFound = errors.New("message not found")
)

// modernc.org/sqlite surfaces constraint failures as plain errors; the
// constraint name in the text is the only way to tell them apart.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
