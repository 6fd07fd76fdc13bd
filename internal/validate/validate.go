// Package validate holds the payload format rules for accounts and messages.
// The functions are pure: they inspect the value and report well-formedness,
// nothing else.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"chirp/internal/models"
)

var validate = validator.New()

type accountFormat struct {
	Username string `validate:"required"`
	Password string `validate:"min=4"`
}

type messageFormat struct {
	Text string `validate:"required,max=255"`
}

// Account reports whether an account payload is well-formed: a non-blank
// username and a password of at least 4 characters.
func Account(a models.Account) bool {
	if strings.TrimSpace(a.Username) == "" {
		// "required" lets whitespace-only strings through.
		return false
	}
	return validate.Struct(accountFormat{Username: a.Username, Password: a.Password}) == nil
}

// Message reports whether a message payload is well-formed: non-blank text
// shorter than 256 characters.
func Message(m models.Message) bool {
	if strings.TrimSpace(m.Text) == "" {
		return false
	}
	return validate.Struct(messageFormat{Text: m.Text}) == nil
}
