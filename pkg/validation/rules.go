package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidIdentifier = errors.New("invalid id")
	ErrInvalidEmail      = errors.New("invalid email")
)

const (
	identifierRule = "gt=0"
	emailRule      = "required,email"
)

// rules is the standalone validator behind the domain checks.
// validator.Validate is safe for concurrent use once configured.
var rules = validator.New(validator.WithRequiredStructEnabled())

// ValidateIdentifier rejects ids that are zero or negative.
func ValidateIdentifier(id int64) error {
	if err := rules.Var(id, identifierRule); err != nil {
		return ErrInvalidIdentifier
	}
	return nil
}

// ValidateEmail rejects strings that are not a syntactically valid address.
func ValidateEmail(email string) error {
	if err := rules.Var(email, emailRule); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
