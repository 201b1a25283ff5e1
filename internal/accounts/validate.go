package accounts

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/phumgame/internal/common"
)

// User-visible messages.
const (
	MsgNameTooShort     = "Name must be at least 2 characters long"
	MsgInvalidEmail     = "Please enter a valid email address"
	MsgWeakPassword     = "Password must be at least 6 characters with letters and numbers"
	MsgPasswordRequired = "Please enter your password"
	MsgPasswordMismatch = "Passwords do not match"
)

var (
	ErrAccountExists      = errors.New("An account with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is makes every ValidationError match common.ErrorValidation.
func (e *ValidationError) Is(target error) bool { return target == common.ErrorValidation }

var (
	// Whitespace here covers \v, Unicode separators and the BOM, not only ASCII \s.
	emailRe    = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{6,}$`)
	letterRe   = regexp.MustCompile(`[A-Za-z]`)
	digitRe    = regexp.MustCompile(`\d`)
)

// ValidName reports whether name has at least two characters once trimmed.
func ValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= 2
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPassword reports whether password is at least six characters from
// letters, digits and @$!%*#?&, with at least one letter and one digit.
func ValidPassword(password string) bool {
	return passwordRe.MatchString(password) &&
		letterRe.MatchString(password) &&
		digitRe.MatchString(password)
}

func validateRegistration(name, email, password string) error {
	if !ValidName(name) {
		return &ValidationError{Field: "name", Message: MsgNameTooShort}
	}
	if !ValidEmail(email) {
		return &ValidationError{Field: "email", Message: MsgInvalidEmail}
	}
	if !ValidPassword(password) {
		return &ValidationError{Field: "password", Message: MsgWeakPassword}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
