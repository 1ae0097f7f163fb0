package cli

import (
	"net/mail"
	"strings"
)

const minPasswordLength = 6

// formError is a validation message shown to the user as is.
type formError string

func (e formError) Error() string { return string(e) }

const (
	errNameRequired            formError = "Name is required"
	errEmailRequired           formError = "Email is required"
	errEmailInvalid            formError = "Please enter a valid email address"
	errPasswordRequired        formError = "Password is required"
	errPasswordTooShort        formError = "Password must be at least 6 characters"
	errCurrentPasswordRequired formError = "Current password is required"
	errNewPasswordRequired     formError = "New password is required"
	errConfirmRequired         formError = "Please confirm your new password"
	errPasswordMismatch        formError = "Passwords do not match"
)

// validEmail accepts a bare address such as "ann@example.com". Display
// names ("Ann <ann@example.com>") are rejected.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errEmailRequired
	}
	if !validEmail(strings.TrimSpace(email)) {
		return errEmailInvalid
	}
	return nil
}

func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return errPasswordRequired
	}
	if len(password) < minPasswordLength {
		return errPasswordTooShort
	}
	return nil
}

func validateLogin(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return errPasswordRequired
	}
	return nil
}

func validateProfile(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	return validateEmail(email)
}

func validatePasswordChange(current, next, confirm string) error {
	if current == "" {
		return errCurrentPasswordRequired
	}
	if next == "" {
		return errNewPasswordRequired
	}
	if len(next) < minPasswordLength {
		return errPasswordTooShort
	}
	if confirm == "" {
		return errConfirmRequired
	}
	if next != confirm {
		return errPasswordMismatch
	}
	return nil
}
