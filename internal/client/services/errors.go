package services

import (
	"errors"
	"fmt"
)

// Kind discriminates the failures of AuthService operations.
type Kind string

const (
	KindDuplicateEmail     Kind = "duplicate_email"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUserNotFound       Kind = "user_not_found"
	KindEmailTaken         Kind = "email_taken"
	KindIncorrectPassword  Kind = "incorrect_password"
	KindPersistenceFailure Kind = "persistence_failure"
)

// Op names an AuthService operation.
type Op string

const (
	OpRegister       Op = "register"
	OpLogin          Op = "login"
	OpLogout         Op = "logout"
	OpGetCurrentUser Op = "get_current_user"
	OpUpdateProfile  Op = "update_profile"
	OpChangePassword Op = "change_password"
)

// Error is the failure value returned by AuthService operations. Err is set
// only for persistence failures and holds the underlying fault.
type Error struct {
	Kind Kind
	Op   Op
	Err  error
}

// Sentinels for errors.Is. They match any Error of the same kind.
var (
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrUserNotFound       = &Error{Kind: KindUserNotFound}
	ErrEmailTaken         = &Error{Kind: KindEmailTaken}
	ErrIncorrectPassword  = &Error{Kind: KindIncorrectPassword}
	ErrPersistenceFailure = &Error{Kind: KindPersistenceFailure}
)

func newError(op Op, kind Kind) *Error {
	return &Error{Kind: kind, Op: op}
}

func persistenceError(op Op, err error) *Error {
	return &Error{Kind: KindPersistenceFailure, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	if e.Op == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. A target with an
// operation set must also match the operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

// Message returns the text shown to the user for this failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindDuplicateEmail:
		return "An account with this email already exists"
	case KindInvalidCredentials:
		return "Invalid email or password"
	case KindUserNotFound:
		return "User not found"
	case KindEmailTaken:
		return "This email is already taken"
	case KindIncorrectPassword:
		return "Current password is incorrect"
	}

	switch e.Op {
	case OpRegister:
		return "Registration failed. Please try again."
	case OpLogin:
		return "Login failed. Please try again."
	case OpLogout:
		return "Logout failed. Please try again."
	case OpGetCurrentUser:
		return "Could not restore the session. Please try again."
	case OpUpdateProfile:
		return "Profile update failed. Please try again."
	case OpChangePassword:
		return "Password change failed. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// KindOf returns the kind of the first *Error in err's chain, or an empty
// kind when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the display text for err. Errors that are not *Error are
// shown by their Error string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}
