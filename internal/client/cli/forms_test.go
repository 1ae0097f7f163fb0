package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ann@example.com", true},
		{"Ann.Lee+tag@school.example.org", true},
		{"ann@localhost", false},
		{"ann", false},
		{"@example.com", false},
		{"Ann <ann@example.com>", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validEmail(tt.in))
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name, email, password string
		want                  error
	}{
		{"Ann", "ann@example.com", "secret", nil},
		{"  ", "ann@example.com", "secret", errNameRequired},
		{"Ann", "", "secret", errEmailRequired},
		{"Ann", "not-an-email", "secret", errEmailInvalid},
		{"Ann", "ann@example.com", "", errPasswordRequired},
		{"Ann", "ann@example.com", "12345", errPasswordTooShort},
	}
	for _, tt := range tests {
		err := validateRegistration(tt.name, tt.email, tt.password)
		if tt.want == nil {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, tt.want)
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, validateLogin("ann@example.com", "x"))
	assert.ErrorIs(t, validateLogin("", "x"), errEmailRequired)
	assert.ErrorIs(t, validateLogin("ann@example.com", ""), errPasswordRequired)
}

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, validateProfile("Ann", "ann@example.com"))
	assert.ErrorIs(t, validateProfile("", "ann@example.com"), errNameRequired)
	assert.ErrorIs(t, validateProfile("Ann", "ann@"), errEmailInvalid)
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		current, next, confirm string
		want                   error
	}{
		{"old", "newpass", "newpass", nil},
		{"", "newpass", "newpass", errCurrentPasswordRequired},
		{"old", "", "", errNewPasswordRequired},
		{"old", "short", "short", errPasswordTooShort},
		{"old", "newpass", "", errConfirmRequired},
		{"old", "newpass", "newpasS", errPasswordMismatch},
	}
	for _, tt := range tests {
		err := validatePasswordChange(tt.current, tt.next, tt.confirm)
		if tt.want == nil {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, tt.want)
		assert.Equal(t, tt.want.Error(), displayMessage(err))
	}
}
