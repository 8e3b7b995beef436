package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("jane@example.com"))
	assert.NoError(t, Email("  jane@example.com  "), "surrounding whitespace is tolerated")

	assert.ErrorIs(t, Email("not-an-email"), ErrInvalidEmail)
	assert.ErrorIs(t, Email("jane@nodot"), ErrInvalidEmail)
	assert.ErrorIs(t, Email(""), ErrInvalidEmail)
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("0712345678"))

	assert.EqualError(t, Phone("123456"), "Invalid phone number!")
	assert.ErrorIs(t, Phone("07123456789"), ErrInvalidPhone, "too long")
	assert.ErrorIs(t, Phone("0612345678"), ErrInvalidPhone, "wrong prefix")
	assert.ErrorIs(t, Phone("+254712345678"), ErrInvalidPhone)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("secret1"))
	assert.NoError(t, Password("123456"))

	assert.ErrorIs(t, Password("12345"), ErrPasswordTooWeak)
	assert.ErrorIs(t, Password(""), ErrPasswordTooWeak)
}
