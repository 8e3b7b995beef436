package usermgmt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelbooking/internal/domain"
)

func TestViewOf_StringlyBoolsOnTheWire(t *testing.T) {
	u := &domain.User{ID: 3, Firstname: "Jane", IsAdmin: true, IsVerified: false}

	raw, err := json.Marshal(viewOf(u))
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "true", decoded["isAdmin"])
	assert.Equal(t, "false", decoded["isVerified"])
}

func TestParseBoolString(t *testing.T) {
	v, ok := parseBoolString("true")
	assert.True(t, ok)
	assert.True(t, v)

	v, ok = parseBoolString("false")
	assert.True(t, ok)
	assert.False(t, v)

	_, ok = parseBoolString("TRUE")
	assert.False(t, ok, "only the exact lowercase literals are accepted")

	_, ok = parseBoolString("1")
	assert.False(t, ok)
}
