package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{}
	err := req.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "username is required")
	assert.Contains(t, msg, "password is required")
}

func TestRegisterRequestValidate_FieldRules(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{
		Name:     strings.Repeat("x", 51),
		Username: "ab",
		Password: "short",
	}
	err := req.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name must be at most 50 characters")
	assert.Contains(t, msg, "username must be at least 3 characters")
	assert.Contains(t, msg, "password must be at least 8 characters")
}

func TestRegisterRequestValidate_NormalizesUsername(t *testing.T) {
	t.Parallel()

	req := RegisterRequest{Name: " Ann ", Username: "  AnN  ", Password: "longenough1"}
	require.NoError(t, req.Validate())

	assert.Equal(t, "Ann", req.Name)
	assert.Equal(t, "ann", req.Username)
}

func TestLoginRequestValidate_PresenceOnly(t *testing.T) {
	t.Parallel()

	// A short password is acceptable at login; only presence is checked.
	req := LoginRequest{Username: "ANN", Password: "x"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "ann", req.Username)

	empty := LoginRequest{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
	assert.Contains(t, err.Error(), "password is required")
}
