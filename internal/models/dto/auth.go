package dto

import (
	"errors"
	"strings"
)

const (
	maxNameLength     = 50
	minUsernameLength = 3
	minPasswordLength = 8
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Validate normalizes the payload in place and returns every field violation
// joined into a single error. Usernames are trimmed and lower-cased before any
// length check or storage.
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))

	var problems []string
	if r.Name == "" {
		problems = append(problems, "name is required")
	} else if len(r.Name) > maxNameLength {
		problems = append(problems, "name must be at most 50 characters")
	}
	if r.Username == "" {
		problems = append(problems, "username is required")
	} else if len(r.Username) < minUsernameLength {
		problems = append(problems, "username must be at least 3 characters")
	}
	if r.Password == "" {
		problems = append(problems, "password is required")
	} else if len(r.Password) < minPasswordLength {
		problems = append(problems, "password must be at least 8 characters")
	}
	return joined(problems)
}

// Validate checks presence only; login never reveals which rule a stored
// password satisfied.
func (r *LoginRequest) Validate() error {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))

	var problems []string
	if r.Username == "" {
		problems = append(problems, "username is required")
	}
	if r.Password == "" {
		problems = append(problems, "password is required")
	}
	return joined(problems)
}

func joined(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, ", "))
}
