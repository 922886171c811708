package models

import (
	"strings"
)

// User is the single registered identity. The password itself is never
// stored; Salt and Verifier are produced by cryptox.NewCredential.
type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Salt      []byte `json:"salt"`
	Verifier  []byte `json:"verifier"`
}

// DisplayName joins first and last name the way the dashboard greets the user.
func DisplayName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}
