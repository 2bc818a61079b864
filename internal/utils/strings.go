package utils

import (
	"strings"

	"github.com/google/uuid"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NewTicketID returns "TKT" followed by eight upper-case hex characters.
func NewTicketID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TKT" + strings.ToUpper(hex[:8])
}
