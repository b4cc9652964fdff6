package helper

import (
	"strings"

	"github.com/google/uuid"
)

const orderIDPrefix = "ORD"

// NewOrderID generates a human-readable order code: "ORD" followed by the
// first 8 hex characters of a fresh UUID, upper-cased.
func NewOrderID() string {
	return orderIDPrefix + strings.ToUpper(uuid.NewString()[:8])
}
