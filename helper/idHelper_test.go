package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewOrderID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
}
