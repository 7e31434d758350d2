package confirmid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfirmationID(t *testing.T) {
	g := New()

	id := g.NewConfirmationID()
	assert.True(t, strings.HasPrefix(id, "RSV-"))
	assert.Len(t, id, len("RSV-")+8)
	assert.Equal(t, strings.ToUpper(id), id)

	// Идентификаторы не повторяются
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.NewConfirmationID()
		_, dup := seen[id]
		assert.False(t, dup, id)
		seen[id] = struct{}{}
	}
}
