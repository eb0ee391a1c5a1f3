package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("A spy chases a terrorist through Paris.")
		id2 := IDFromContent("A spy chases a terrorist through Paris.")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content gives different IDs", func(t *testing.T) {
		id1 := IDFromContent("A spy chases a terrorist through Paris.")
		id2 := IDFromContent("Two strangers fall in love in Paris.")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		id1 := IDFromContent("")
		id2 := IDFromContent("")
		assert.Equal(t, id1, id2)
	})
}
