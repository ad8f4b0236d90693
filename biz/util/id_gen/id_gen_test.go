package id_gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	g := NewIDGenerator(2)
	defer g.Stop()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.NewID()
		assert.NotEmpty(t, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicated id %s", id)
		seen[id] = struct{}{}
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g := NewIDGenerator(1)
	g.Stop()
	g.Stop()
}

func TestPackageNewID(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
