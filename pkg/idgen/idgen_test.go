package idgen

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New()
		require.Len(t, id, 36)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewIsTimeOrdered(t *testing.T) {
	first := New()
	time.Sleep(2 * time.Millisecond)
	second := New()

	ids := []string{second, first}
	sort.Strings(ids)
	assert.Equal(t, []string{first, second}, ids)
}
