package childset

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPutDelete(t *testing.T) {
	s := New[int]()
	assert.Equal(t, 0, s.Size())

	s.Put("a", 1)
	s.Put("b", 2)
	assert.Equal(t, 2, s.Size())

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	s.Delete("a")
	assert.Equal(t, 1, s.Size())
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	s := New[int]()
	assert.Equal(t, "", s.Snapshot())

	s.Put("b", 2)
	s.Put("c", 3)
	tokens := strings.Split(s.Snapshot(), ",")
	sort.Strings(tokens)
	assert.Equal(t, []string{"b", "c"}, tokens)
}
