package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSetAdd(t *testing.T) {
	s := NewTagSet()

	assert.True(t, s.Add("Egg"))
	assert.False(t, s.Add("egg"), "case-insensitive duplicate must be rejected")
	assert.False(t, s.Add("EGG"))
	assert.Equal(t, 1, s.Len())
	// First-seen casing wins.
	assert.Equal(t, []string{"Egg"}, s.Tokens())
}

func TestTagSetAddCleansTokens(t *testing.T) {
	s := NewTagSet()

	assert.True(t, s.Add("  'flour' "))
	assert.Equal(t, []string{"flour"}, s.Tokens())
	assert.False(t, s.Add(""))
	assert.False(t, s.Add("  ,'\"  "))
	assert.Equal(t, 1, s.Len())
}

func TestTagSetAddAll(t *testing.T) {
	s := NewTagSet()

	added := s.AddAll([]string{"milk", "eggs", "Milk", ""})
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"milk", "eggs"}, s.Tokens())
	assert.Equal(t, "milk, eggs", s.String())
}

func TestTagSetRemove(t *testing.T) {
	s := NewTagSet()
	s.AddAll([]string{"a", "b", "c"})

	assert.True(t, s.Remove("B"))
	assert.False(t, s.Remove("B"))
	assert.Equal(t, []string{"a", "c"}, s.Tokens())

	// Positions stay consistent after a middle removal.
	assert.True(t, s.Add("b"))
	assert.Equal(t, []string{"a", "c", "b"}, s.Tokens())
	assert.True(t, s.Remove("a"))
	assert.Equal(t, []string{"c", "b"}, s.Tokens())
}

func TestTagSetRemoveLast(t *testing.T) {
	s := NewTagSet()

	_, ok := s.RemoveLast()
	assert.False(t, ok)

	s.AddAll([]string{"milk", "eggs"})
	last, ok := s.RemoveLast()
	assert.True(t, ok)
	assert.Equal(t, "eggs", last)
	assert.Equal(t, []string{"milk"}, s.Tokens())

	// The freed key can be re-added.
	assert.True(t, s.Add("eggs"))
}

func TestTagSetContains(t *testing.T) {
	s := NewTagSet()
	s.Add("Olive Oil")

	assert.True(t, s.Contains("olive oil"))
	assert.True(t, s.Contains(" 'OLIVE OIL' "))
	assert.False(t, s.Contains("olive"))
}

func TestTagSetTokensIsACopy(t *testing.T) {
	s := NewTagSet()
	s.AddAll([]string{"a", "b"})

	tokens := s.Tokens()
	tokens[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Tokens())
}
