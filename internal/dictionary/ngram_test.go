package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionary_AddContains(t *testing.T) {
	d := NewDictionary()

	assert.True(t, d.Add("new", "york"))
	assert.False(t, d.Add("new", "york"))
	assert.False(t, d.Add())
	assert.True(t, d.Add("the"))

	assert.True(t, d.Contains("new", "york"))
	assert.False(t, d.Contains("new"))
	assert.Equal(t, 2, d.Len())
}

func TestDictionary_TokenBounds(t *testing.T) {
	d := NewDictionary()
	assert.Equal(t, 0, d.MinTokens())
	assert.Equal(t, 0, d.MaxTokens())

	d.Add("a", "b", "c")
	d.Add("x")
	d.Add("y", "z")

	assert.Equal(t, 1, d.MinTokens())
	assert.Equal(t, 3, d.MaxTokens())
}

func TestDictionary_RemoveReindexes(t *testing.T) {
	d := NewDictionary()
	d.Add("a")
	d.Add("b")
	d.Add("c")

	d.Remove("a")
	d.Remove("missing")

	assert.Equal(t, [][]string{{"b"}, {"c"}}, d.Entries())
	assert.True(t, d.Contains("c"))

	d.Remove("c")
	assert.Equal(t, [][]string{{"b"}}, d.Entries())
}

func TestDictionary_EqualIgnoresOrder(t *testing.T) {
	a := NewDictionary()
	a.Add("x")
	a.Add("y", "z")

	b := NewDictionary()
	b.Add("y", "z")
	b.Add("x")

	assert.True(t, a.Equal(b))
	b.Add("w")
	assert.False(t, a.Equal(b))
}

func TestDictionary_ZeroValue(t *testing.T) {
	var d Dictionary
	assert.False(t, d.Contains("New", "York"))
	d.Remove("New", "York")

	assert.True(t, d.Add("New", "York"))
	assert.True(t, d.Contains("New", "York"))
	assert.Equal(t, 1, d.Len())
}
