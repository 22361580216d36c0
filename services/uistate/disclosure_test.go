package uistate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisclosure(t *testing.T) {
	var menu Disclosure
	assert.Equal(t, Closed, menu.State())
	assert.False(t, menu.IsOpen())

	assert.Equal(t, Open, menu.Toggle())
	assert.True(t, menu.IsOpen())

	assert.Equal(t, Closed, menu.Toggle())

	menu.Toggle()
	menu.Close()
	assert.False(t, menu.IsOpen())
	menu.Close()
	assert.False(t, menu.IsOpen())
}

func TestDisclosureStateString(t *testing.T) {
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "closed", Closed.String())
}

func TestDisclosureGroupExclusive(t *testing.T) {
	g := NewDisclosureGroup(true)
	assert.True(t, g.Exclusive())

	assert.Equal(t, Open, g.Toggle("a"))
	assert.Equal(t, Open, g.Toggle("b"))

	assert.False(t, g.IsOpen("a"), "opening b closes a")
	assert.True(t, g.IsOpen("b"))
	assert.Equal(t, []string{"b"}, g.OpenIDs())

	assert.Equal(t, Closed, g.Toggle("b"))
	assert.Empty(t, g.OpenIDs())
}

func TestDisclosureGroupIndependent(t *testing.T) {
	g := NewDisclosureGroup(false)

	g.Toggle("b")
	g.Toggle("a")
	assert.Equal(t, []string{"a", "b"}, g.OpenIDs())

	g.Toggle("a")
	assert.Equal(t, Closed, g.State("a"))
	assert.Equal(t, Open, g.State("b"))

	g.CloseAll()
	assert.Empty(t, g.OpenIDs())
}

func TestDisclosureGroupUnknownID(t *testing.T) {
	g := NewDisclosureGroup(true)
	assert.Equal(t, Closed, g.State("missing"))
}
