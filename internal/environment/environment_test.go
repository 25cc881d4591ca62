package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun-ramani/blockpipe/internal/value"
)

func TestBindThenLookup(t *testing.T) {
	e := New()
	e.PushFrame()
	e.Bind("a", value.Int64(1))

	v, ok := e.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, value.Int64(1), v)
}

func TestLookup_Unbound(t *testing.T) {
	e := New()
	e.PushFrame()
	_, ok := e.Lookup("nope")
	assert.False(t, ok)
}

func TestBind_SameFrameShadowingReplacesInPlace(t *testing.T) {
	e := New()
	e.PushFrame()
	e.Bind("a", value.Int64(1))
	e.Bind("a", value.Int64(2))

	v, ok := e.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, value.Int64(2), v, "second bind in the same frame replaces the top value")

	e.PopFrame()
	_, ok = e.Lookup("a")
	assert.False(t, ok, "a single pop must undo exactly one bind, not two")
}

func TestPopFrame_RestoresOuterBinding(t *testing.T) {
	e := New()
	e.PushFrame()
	e.Bind("a", value.Int64(1))

	e.PushFrame()
	e.Bind("a", value.Int64(99))
	v, _ := e.Lookup("a")
	assert.Equal(t, value.Int64(99), v)
	e.PopFrame()

	v, ok := e.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, value.Int64(1), v, "popping the inner frame restores the outer binding exactly")
}

func TestDepth_UnchangedAcrossPushPop(t *testing.T) {
	e := New()
	before := e.Depth()
	e.PushFrame()
	e.Bind("x", value.Unit())
	e.PopFrame()
	assert.Equal(t, before, e.Depth())
}

func TestImage_IsIndependentSnapshot(t *testing.T) {
	e := New()
	e.PushFrame()
	e.Bind("a", value.Int64(1))

	image := e.Image()
	assert.Equal(t, value.Int64(1), image["a"])

	e.Bind("a", value.Int64(2))
	assert.Equal(t, value.Int64(1), image["a"], "a later Bind on the live environment must not mutate a prior Image snapshot")
}

func TestPopFrame_WithNoFramePushedPanics(t *testing.T) {
	e := New()
	assert.Panics(t, func() { e.PopFrame() })
}
