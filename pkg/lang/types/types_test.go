package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsPrimitives(t *testing.T) {
	r := New()
	require.Equal(t, 13, r.Len())

	// void must take the reserved ID 0.
	id, ok := r.Lookup("void")
	require.True(t, ok)
	assert.Equal(t, Unresolved, id)
	assert.Equal(t, Void, r.Get(id).Tag)

	for _, name := range []string{"u8", "u16", "u32", "u64", "usize", "i8", "i16", "i32", "i64", "isize", "f32", "f64"} {
		id, ok := r.Lookup(name)
		require.True(t, ok, "missing primitive %s", name)
		assert.Equal(t, name, r.Get(id).String())
	}
}

func TestLookupUnknown(t *testing.T) {
	r := New()
	_, ok := r.Lookup("vec3")
	assert.False(t, ok)
}

func TestRegisterAppendsAndRebinds(t *testing.T) {
	r := New()
	before := r.Len()

	alias := r.Register("byte", Type{Tag: U8})
	assert.Equal(t, before+1, r.Len())
	assert.Equal(t, U8, r.Get(alias).Tag)

	// Last registration wins for the name; earlier IDs stay valid.
	original, _ := r.Lookup("u8")
	rebound := r.Register("u8", Type{Tag: U16})
	got, _ := r.Lookup("u8")
	assert.Equal(t, rebound, got)
	assert.Equal(t, U8, r.Get(original).Tag)
}

func TestGetOutOfRangePanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.Get(TypeID(r.Len())) })
}

// TestPredicatesPartitionTags checks that unsigned/signed/float are
// mutually exclusive and cover every tag except void, and that void
// satisfies no predicate.
func TestPredicatesPartitionTags(t *testing.T) {
	for tag := Void; tag <= F64; tag++ {
		ty := Type{Tag: tag}
		n := 0
		if ty.IsUnsignedInt() {
			n++
		}
		if ty.IsSignedInt() {
			n++
		}
		if ty.IsFloat() {
			n++
		}
		if tag == Void {
			assert.Equal(t, 0, n, "void must satisfy no predicate")
			assert.False(t, ty.IsInteger())
		} else {
			assert.Equal(t, 1, n, "tag %s must satisfy exactly one predicate", tag)
		}
		assert.Equal(t, ty.IsUnsignedInt() || ty.IsSignedInt(), ty.IsInteger(), "tag %s", tag)
	}
}
