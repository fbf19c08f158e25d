package types

import "fmt"

// TypeID indexes a Registry. ID 0 is reserved: it is both the void
// primitive and the unresolved placeholder the analyzer writes before name
// resolution runs.
type TypeID uint32

const Unresolved TypeID = 0

// Tag identifies a primitive type.
type Tag uint8

const (
	Void Tag = iota

	U8
	U16
	U32
	U64
	Usize

	I8
	I16
	I32
	I64
	Isize

	F32
	F64
)

var tagNames = [...]string{
	Void:  "void",
	U8:    "u8",
	U16:   "u16",
	U32:   "u32",
	U64:   "u64",
	Usize: "usize",
	I8:    "i8",
	I16:   "i16",
	I32:   "i32",
	I64:   "i64",
	Isize: "isize",
	F32:   "f32",
	F64:   "f64",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Type is a registered type. Only primitives exist in this scope; arrays,
// user structs, and function signatures are future extensions behind the
// already-lexed struct/fn keywords.
type Type struct {
	Tag Tag
}

func (t Type) String() string { return t.Tag.String() }

// IsInteger reports whether t is any integer type. void satisfies none of
// the classification predicates.
func (t Type) IsInteger() bool { return t.IsUnsignedInt() || t.IsSignedInt() }

// IsUnsignedInt reports whether t is u8..usize.
func (t Type) IsUnsignedInt() bool { return t.Tag >= U8 && t.Tag <= Usize }

// IsSignedInt reports whether t is i8..isize.
func (t Type) IsSignedInt() bool { return t.Tag >= I8 && t.Tag <= Isize }

// IsFloat reports whether t is f32 or f64.
func (t Type) IsFloat() bool { return t.Tag == F32 || t.Tag == F64 }

var primitives = []struct {
	name string
	tag  Tag
}{
	{"void", Void}, // must be first: void takes TypeID 0
	{"u8", U8}, {"u16", U16}, {"u32", U32}, {"u64", U64}, {"usize", Usize},
	{"i8", I8}, {"i16", I16}, {"i32", I32}, {"i64", I64}, {"isize", Isize},
	{"f32", F32}, {"f64", F64},
}

// Registry is an append-only table of types plus a name index. Entries are
// never removed or reordered, so a TypeID stays valid for the life of the
// registry even if its name is later rebound.
type Registry struct {
	types []Type
	names map[string]TypeID
}

// New returns a registry with every primitive seeded, void at TypeID 0.
func New() *Registry {
	r := &Registry{
		types: make([]Type, 0, len(primitives)),
		names: make(map[string]TypeID, len(primitives)),
	}
	for _, p := range primitives {
		r.Register(p.name, Type{Tag: p.tag})
	}
	return r
}

// Register appends t and indexes it under name, returning the new TypeID.
// Registering an existing name rebinds the name to the new entry; the old
// TypeID remains valid.
func (r *Registry) Register(name string, t Type) TypeID {
	id := TypeID(len(r.types))
	r.types = append(r.types, t)
	r.names[name] = id
	return id
}

// Lookup returns the TypeID bound to name.
func (r *Registry) Lookup(name string) (TypeID, bool) {
	id, ok := r.names[name]
	return id, ok
}

// Get returns the type for id. An out-of-range id is a programmer error,
// not an input error.
func (r *Registry) Get(id TypeID) Type {
	if int(id) >= len(r.types) {
		panic(fmt.Sprintf("types: TypeID %d out of range (registry has %d entries)", id, len(r.types)))
	}
	return r.types[id]
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.types) }
