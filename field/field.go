package field

import (
	"fmt"
	"regexp"

	"github.com/arloliu/yxdb/errs"
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Field is a single column descriptor: a name, a type, and the optional
// size/scale the type requires. Field values are immutable once built —
// construct one through Builder rather than composing a literal, so the
// invariants in spec §3 are checked once at the boundary instead of at every
// read site.
type Field struct {
	Name        string
	Type        Type
	Size        uint
	Scale       uint
	Description string
}

// Modifier mutates a Builder in flight. The XML and textual schema parsers
// each produce a []Modifier from the attributes/tokens they read, then fold
// them over a fresh Builder — this is the explicit-builder replacement for
// the source format's lens-based field updates (see design notes).
type Modifier func(*Builder)

// WithSize sets the field's Size.
func WithSize(n uint) Modifier { return func(b *Builder) { b.size = n; b.hasSize = true } }

// WithScale sets the field's Scale.
func WithScale(n uint) Modifier { return func(b *Builder) { b.scale = n; b.hasScale = true } }

// WithDescription sets the field's free-form description attribute.
func WithDescription(s string) Modifier { return func(b *Builder) { b.description = s } }

// Builder stages a Field's attributes before Build validates and seals them.
type Builder struct {
	name        string
	typ         Type
	size        uint
	hasSize     bool
	scale       uint
	hasScale    bool
	description string
}

// NewBuilder starts building a Field with the given name and type, then
// folds the supplied modifiers over it.
func NewBuilder(name string, typ Type, mods ...Modifier) *Builder {
	b := &Builder{name: name, typ: typ}
	for _, m := range mods {
		m(b)
	}

	return b
}

// Build validates the staged attributes against the invariants in spec §3
// and seals them into an immutable Field.
func (b *Builder) Build() (Field, error) {
	if !nameRe.MatchString(b.name) {
		return Field{}, fmt.Errorf("%w: %q", errs.ErrInvalidFieldName, b.name)
	}

	if b.typ.RequiresSize() && !b.hasSize {
		return Field{}, fmt.Errorf("%w: %s field %q", errs.ErrMissingFieldSize, b.typ, b.name)
	}
	if !b.typ.RequiresSize() && b.hasSize {
		return Field{}, fmt.Errorf("%w: %s field %q", errs.ErrUnexpectedFieldSize, b.typ, b.name)
	}

	if b.typ.RequiresScale() && !b.hasScale {
		return Field{}, fmt.Errorf("%w: %s field %q", errs.ErrMissingFieldScale, b.typ, b.name)
	}
	if !b.typ.RequiresScale() && b.hasScale {
		return Field{}, fmt.Errorf("%w: %s field %q", errs.ErrUnexpectedScale, b.typ, b.name)
	}

	return Field{
		Name:        b.name,
		Type:        b.typ,
		Size:        b.size,
		Scale:       b.scale,
		Description: b.description,
	}, nil
}

// Width returns the fixed on-disk width of a value for this field, and
// whether the field is fixed-width at all (false for VString/VWString).
func (f Field) Width() (int, bool) {
	return f.Type.FixedWidth(f.Size, f.Scale)
}
