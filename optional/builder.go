package optional

// Builder tracks whether any member of a nested request object was populated.
// It is handed to the fill function of Group; the object is discarded when the
// builder stays empty.
type Builder struct {
	populated bool
}

// Empty reports whether nothing has been populated yet.
func (b *Builder) Empty() bool { return !b.populated }

// Mark records a member populated by hand, for shapes the helpers below cannot
// express (for example union members).
func (b *Builder) Mark() { b.populated = true }

// Set stores a pointer to v's value in dst when v is present.
func Set[T any](b *Builder, dst **T, v Value[T]) {
	if x, ok := v.Get(); ok {
		*dst = &x
		b.populated = true
	}
}

// SetValue stores v's value in dst when v is present. It is used for
// non-pointer members such as SDK enum strings.
func SetValue[T any](b *Builder, dst *T, v Value[T]) {
	if x, ok := v.Get(); ok {
		*dst = x
		b.populated = true
	}
}

// SetSlice stores a collection when it is present. A present collection counts
// as populated even when it has no elements and is sent as an empty list.
func SetSlice[T any](b *Builder, dst *[]T, v Value[[]T]) {
	x, ok := v.Get()
	if !ok {
		return
	}
	if x == nil {
		x = []T{}
	}
	*dst = x
	b.populated = true
}

// Nest stores a child object built by Group. A nil child leaves dst untouched
// and does not populate the parent.
func Nest[T any](b *Builder, dst **T, child *T) {
	if child == nil {
		return
	}
	*dst = child
	b.populated = true
}

// Group builds a nested object with fill and returns nil when fill populated
// none of its members. Groups compose: a parent whose only members are empty
// child groups is itself nil.
func Group[T any](fill func(obj *T, b *Builder)) *T {
	var (
		obj T
		b   Builder
	)
	fill(&obj, &b)
	if b.Empty() {
		return nil
	}
	return &obj
}
