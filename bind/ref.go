package bind

import "github.com/compound-format/go-compound/tag"

// Ref yields the compound a binding is rooted at. A live Ref may yield a
// different compound on each call; fields tolerate that (see Field.Read).
type Ref func() *tag.Tag

// At wraps a fixed compound as a trivial live reference.
func At(t *tag.Tag) Ref {
	return func() *tag.Tag { return t }
}

// Var returns a live reference that follows the variable p points to:
// reassigning *p redirects every field built on the reference.
func Var(p **tag.Tag) Ref {
	return func() *tag.Tag { return *p }
}

// Freeze evaluates r once and returns a reference pinned to that
// compound, ignoring whatever r yields later.
func Freeze(r Ref) Ref {
	t := r()
	return func() *tag.Tag { return t }
}
