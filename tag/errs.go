package tag

import "errors"

// ErrTypeMismatch is returned when a tag is narrowed to a kind it does not
// hold. There is no coercion between kinds.
var ErrTypeMismatch = errors.New("type mismatch")
