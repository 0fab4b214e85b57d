// Package libdiff computes structural diffs between tags.
//
// Diff returns nil when the two tags are equal; otherwise it returns a
// tag describing the change. A changed leaf becomes a compound with
// "from" and "to" entries, where a missing side marks an insertion or
// deletion. Compounds and lists diff recursively, reporting only the
// keys and elements that changed.
//
// Key and element alignment uses diffmatchpatch over rune-mapped
// sequences, so reorderings and shifts produce minimal diffs rather
// than positional noise.
package libdiff
