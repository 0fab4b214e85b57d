package tag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrPathNotFound = errors.New("path not found")

// GetPath resolves a dotted path like "player.inventory[3].id" against t.
// Path segments name compound keys; a segment may carry one or more [i]
// list indices. An empty path resolves to t itself.
func GetPath(t *Tag, path string) (*Tag, error) {
	if path == "" {
		return t, nil
	}
	cur := t
	for _, seg := range strings.Split(path, ".") {
		key, idxs, err := splitSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrPathNotFound, path, err)
		}
		if key != "" {
			if cur.Type != CompoundType {
				return nil, fmt.Errorf("%w: %q: %s is not a compound", ErrPathNotFound, path, cur.Type)
			}
			next := cur.Get(key)
			if next == nil {
				return nil, fmt.Errorf("%w: %q: no key %q", ErrPathNotFound, path, key)
			}
			cur = next
		}
		for _, idx := range idxs {
			if cur.Type != ListType {
				return nil, fmt.Errorf("%w: %q: %s is not a list", ErrPathNotFound, path, cur.Type)
			}
			if idx < 0 || idx >= len(cur.Values) {
				return nil, fmt.Errorf("%w: %q: index %d out of range", ErrPathNotFound, path, idx)
			}
			cur = cur.Values[idx]
		}
	}
	return cur, nil
}

func splitSegment(seg string) (string, []int, error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, nil, nil
	}
	key, rest := seg[:open], seg[open:]
	var idxs []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("malformed segment %q", seg)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", nil, fmt.Errorf("malformed segment %q", seg)
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, fmt.Errorf("malformed index in %q", seg)
		}
		idxs = append(idxs, idx)
		rest = rest[end+1:]
	}
	return key, idxs, nil
}
