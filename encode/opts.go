package encode

type EncodeOption func(*EncState)

// Compact renders on a single line with no indentation.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// Indent sets the per-level indent string. Ignored when compact.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeColors enables ANSI color output using c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
