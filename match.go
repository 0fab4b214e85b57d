package compound

import (
	"fmt"

	"github.com/compound-format/go-compound/debug"
	"github.com/compound-format/go-compound/tag"

	"github.com/expr-lang/expr"
)

// Match evaluates a boolean expr program against the document's plain
// form; the document's top-level keys are the program's environment, so
// `health > 10 && name == "iris"` selects on entries directly. doc must
// be a compound.
func Match(doc *tag.Tag, program string) (bool, error) {
	if doc.Type != tag.CompoundType {
		return false, fmt.Errorf("match: document is %s, not a compound", doc.Type)
	}
	env, ok := ToAny(doc).(map[string]any)
	if !ok {
		return false, fmt.Errorf("match: bad environment")
	}
	prg, err := expr.Compile(program, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	if debug.Match() {
		debug.Logf("compound: match %q = %v\n", program, res)
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("match: program returned %T, not bool", res)
	}
	return v, nil
}
