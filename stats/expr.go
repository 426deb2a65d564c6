package stats

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval computes a Starlark expression over the run statistics. The
// counters are bound as integers: loc, comments, eol, labels, jumps,
// fwjumps, backjumps, selfjumps, unresolvedjumps, badjumps.
func (s *Stats) Eval(expr string) (string, error) {
	jumps := s.AnalyzeJumps()

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"loc":             starlark.MakeInt(s.Loc),
		"comments":        starlark.MakeInt(s.Comments),
		"eol":             starlark.MakeInt(s.EOL),
		"labels":          starlark.MakeInt(len(s.Labels)),
		"jumps":           starlark.MakeInt(len(s.Jumps)),
		"fwjumps":         starlark.MakeInt(jumps.Forward),
		"backjumps":       starlark.MakeInt(jumps.Backward),
		"selfjumps":       starlark.MakeInt(jumps.Self),
		"unresolvedjumps": starlark.MakeInt(jumps.Unresolved),
		"badjumps":        starlark.MakeInt(jumps.Bad()),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return "", ErrExpression{Expr: expr, Err: err}
	}
	rc, ok := dict["rc"]
	if !ok {
		return "", ErrExpression{Expr: expr, Err: errors.New(f("expression yields no value"))}
	}

	if str, ok := starlark.AsString(rc); ok {
		return str, nil
	}
	return fmt.Sprintf("%v", rc), nil
}
