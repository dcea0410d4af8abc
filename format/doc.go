// Package format expands `%` tokens in debug message templates.
//
// A [Registry] maps a single ASCII letter to a [Func] that renders one
// positional argument. [Registry.Format] scans a template once, left to right:
//
//   - `%%` becomes a literal `%` and consumes no argument.
//   - `%x` with a registered formatter consumes the next argument and is
//     replaced by the formatter's output.
//   - `%x` without a formatter is kept verbatim; the argument in its position
//     is left for the sink and skipped over.
//
// Arguments that were not consumed are returned in their original order:
//
//	r := format.NewDefaultRegistry()
//	msg, rest := r.Format("%s is %d", []any{"x", 5, "extra"}, nil)
//	// msg == "x is 5", rest == []any{"extra"}
//
// [NewDefaultRegistry] includes `s`, `d`, `i`, `f` and `j` (JSON). Structural
// inspection tokens such as `%o` and `%O` are registered by the environment.
package format
