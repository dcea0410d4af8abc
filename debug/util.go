package debug

import (
	"fmt"
	"unicode/utf16"
)

// SelectColor deterministically picks a palette entry for ns. It returns ""
// for an empty palette.
func SelectColor(palette []string, ns string) string {
	if len(palette) == 0 {
		return ""
	}

	var hash int32
	for _, c := range utf16.Encode([]rune(ns)) {
		hash = (hash << 5) - hash + int32(c)
	}

	idx := int64(hash)
	if idx < 0 {
		idx = -idx
	}

	return palette[idx%int64(len(palette))]
}

// Coerce replaces an error with its text. Errors implementing
// [fmt.Formatter] are rendered with "%+v", which includes stack traces for
// the common error wrapping libraries. Other values are returned unchanged.
func Coerce(v any) any {
	err, ok := v.(error)
	if !ok {
		return v
	}

	if _, ok := err.(fmt.Formatter); ok {
		return fmt.Sprintf("%+v", err)
	}

	return err.Error()
}
