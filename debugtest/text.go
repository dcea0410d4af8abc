package debugtest

import "strings"

// JoinLF joins lines with LF line endings.
//
//	want := debugtest.JoinLF(
//		"  app:db connected",
//		"  app:db ready",
//	) // -> "  app:db connected\n  app:db ready"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Input strips one leading and one trailing newline from s and removes the
// indentation shared by all non-blank lines, so expected output can be
// written as an indented raw string.
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	prefix := ""
	first := true

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}
