package javap

import "strings"

// SplitArgs splits a comma separated list of types, ignoring commas nested
// inside generic brackets. An empty string yields a single empty segment.
// Unbalanced brackets are not reported.
func SplitArgs(args string) []string {
	depth := 0
	var splits []int
	for i, ch := range args {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				splits = append(splits, i)
			}
		}
	}
	parts := splitExclude(args, splits)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitExclude cuts s at each index and drops the byte at that index.
func splitExclude(s string, splits []int) []string {
	parts := make([]string, 0, len(splits)+1)
	start := 0
	for _, i := range splits {
		parts = append(parts, s[start:i])
		start = i + 1
	}
	return append(parts, s[start:])
}

// cutTopLevel is strings.Cut that only matches sep outside of <...>.
func cutTopLevel(s, sep string) (before, after string, found bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		}
		if depth == 0 && strings.HasPrefix(s[i:], sep) {
			return s[:i], s[i+len(sep):], true
		}
	}
	return s, "", false
}

// fieldsTopLevel splits s on single spaces that are outside of <...>.
func fieldsTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ' ':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}
