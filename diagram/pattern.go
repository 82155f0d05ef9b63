package diagram

import (
	"path/filepath"
	"strings"
)

const DefaultMarker = "[JAVA] "

// ParsePattern splits "com.example.Foo: bar baz" into the class name and
// the member allow-list. Without a colon keep is nil; an empty list after
// the colon yields an empty, non-nil keep.
func ParsePattern(pattern string) (fqcn string, keep []string) {
	parts := strings.Split(pattern, ":")
	fqcn = parts[0]
	if len(parts) == 2 {
		keep = strings.Split(strings.TrimSpace(parts[1]), " ")
		if len(keep) == 1 && keep[0] == "" {
			keep = []string{}
		}
	}
	return fqcn, keep
}

// ClassPath maps a fully qualified class name to its file under dir.
func ClassPath(dir, fqcn string) string {
	return filepath.Join(dir, strings.ReplaceAll(fqcn, ".", string(filepath.Separator))+".class")
}

// Directive reports whether line is a PlantUML comment carrying marker, and
// returns the pattern that follows it.
func Directive(line, marker string) (string, bool) {
	return strings.CutPrefix(line, "'"+marker)
}
