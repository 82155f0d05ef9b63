package javap

import (
	"regexp"
	"strings"
)

var (
	// The optional ".." keeps varargs ("String...") from being eaten.
	packagePrefix = regexp.MustCompile(`[^ .()<>]+\.(\.\.)?`)
	simpleSuffix  = regexp.MustCompile(`\.[^ .()<>]+$`)
)

// RemovePackageFromType strips package qualifiers from every type name in s,
// including names nested in generic arguments:
//
//	java.util.Map<java.lang.String, java.util.List<a.B>> -> Map<String, List<B>>
func RemovePackageFromType(s string) string {
	return packagePrefix.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasSuffix(m, "...") {
			return m
		}
		return ""
	})
}

// RemoveClassFromPackage returns the package part of a fully qualified class
// name, or "" for a class in the default package. Type parameters on the
// class name are ignored.
func RemoveClassFromPackage(fqcn string) string {
	if i := strings.IndexByte(fqcn, '<'); i >= 0 {
		fqcn = fqcn[:i]
	}
	if !strings.Contains(fqcn, ".") {
		return ""
	}
	return simpleSuffix.ReplaceAllString(fqcn, "")
}

func removePackages(types []string) []string {
	if types == nil {
		return nil
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = RemovePackageFromType(t)
	}
	return out
}
