package javap

import (
	"fmt"
	"strings"
)

// ParseClassHeader parses the declaration line javap prints for a class,
// interface, enum or annotation, e.g.
//
//	public abstract class a.B extends a.C implements a.D, a.E<a.F> {
func ParseClassHeader(decl string) (ClassHeader, error) {
	body, ok := strings.CutSuffix(decl, " {")
	if !ok {
		return ClassHeader{}, fmt.Errorf("%w: %q does not end with \" {\"", ErrMalformedHeader, decl)
	}

	var h ClassHeader
	if before, impl, found := cutTopLevel(body, " implements "); found {
		body = before
		h.Implements = SplitArgs(impl)
	}
	if before, ext, found := cutTopLevel(body, " extends "); found {
		body = before
		h.Extends = ext
	}

	tokens := fieldsTopLevel(body)
	h.Name = tokens[len(tokens)-1]
	h.Package = RemoveClassFromPackage(h.Name)
	modifiers := tokens[:len(tokens)-1]

	switch {
	case hasModifier(modifiers, "interface"):
		h.Kind = ClassKindInterface
		modifiers = removeFirst(modifiers, "interface")
	case hasModifier(modifiers, "abstract"):
		h.Kind = ClassKindAbstract
		modifiers = removeFirst(modifiers, "abstract")
	case hasModifier(modifiers, "class"):
		h.Kind = ClassKindClass
		modifiers = removeFirst(modifiers, "class")
	default:
		return ClassHeader{}, fmt.Errorf("%w: no class or interface keyword in %q", ErrMalformedHeader, decl)
	}
	h.Modifiers = modifiers

	// javap shows enums and annotations as classes and interfaces with a
	// well-known supertype. Only the prefix is checked.
	if strings.HasPrefix(h.Extends, enumBaseType) {
		h.Kind = ClassKindEnum
	}
	if strings.HasPrefix(h.Extends, annotationBaseType) {
		h.Kind = ClassKindAnnotation
	}
	return h, nil
}

func removeFirst(tokens []string, word string) []string {
	out := make([]string, 0, len(tokens))
	removed := false
	for _, tok := range tokens {
		if tok == word && !removed {
			removed = true
			continue
		}
		out = append(out, tok)
	}
	return out
}
