package javap

import (
	"fmt"
	"strings"
)

// ParseMember parses one javap member line with the trailing semicolon
// already removed. Lines with a parenthesis are methods, all others fields.
func ParseMember(decl string) (Member, error) {
	if strings.Contains(decl, "(") {
		return ParseMethod(decl)
	}
	return ParseField(decl), nil
}

// ParseMethod parses a method or constructor signature such as
//
//	public static void main(java.lang.String[])
//
// Constructors have no return type and keep the class name as their name.
func ParseMethod(sig string) (Method, error) {
	pre, rest, ok := strings.Cut(sig, "(")
	if !ok {
		return Method{}, fmt.Errorf("%w: no parameter list in %q", ErrMalformedSignature, sig)
	}

	var throws []string
	if args, exceptions, found := strings.Cut(rest, ") throws "); found {
		rest = args + ")"
		throws = SplitArgs(exceptions)
	}
	if !strings.HasSuffix(rest, ")") {
		return Method{}, fmt.Errorf("%w: %q does not end with \")\"", ErrMalformedSignature, sig)
	}

	tokens := strings.Split(pre, " ")
	modifiers, returnType := partitionModifiers(tokens[:len(tokens)-1])
	return Method{
		Name:       tokens[len(tokens)-1],
		ReturnType: returnType,
		Modifiers:  modifiers,
		Parameters: SplitArgs(rest[:len(rest)-1]),
		Throws:     throws,
	}, nil
}

func ParseField(decl string) Field {
	tokens := strings.Split(decl, " ")
	modifiers, typ := partitionModifiers(tokens[:len(tokens)-1])
	return Field{
		Name:      tokens[len(tokens)-1],
		Type:      typ,
		Modifiers: modifiers,
	}
}

// partitionModifiers separates modifier keywords from type tokens, keeping
// the order of both.
func partitionModifiers(tokens []string) (modifiers, rest []string) {
	modifiers = []string{}
	rest = []string{}
	for _, tok := range tokens {
		if IsModifier(tok) {
			modifiers = append(modifiers, tok)
		} else {
			rest = append(rest, tok)
		}
	}
	return modifiers, rest
}
