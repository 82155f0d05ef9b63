package classfile

import (
	"fmt"
	"strings"
)

// ClassSignature is a parsed class Signature attribute with every type
// already rendered in javap's source form.
type ClassSignature struct {
	TypeParameters string
	SuperClass     string
	Interfaces     []string
}

type MethodSignature struct {
	TypeParameters string
	Parameters     []string
	ReturnType     string
	Throws         []string
}

func ParseClassSignature(sig string) (*ClassSignature, error) {
	p := &sigParser{s: sig}
	cs := &ClassSignature{}
	var err error
	if cs.TypeParameters, err = p.typeParameters(); err != nil {
		return nil, err
	}
	if cs.SuperClass, err = p.classType(); err != nil {
		return nil, err
	}
	for !p.done() {
		iface, err := p.classType()
		if err != nil {
			return nil, err
		}
		cs.Interfaces = append(cs.Interfaces, iface)
	}
	return cs, nil
}

func ParseMethodSignature(sig string) (*MethodSignature, error) {
	p := &sigParser{s: sig}
	ms := &MethodSignature{}
	var err error
	if ms.TypeParameters, err = p.typeParameters(); err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	for p.peek() != ')' {
		param, err := p.typeSignature()
		if err != nil {
			return nil, err
		}
		ms.Parameters = append(ms.Parameters, param)
	}
	p.pos++
	if ms.ReturnType, err = p.typeSignature(); err != nil {
		return nil, err
	}
	for p.peek() == '^' {
		p.pos++
		thrown, err := p.typeSignature()
		if err != nil {
			return nil, err
		}
		ms.Throws = append(ms.Throws, thrown)
	}
	if !p.done() {
		return nil, p.errorf("trailing characters")
	}
	return ms, nil
}

func ParseFieldSignature(sig string) (string, error) {
	p := &sigParser{s: sig}
	t, err := p.typeSignature()
	if err != nil {
		return "", err
	}
	if !p.done() {
		return "", p.errorf("trailing characters")
	}
	return t, nil
}

type sigParser struct {
	s   string
	pos int
}

func (p *sigParser) done() bool {
	return p.pos >= len(p.s)
}

func (p *sigParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.s[p.pos]
}

func (p *sigParser) expect(c byte) error {
	if p.peek() != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *sigParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("signature %q at %d: %s", p.s, p.pos, fmt.Sprintf(format, args...))
}

// identifier reads up to, but not including, the first byte in stop.
func (p *sigParser) identifier(stop string) (string, error) {
	start := p.pos
	for !p.done() && strings.IndexByte(stop, p.s[p.pos]) < 0 {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}
	return p.s[start:p.pos], nil
}

func (p *sigParser) typeParameters() (string, error) {
	if p.peek() != '<' {
		return "", nil
	}
	p.pos++

	var params []string
	for p.peek() != '>' {
		name, err := p.identifier(":")
		if err != nil {
			return "", err
		}
		if err := p.expect(':'); err != nil {
			return "", err
		}
		var bounds []string
		if c := p.peek(); c == 'L' || c == 'T' || c == '[' {
			bound, err := p.typeSignature()
			if err != nil {
				return "", err
			}
			bounds = append(bounds, bound)
		}
		for p.peek() == ':' {
			p.pos++
			bound, err := p.typeSignature()
			if err != nil {
				return "", err
			}
			bounds = append(bounds, bound)
		}
		if len(bounds) == 1 && bounds[0] == "java.lang.Object" {
			bounds = nil
		}
		if len(bounds) > 0 {
			name += " extends " + strings.Join(bounds, " & ")
		}
		params = append(params, name)
	}
	p.pos++
	return "<" + strings.Join(params, ", ") + ">", nil
}

func (p *sigParser) typeSignature() (string, error) {
	c := p.peek()
	if base, ok := baseTypes[c]; ok {
		p.pos++
		return base, nil
	}
	switch c {
	case 'V':
		p.pos++
		return "void", nil
	case 'L':
		return p.classType()
	case 'T':
		p.pos++
		name, err := p.identifier(";")
		if err != nil {
			return "", err
		}
		p.pos++
		return name, nil
	case '[':
		p.pos++
		elem, err := p.typeSignature()
		if err != nil {
			return "", err
		}
		return elem + "[]", nil
	}
	return "", p.errorf("unexpected %q", c)
}

func (p *sigParser) classType() (string, error) {
	if err := p.expect('L'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		name, err := p.identifier("<.;")
		if err != nil {
			return "", err
		}
		sb.WriteString(InternalToSourceName(name))
		if p.peek() == '<' {
			args, err := p.typeArguments()
			if err != nil {
				return "", err
			}
			sb.WriteString(args)
		}
		switch p.peek() {
		case '.':
			p.pos++
			sb.WriteByte('.')
		case ';':
			p.pos++
			return sb.String(), nil
		default:
			return "", p.errorf("unterminated class type")
		}
	}
}

func (p *sigParser) typeArguments() (string, error) {
	p.pos++
	var args []string
	for p.peek() != '>' {
		switch p.peek() {
		case 0:
			return "", p.errorf("unterminated type arguments")
		case '*':
			p.pos++
			args = append(args, "?")
		case '+', '-':
			prefix := "? extends "
			if p.peek() == '-' {
				prefix = "? super "
			}
			p.pos++
			bound, err := p.typeSignature()
			if err != nil {
				return "", err
			}
			args = append(args, prefix+bound)
		default:
			arg, err := p.typeSignature()
			if err != nil {
				return "", err
			}
			args = append(args, arg)
		}
	}
	p.pos++
	return "<" + strings.Join(args, ", ") + ">", nil
}
