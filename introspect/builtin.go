package introspect

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/dhamidi/genuml/classfile"
)

// Builtin reads class files directly and prints the listing javap would.
type Builtin struct{}

func (Builtin) Describe(ctx context.Context, classFile string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cf, err := classfile.ParseFile(classFile)
	if err != nil {
		return "", err
	}
	return Listing(cf)
}

// Listing renders cf in the layout of `javap -private`.
func Listing(cf *classfile.ClassFile) (string, error) {
	var sb strings.Builder

	source := cf.SourceFile()
	if source == "" {
		source = outerName(cf.ClassName()) + ".java"
	}
	fmt.Fprintf(&sb, "Compiled from %q\n", source)

	header, err := classHeader(cf)
	if err != nil {
		return "", err
	}
	sb.WriteString(header)
	sb.WriteString(" {\n")

	cp := cf.ConstantPool
	for i := range cf.Fields {
		f := &cf.Fields[i]
		if f.IsHidden() {
			continue
		}
		line, err := fieldLine(cp, f)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", f.Name(cp), err)
		}
		fmt.Fprintf(&sb, "  %s;\n", line)
	}
	for i := range cf.Methods {
		m := &cf.Methods[i]
		if m.IsHidden() || m.AccessFlags.Has(classfile.AccBridge) {
			continue
		}
		line, err := methodLine(cf, m)
		if err != nil {
			return "", fmt.Errorf("method %s: %w", m.Name(cp), err)
		}
		fmt.Fprintf(&sb, "  %s;\n", line)
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}

// outerName is the simple name of the top-level class enclosing name.
func outerName(internal string) string {
	simple := path.Base(internal)
	outer, _, _ := strings.Cut(simple, "$")
	return outer
}

func classHeader(cf *classfile.ClassFile) (string, error) {
	name := classfile.InternalToSourceName(cf.ClassName())
	super := classfile.InternalToSourceName(cf.SuperClassName())
	var interfaces []string
	for _, iface := range cf.InterfaceNames() {
		interfaces = append(interfaces, classfile.InternalToSourceName(iface))
	}

	if sig := cf.Signature(); sig != "" {
		cs, err := classfile.ParseClassSignature(sig)
		if err != nil {
			return "", fmt.Errorf("class signature: %w", err)
		}
		name += cs.TypeParameters
		super = cs.SuperClass
		interfaces = cs.Interfaces
	}

	flags := cf.AccessFlags
	var parts []string
	if flags.Has(classfile.AccPublic) {
		parts = append(parts, "public")
	}

	if flags.Has(classfile.AccInterface) {
		parts = append(parts, "interface", name)
		if len(interfaces) > 0 {
			parts = append(parts, "extends", strings.Join(interfaces, ", "))
		}
		return strings.Join(parts, " "), nil
	}

	if flags.Has(classfile.AccAbstract) {
		parts = append(parts, "abstract")
	}
	if flags.Has(classfile.AccFinal) {
		parts = append(parts, "final")
	}
	parts = append(parts, "class", name)
	if super != "" && super != "java.lang.Object" {
		parts = append(parts, "extends", super)
	}
	if len(interfaces) > 0 {
		parts = append(parts, "implements", strings.Join(interfaces, ", "))
	}
	return strings.Join(parts, " "), nil
}

func fieldLine(cp classfile.ConstantPool, f *classfile.MemberInfo) (string, error) {
	mods := f.AccessFlags.Keywords(classfile.Visibility)
	mods = append(mods, f.AccessFlags.Keywords(classfile.FieldModifiers)...)

	var typ string
	if sig := f.Signature(cp); sig != "" {
		t, err := classfile.ParseFieldSignature(sig)
		if err != nil {
			return "", err
		}
		typ = t
	} else {
		ft := classfile.ParseFieldDescriptor(f.Descriptor(cp))
		if ft == nil {
			return "", fmt.Errorf("invalid descriptor %q", f.Descriptor(cp))
		}
		typ = ft.String()
	}

	return strings.Join(append(mods, typ, f.Name(cp)), " "), nil
}

func methodLine(cf *classfile.ClassFile, m *classfile.MemberInfo) (string, error) {
	cp := cf.ConstantPool
	if m.IsStaticInitializer(cp) {
		return "static {}", nil
	}

	flags := m.AccessFlags
	mods := flags.Keywords(classfile.Visibility)
	if flags.Has(classfile.AccStatic) {
		mods = append(mods, "static")
	} else if cf.AccessFlags.Has(classfile.AccInterface) && !flags.Has(classfile.AccAbstract|classfile.AccPrivate) {
		mods = append(mods, "default")
	}
	mods = append(mods, flags.Keywords(classfile.MethodModifiers)...)

	var typeParams, ret string
	var params, throws []string
	if sig := m.Signature(cp); sig != "" {
		ms, err := classfile.ParseMethodSignature(sig)
		if err != nil {
			return "", err
		}
		typeParams, params, ret, throws = ms.TypeParameters, ms.Parameters, ms.ReturnType, ms.Throws
	} else {
		md := classfile.ParseMethodDescriptor(m.Descriptor(cp))
		if md == nil {
			return "", fmt.Errorf("invalid descriptor %q", m.Descriptor(cp))
		}
		params, ret = md.ParameterNames(), md.ReturnName()
	}
	if len(throws) == 0 {
		for _, ex := range m.Exceptions(cp) {
			throws = append(throws, classfile.InternalToSourceName(ex))
		}
	}
	if flags.Has(classfile.AccVarargs) && len(params) > 0 {
		last := params[len(params)-1]
		params[len(params)-1] = strings.TrimSuffix(last, "[]") + "..."
	}

	parts := mods
	if typeParams != "" {
		parts = append(parts, typeParams)
	}
	if m.IsConstructor(cp) {
		parts = append(parts, classfile.InternalToSourceName(cf.ClassName()))
	} else {
		parts = append(parts, ret, m.Name(cp))
	}

	line := strings.Join(parts, " ") + "(" + strings.Join(params, ", ") + ")"
	if len(throws) > 0 {
		line += " throws " + strings.Join(throws, ", ")
	}
	return line, nil
}
