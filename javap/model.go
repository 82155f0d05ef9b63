package javap

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindAbstract   ClassKind = "abstract"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

const (
	enumBaseType       = "java.lang.Enum"
	annotationBaseType = "java.lang.annotation.Annotation"
)

// Modifiers lists the keywords that can precede a member's type. Anything
// else in front of the member name is part of the type.
var Modifiers = []string{
	"public", "protected", "private", "static",
	"abstract", "final", "synchronized", "native",
	"default",
}

// Member is either a Method or a Field.
type Member interface {
	MemberName() string
	member()
}

type Field struct {
	Name      string
	Type      []string
	Modifiers []string
}

type Method struct {
	// Name is the fully qualified class name for constructors until the
	// record is normalized.
	Name       string
	ReturnType []string
	Modifiers  []string
	Parameters []string
	Throws     []string
}

func (f Field) MemberName() string  { return f.Name }
func (m Method) MemberName() string { return m.Name }

func (Field) member()  {}
func (Method) member() {}

func (f Field) Visibility() Visibility  { return VisibilityOf(f.Modifiers) }
func (m Method) Visibility() Visibility { return VisibilityOf(m.Modifiers) }

// IsConstructor reports whether m has no return type, which is how javap
// prints constructors.
func (m Method) IsConstructor() bool { return len(m.ReturnType) == 0 }

func (m Method) IsStatic() bool { return hasModifier(m.Modifiers, "static") }
func (f Field) IsStatic() bool  { return hasModifier(f.Modifiers, "static") }

type ClassHeader struct {
	Kind       ClassKind
	Name       string
	Package    string
	Extends    string
	Implements []string
	Modifiers  []string
}

type ClassRecord struct {
	Header  ClassHeader
	Fields  []Field
	Methods []Method
}

// Members returns fields followed by methods.
func (c *ClassRecord) Members() []Member {
	members := make([]Member, 0, len(c.Fields)+len(c.Methods))
	for _, f := range c.Fields {
		members = append(members, f)
	}
	for _, m := range c.Methods {
		members = append(members, m)
	}
	return members
}

// VisibilityOf checks private, protected and public in that order, so a
// (malformed) list with several of them still yields a single answer.
func VisibilityOf(modifiers []string) Visibility {
	switch {
	case hasModifier(modifiers, "private"):
		return VisibilityPrivate
	case hasModifier(modifiers, "protected"):
		return VisibilityProtected
	case hasModifier(modifiers, "public"):
		return VisibilityPublic
	}
	return VisibilityPackage
}

func IsModifier(token string) bool {
	return hasModifier(Modifiers, token)
}

func hasModifier(modifiers []string, want string) bool {
	for _, m := range modifiers {
		if m == want {
			return true
		}
	}
	return false
}
