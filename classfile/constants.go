package classfile

const Magic = 0xCAFEBABE

// AccessFlags holds the access_flags of a class, field or method. Some bits
// mean different things depending on where they appear (0x0040 is volatile
// on a field and bridge on a method).
type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccBridge       AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
)

func (f AccessFlags) Has(flag AccessFlags) bool {
	return f&flag != 0
}

// Modifier pairs an access flag with the keyword javap prints for it.
type Modifier struct {
	Flag    AccessFlags
	Keyword string
}

var (
	// Visibility modifiers are mutually exclusive in valid class files.
	Visibility = []Modifier{
		{AccPublic, "public"},
		{AccProtected, "protected"},
		{AccPrivate, "private"},
	}
	FieldModifiers = []Modifier{
		{AccStatic, "static"},
		{AccFinal, "final"},
		{AccTransient, "transient"},
		{AccVolatile, "volatile"},
	}
	// MethodModifiers follow "static" and "default", which depend on more
	// than a single bit.
	MethodModifiers = []Modifier{
		{AccAbstract, "abstract"},
		{AccFinal, "final"},
		{AccSynchronized, "synchronized"},
		{AccNative, "native"},
	}
)

// Keywords returns, in table order, the keyword of every modifier in table
// whose flag is set.
func (f AccessFlags) Keywords(table []Modifier) []string {
	var keywords []string
	for _, m := range table {
		if f.Has(m.Flag) {
			keywords = append(keywords, m.Keyword)
		}
	}
	return keywords
}

type ConstantTag uint8

// Tags the reader decodes or has to special-case. Everything else is skipped
// by size.
const (
	ConstantUtf8   ConstantTag = 1
	ConstantLong   ConstantTag = 5
	ConstantDouble ConstantTag = 6
	ConstantClass  ConstantTag = 7
)

// skipSize is the payload length of the constant pool entries whose
// contents a listing never needs.
var skipSize = map[ConstantTag]int{
	3:              4, // Integer
	4:              4, // Float
	ConstantLong:   8,
	ConstantDouble: 8,
	8:              2, // String
	9:              4, // Fieldref
	10:             4, // Methodref
	11:             4, // InterfaceMethodref
	12:             4, // NameAndType
	15:             3, // MethodHandle
	16:             2, // MethodType
	17:             4, // Dynamic
	18:             4, // InvokeDynamic
	19:             2, // Module
	20:             2, // Package
}

// wide entries take two constant pool slots.
func (t ConstantTag) wide() bool {
	return t == ConstantLong || t == ConstantDouble
}
