package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/genuml/javap"
)

const separator = "  --\n"

type PlantUMLEncoder struct {
	w      io.Writer
	record *javap.ClassRecord
}

func NewPlantUMLEncoder(w io.Writer) *PlantUMLEncoder {
	return &PlantUMLEncoder{w: w}
}

func (e *PlantUMLEncoder) Encode(record *javap.ClassRecord) error {
	e.record = record
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// MarshalText renders the record as a PlantUML class block. The block does
// not end with a newline.
func (e *PlantUMLEncoder) MarshalText() ([]byte, error) {
	r := e.record
	if r == nil {
		return nil, fmt.Errorf("plantuml: no class record to encode")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s {\n", r.Header.Kind, r.Header.Name)
	fmt.Fprintf(&sb, "  %s\n", r.Header.Package)
	sb.WriteString(separator)

	for _, f := range r.Fields {
		sb.WriteString(FieldLine(f))
		sb.WriteByte('\n')
	}
	if len(r.Fields) > 0 && len(r.Methods) > 0 {
		sb.WriteString(separator)
	}
	for _, m := range r.Methods {
		sb.WriteString(MethodLine(m))
		sb.WriteByte('\n')
	}
	sb.WriteString("}")

	return []byte(sb.String()), nil
}

// Symbol maps a visibility to its PlantUML glyph.
func Symbol(v javap.Visibility) string {
	switch v {
	case javap.VisibilityPrivate:
		return "-"
	case javap.VisibilityProtected:
		return "#"
	case javap.VisibilityPublic:
		return "+"
	default:
		return "~"
	}
}

func FieldLine(f javap.Field) string {
	return fmt.Sprintf("  %s %s: %s", Symbol(f.Visibility()), f.Name, strings.Join(f.Type, " "))
}

func MethodLine(m javap.Method) string {
	return fmt.Sprintf("  %s %s(%s): %s",
		Symbol(m.Visibility()),
		m.Name,
		strings.Join(m.Parameters, ", "),
		strings.Join(m.ReturnType, " "),
	)
}
