package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/genuml/javap"
)

type JSONEncoder struct {
	w      io.Writer
	record *javap.ClassRecord
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(record *javap.ClassRecord) error {
	e.record = record
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.record == nil {
		return nil, fmt.Errorf("json: no class record to encode")
	}
	return json.MarshalIndent(e.buildClassData(), "", "  ")
}

type jsonClass struct {
	Name       string       `json:"name"`
	Package    string       `json:"package"`
	Kind       string       `json:"kind"`
	Extends    string       `json:"extends,omitempty"`
	Implements []string     `json:"implements,omitempty"`
	Modifiers  []string     `json:"modifiers,omitempty"`
	Fields     []jsonField  `json:"fields,omitempty"`
	Methods    []jsonMethod `json:"methods,omitempty"`
}

type jsonField struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Visibility string   `json:"visibility"`
	Modifiers  []string `json:"modifiers,omitempty"`
	Static     bool     `json:"static,omitempty"`
}

type jsonMethod struct {
	Name        string   `json:"name"`
	ReturnType  string   `json:"returnType,omitempty"`
	Parameters  []string `json:"parameters,omitempty"`
	Throws      []string `json:"throws,omitempty"`
	Visibility  string   `json:"visibility"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Static      bool     `json:"static,omitempty"`
	Constructor bool     `json:"constructor,omitempty"`
}

func (e *JSONEncoder) buildClassData() jsonClass {
	h := e.record.Header
	data := jsonClass{
		Name:       h.Name,
		Package:    h.Package,
		Kind:       string(h.Kind),
		Extends:    javap.RemovePackageFromType(h.Extends),
		Implements: simpleNames(h.Implements),
		Modifiers:  h.Modifiers,
		Fields:     make([]jsonField, len(e.record.Fields)),
		Methods:    make([]jsonMethod, len(e.record.Methods)),
	}
	for i, f := range e.record.Fields {
		data.Fields[i] = jsonField{
			Name:       f.Name,
			Type:       joinType(f.Type),
			Visibility: string(f.Visibility()),
			Modifiers:  f.Modifiers,
			Static:     f.IsStatic(),
		}
	}
	for i, m := range e.record.Methods {
		data.Methods[i] = jsonMethod{
			Name:        m.Name,
			ReturnType:  joinType(m.ReturnType),
			Parameters:  parameters(m.Parameters),
			Throws:      m.Throws,
			Visibility:  string(m.Visibility()),
			Modifiers:   m.Modifiers,
			Static:      m.IsStatic(),
			Constructor: m.IsConstructor(),
		}
	}
	return data
}

func joinType(tokens []string) string {
	return strings.Join(tokens, " ")
}

func simpleNames(types []string) []string {
	var out []string
	for _, t := range types {
		out = append(out, javap.RemovePackageFromType(t))
	}
	return out
}

// parameters drops the single empty entry javap.SplitArgs produces for an
// empty parameter list.
func parameters(params []string) []string {
	if len(params) == 1 && params[0] == "" {
		return nil
	}
	return params
}
