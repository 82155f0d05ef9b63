package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/genuml/javap"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(record *javap.ClassRecord) error
}

// NewEncoder returns the encoder registered under name ("plantuml" or "json").
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "", "plantuml", "puml":
		return NewPlantUMLEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected plantuml or json)", name)
	}
}
