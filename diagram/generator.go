// Package diagram turns compiled classes into PlantUML blocks and splices
// them into PlantUML documents next to their directive comments.
package diagram

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhamidi/genuml/format"
	"github.com/dhamidi/genuml/introspect"
	"github.com/dhamidi/genuml/javap"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("genuml.diagram")

type Generator struct {
	Introspector introspect.Introspector
	// Format names the encoder, see format.NewEncoder.
	Format string
}

// Generate renders the class in classFile. A nil keep renders every
// member; otherwise only the named ones.
func (g *Generator) Generate(ctx context.Context, classFile string, keep []string) (string, error) {
	listing, err := g.Introspector.Describe(ctx, classFile)
	if err != nil {
		return "", fmt.Errorf("describe %s: %w", classFile, err)
	}

	record, err := javap.Parse(listing, keep)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", classFile, err)
	}

	var sb strings.Builder
	enc, err := format.NewEncoder(g.Format, &sb)
	if err != nil {
		return "", err
	}
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("encode %s: %w", classFile, err)
	}
	return sb.String(), nil
}
