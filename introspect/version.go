package introspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// supportedJavap is the range whose -private listings use the layout the
// parser expects (default methods, full generic signatures).
const supportedJavap = ">= 1.8"

// Version asks javap for its version.
func (j *Javap) Version(ctx context.Context) (*semver.Version, error) {
	out, err := j.run(ctx, "-version")
	if err != nil {
		return nil, err
	}
	return ParseJavapVersion(string(out))
}

// ParseJavapVersion reads the first line of `javap -version`, e.g.
// "17.0.9" or "1.8.0_392".
func ParseJavapVersion(out string) (*semver.Version, error) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("parse javap version: empty output")
	}
	if base, _, found := strings.Cut(line, "_"); found {
		line = base
	}
	v, err := semver.NewVersion(line)
	if err != nil {
		return nil, fmt.Errorf("parse javap version %q: %w", line, err)
	}
	return v, nil
}

// Supported reports whether listings from javap v can be parsed.
func Supported(v *semver.Version) bool {
	c, err := semver.NewConstraint(supportedJavap)
	if err != nil {
		return false
	}
	return c.Check(v)
}
