package javap

import (
	"fmt"
	"strings"
)

const compiledFromMarker = "Compiled from"

// Parse turns the output of `javap -private` for a single class into a
// ClassRecord with package qualifiers removed from all names and types.
//
// keep restricts the members to the given names. A nil keep means all
// members, an empty non-nil keep means none. Names in keep that match no
// member produce an *UnknownMemberError.
func Parse(output string, keep []string) (*ClassRecord, error) {
	lines := strings.Split(output, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 || !strings.HasPrefix(lines[0], compiledFromMarker) {
		return nil, ErrMissingCompiledFrom
	}
	lines = lines[1:]
	if len(lines) == 0 || lines[len(lines)-1] != "}" {
		return nil, ErrMissingClosingBrace
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("parse class header: %w: no header line", ErrMalformedHeader)
	}

	header, err := ParseClassHeader(lines[0])
	if err != nil {
		return nil, fmt.Errorf("parse class header: %w", err)
	}
	header.Name = RemovePackageFromType(header.Name)

	var members []Member
	for _, line := range lines[1 : len(lines)-1] {
		// Inner and synthetic members carry a '$'; "static {};" is the
		// class initializer.
		if strings.Contains(line, "$") || strings.Contains(line, "{}") {
			continue
		}
		line = strings.ReplaceAll(line, ";", "")
		if line == "" {
			continue
		}
		m, err := ParseMember(line)
		if err != nil {
			return nil, fmt.Errorf("parse member: %w", err)
		}
		members = append(members, normalizeMember(m))
	}

	if keep != nil {
		members, err = filterMembers(members, keep)
		if err != nil {
			return nil, err
		}
	}

	record := &ClassRecord{Header: header}
	for _, m := range members {
		switch m := m.(type) {
		case Field:
			record.Fields = append(record.Fields, m)
		case Method:
			record.Methods = append(record.Methods, m)
		}
	}
	return record, nil
}

func normalizeMember(m Member) Member {
	switch m := m.(type) {
	case Field:
		m.Name = RemovePackageFromType(m.Name)
		m.Type = removePackages(m.Type)
		return m
	case Method:
		m.Name = RemovePackageFromType(m.Name)
		m.ReturnType = removePackages(m.ReturnType)
		m.Parameters = removePackages(m.Parameters)
		m.Throws = removePackages(m.Throws)
		return m
	}
	return m
}

func filterMembers(members []Member, keep []string) ([]Member, error) {
	wanted := make(map[string]bool, len(keep))
	for _, name := range keep {
		wanted[name] = true
	}

	var kept []Member
	found := make(map[string]bool)
	for _, m := range members {
		if wanted[m.MemberName()] {
			kept = append(kept, m)
			found[m.MemberName()] = true
		}
	}

	var missing []string
	for _, name := range keep {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &UnknownMemberError{Names: missing}
	}
	return kept, nil
}
