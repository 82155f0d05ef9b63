package lsp

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhamidi/genuml/diagram"
	"github.com/dhamidi/genuml/javap"
)

// ClassNames lists the fully qualified names of the classes under dir.
// Nested and anonymous classes are left out.
func ClassNames(dir string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".class" || strings.Contains(d.Name(), "$") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = strings.TrimSuffix(rel, ".class")
		names = append(names, strings.ReplaceAll(rel, string(filepath.Separator), "."))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// MemberNames lists the distinct field and method names of record in
// declaration order.
func MemberNames(record *javap.ClassRecord) []string {
	seen := map[string]bool{}
	var names []string
	for _, m := range record.Members() {
		name := m.MemberName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

type completionTarget struct {
	// class is set when the cursor is in the member list.
	class  string
	prefix string
}

func (t completionTarget) members() bool {
	return t.class != ""
}

// directiveTarget inspects the text left of col and reports what is being
// typed when it is inside a directive.
func directiveTarget(line string, col int, marker string) (completionTarget, bool) {
	if col > len(line) {
		col = len(line)
	}
	text := strings.TrimLeft(line[:col], " \t")
	pattern, ok := diagram.Directive(text, marker)
	if !ok {
		return completionTarget{}, false
	}

	class, rest, found := strings.Cut(pattern, ":")
	if !found {
		return completionTarget{prefix: pattern}, true
	}
	if i := strings.LastIndexByte(rest, ' '); i >= 0 {
		rest = rest[i+1:]
	}
	return completionTarget{class: strings.TrimSpace(class), prefix: rest}, true
}

func filterPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
