package lsp

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/genuml/javap"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type fakeIntrospector map[string]string

func (f fakeIntrospector) Describe(ctx context.Context, classFile string) (string, error) {
	listing, ok := f[classFile]
	if !ok {
		return "", fmt.Errorf("open class file: %w", fs.ErrNotExist)
	}
	return listing, nil
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "javap", "testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	return string(data)
}

func TestDocumentsLine(t *testing.T) {
	docs := NewDocuments()
	docs.Set("file:///a.puml", "@startuml\r\n'[JAVA] a.B\r\n@enduml")

	tests := []struct {
		n    int
		want string
		ok   bool
	}{
		{0, "@startuml", true},
		{1, "'[JAVA] a.B", true},
		{2, "@enduml", true},
		{3, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		got, ok := docs.Line("file:///a.puml", tt.n)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Line(%d) = %q, %v, want %q, %v", tt.n, got, ok, tt.want, tt.ok)
		}
	}

	docs.Delete("file:///a.puml")
	if _, ok := docs.Line("file:///a.puml", 0); ok {
		t.Error("expected closed document to be gone")
	}
}

func TestClassNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"test/data/ExampleEnum.class",
		"test/data/ExampleClass.class",
		"test/data/ExampleClass$Inner.class",
		"test/data/notes.txt",
		"Top.class",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ClassNames(dir)
	if err != nil {
		t.Fatalf("ClassNames error: %v", err)
	}
	want := []string{"Top", "test.data.ExampleClass", "test.data.ExampleEnum"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClassNames = %q, want %q", got, want)
	}

	if _, err := ClassNames(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestDirectiveTarget(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want completionTarget
		ok   bool
	}{
		{"'[JAVA] test.da", 15, completionTarget{prefix: "test.da"}, true},
		{"  '[JAVA] test.data.ExampleEnum", 100, completionTarget{prefix: "test.data.ExampleEnum"}, true},
		{"'[JAVA] test.data.ExampleClass: field pub", 41, completionTarget{class: "test.data.ExampleClass", prefix: "pub"}, true},
		{"'[JAVA] test.data.ExampleClass: ", 32, completionTarget{class: "test.data.ExampleClass", prefix: ""}, true},
		{"'[JAVA] test.data.ExampleClass: field", 10, completionTarget{prefix: "te"}, true},
		{"' plain comment", 15, completionTarget{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := directiveTarget(tt.line, tt.col, "[JAVA] ")
			if got != tt.want || ok != tt.ok {
				t.Errorf("directiveTarget = %+v, %v, want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveClassDir(t *testing.T) {
	tests := []struct {
		name    string
		options any
		want    string
	}{
		{"default", nil, filepath.Join("/work", "classes")},
		{"relative", map[string]any{"classDir": "build/classes"}, filepath.Join("/work", "build", "classes")},
		{"absolute", map[string]any{"classDir": "/opt/classes"}, "/opt/classes"},
		{"wrong type", map[string]any{"classDir": 3}, filepath.Join("/work", "classes")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveClassDir("/work", tt.options); got != tt.want {
				t.Errorf("resolveClassDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMemberNames(t *testing.T) {
	record := &javap.ClassRecord{
		Fields: []javap.Field{{Name: "size"}},
		Methods: []javap.Method{
			{Name: "add"},
			{Name: "add"},
			{Name: "clear"},
		},
	}
	want := []string{"size", "add", "clear"}
	if got := MemberNames(record); !reflect.DeepEqual(got, want) {
		t.Errorf("MemberNames = %q, want %q", got, want)
	}
}

func TestURIToPath(t *testing.T) {
	got, err := uriToPath("file:///home/user/diagram.puml")
	if err != nil {
		t.Fatalf("uriToPath error: %v", err)
	}
	if want := filepath.Clean("/home/user/diagram.puml"); got != want {
		t.Errorf("uriToPath = %q, want %q", got, want)
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer("test", fakeIntrospector{
		filepath.Join("classes", "test", "data", "ExampleEnum.class"): readFixture(t, "ExampleEnum.txt"),
	}, "")
	s.docs.Set("file:///d.puml", "@startuml\n'[JAVA] test.data.ExampleEnum: values\n'[JAVA] test.data.ExampleEnum: va\n'[JAVA] test.data.Missing\n@enduml")
	return s
}

func position(line, char int) protocol.TextDocumentPositionParams {
	return protocol.TextDocumentPositionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///d.puml"},
		Position:     protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)},
	}
}

func TestHover(t *testing.T) {
	s := newTestServer(t)

	hover, err := s.textDocumentHover(nil, &protocol.HoverParams{TextDocumentPositionParams: position(1, 3)})
	if err != nil {
		t.Fatalf("hover error: %v", err)
	}
	if hover == nil {
		t.Fatal("expected a hover on a directive")
	}
	content, ok := hover.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("Contents = %T, want MarkupContent", hover.Contents)
	}
	if !strings.HasPrefix(content.Value, "```plantuml\nenum ExampleEnum {") || !strings.Contains(content.Value, "+ values(): ExampleEnum[]") {
		t.Errorf("hover =\n%s", content.Value)
	}

	for _, line := range []int{0, 3, 9} {
		hover, err := s.textDocumentHover(nil, &protocol.HoverParams{TextDocumentPositionParams: position(line, 0)})
		if err != nil || hover != nil {
			t.Errorf("hover on line %d = %v, %v, want nothing", line, hover, err)
		}
	}
}

func TestCompletionMembers(t *testing.T) {
	s := newTestServer(t)

	result, err := s.textDocumentCompletion(nil, &protocol.CompletionParams{TextDocumentPositionParams: position(2, 34)})
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	items, ok := result.([]protocol.CompletionItem)
	if !ok {
		t.Fatalf("result = %T, want []protocol.CompletionItem", result)
	}
	var labels []string
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	if want := []string{"values", "valueOf"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %q, want %q", labels, want)
	}
}
