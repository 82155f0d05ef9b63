package diagram

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func newTestInserter(t *testing.T, fake *fakeIntrospector) *Inserter {
	return &Inserter{
		ClassDir:    "classes",
		Marker:      DefaultMarker,
		Generator:   &Generator{Introspector: fake},
		Concurrency: 4,
	}
}

func classFile(fqcn string) string {
	return ClassPath("classes", fqcn)
}

func TestInsertSingleDirective(t *testing.T) {
	fake := newFakeIntrospector(t, map[string]string{
		classFile("test.data.ExampleEnum"): "ExampleEnum.txt",
	})
	in := "@startuml\n  '[JAVA] test.data.ExampleEnum  \n@enduml\n"

	var out bytes.Buffer
	if err := newTestInserter(t, fake).Insert(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	want := "@startuml\n  '[JAVA] test.data.ExampleEnum  \n" + exampleEnumBlock + "\n\n@enduml\n"
	if out.String() != want {
		t.Errorf("Insert =\n%s\nwant\n%s", out.String(), want)
	}
}

const exampleEnumBlock = `enum ExampleEnum {
  test.data
  --
  + LOW: ExampleEnum
  + MEDIUM: ExampleEnum
  + HIGH: ExampleEnum
  --
  + values(): ExampleEnum[]
  + valueOf(String): ExampleEnum
  - ExampleEnum(): 
}`

func TestInsertMissingClass(t *testing.T) {
	fake := newFakeIntrospector(t, map[string]string{
		classFile("test.data.ExampleEnum"): "ExampleEnum.txt",
	})
	in := "'[JAVA] test.data.Missing\n'[JAVA] test.data.ExampleEnum: values\nnote\n"

	var out bytes.Buffer
	if err := newTestInserter(t, fake).Insert(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if lines[0] != "'[JAVA] test.data.Missing" || lines[1] != "'[JAVA] test.data.ExampleEnum: values" {
		t.Errorf("missing class should add nothing, got %q", lines[:2])
	}
	if lines[2] != "enum ExampleEnum {" {
		t.Errorf("second directive not expanded: %q", lines[2])
	}
	if !strings.Contains(out.String(), "  + values(): ExampleEnum[]\n}\n\nnote\n") {
		t.Errorf("Insert =\n%s", out.String())
	}
}

func TestInsertFailedDirectiveAddsNothing(t *testing.T) {
	fake := newFakeIntrospector(t, nil)
	in := "@startuml\n'[JAVA] a.Missing\nA --> B\n@enduml\n"

	var out bytes.Buffer
	if err := newTestInserter(t, fake).Insert(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if out.String() != in {
		t.Errorf("Insert =\n%q\nwant\n%q", out.String(), in)
	}
}

func TestInsertKeepsIndentation(t *testing.T) {
	fake := newFakeIntrospector(t, nil)
	in := "@startuml\n  class Foo {\n    + bar()\n  }\n\t' note\n@enduml\n"

	var out bytes.Buffer
	if err := newTestInserter(t, fake).Insert(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if out.String() != in {
		t.Errorf("Insert =\n%q\nwant\n%q", out.String(), in)
	}
	if len(fake.calls) != 0 {
		t.Errorf("described %d classes, want none", len(fake.calls))
	}
}

func TestInsertOrderAndDedupe(t *testing.T) {
	fake := newFakeIntrospector(t, map[string]string{
		classFile("test.data.ExampleEnum"):      "ExampleEnum.txt",
		classFile("test.data.ExampleInterface"): "ExampleInterface.txt",
		classFile("test.data.ExampleAbstract"):  "ExampleAbstract.txt",
	})
	in := strings.Join([]string{
		"'[JAVA] test.data.ExampleInterface",
		"'[JAVA] test.data.ExampleEnum",
		"'[JAVA] test.data.ExampleAbstract",
		"'[JAVA] test.data.ExampleEnum",
	}, "\n")

	var out bytes.Buffer
	if err := newTestInserter(t, fake).Insert(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	got := out.String()
	order := []string{"interface ExampleInterface {", "enum ExampleEnum {", "abstract ExampleAbstract {", "enum ExampleEnum {"}
	pos := 0
	for _, header := range order {
		i := strings.Index(got[pos:], header)
		if i < 0 {
			t.Fatalf("%q missing or out of order in\n%s", header, got)
		}
		pos += i + len(header)
	}
	if n := fake.calls[classFile("test.data.ExampleEnum")]; n < 1 || n > 2 {
		t.Errorf("ExampleEnum described %d times", n)
	}
}

func TestInsertCustomMarker(t *testing.T) {
	fake := newFakeIntrospector(t, map[string]string{
		filepath.Join("out", "test", "data", "ExampleEnum.class"): "ExampleEnum.txt",
	})
	ins := &Inserter{
		ClassDir:  "out",
		Marker:    "@uml ",
		Generator: &Generator{Introspector: fake},
	}
	in := "'[JAVA] test.data.ExampleEnum\n'@uml test.data.ExampleEnum:\n"

	var out bytes.Buffer
	if err := ins.Insert(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	want := "'[JAVA] test.data.ExampleEnum\n'@uml test.data.ExampleEnum:\nenum ExampleEnum {\n  test.data\n  --\n}\n\n"
	if out.String() != want {
		t.Errorf("Insert =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestInsertCanceled(t *testing.T) {
	fake := newFakeIntrospector(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestInserter(t, fake).Insert(ctx, strings.NewReader("'[JAVA] a.B\n"), &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error for a canceled context")
	}
}
