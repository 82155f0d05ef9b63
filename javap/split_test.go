package javap

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name string
		args string
		want []string
	}{
		{
			name: "single",
			args: "arg1",
			want: []string{"arg1"},
		},
		{
			name: "two",
			args: "arg1, arg2",
			want: []string{"arg1", "arg2"},
		},
		{
			name: "generic arguments",
			args: "arg1<A,B>, arg2<C,D>",
			want: []string{"arg1<A,B>", "arg2<C,D>"},
		},
		{
			name: "nested generic arguments",
			args: "arg1<A<B, C,D>,E,F>, arg2<C,D>",
			want: []string{"arg1<A<B, C,D>,E,F>", "arg2<C,D>"},
		},
		{
			name: "empty",
			args: "",
			want: []string{""},
		},
		{
			name: "surrounding whitespace",
			args: "  int ,java.lang.String  ",
			want: []string{"int", "java.lang.String"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitArgs(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestSplitArgsRejoin(t *testing.T) {
	inputs := []string{
		"java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>, int, T[]",
		"A<B<C<D, E>>, F>, G",
	}
	for _, in := range inputs {
		joined := strings.Join(SplitArgs(in), ", ")
		if joined != in {
			t.Errorf("rejoined %q = %q", in, joined)
		}
	}
}

func TestCutTopLevel(t *testing.T) {
	before, after, found := cutTopLevel("a.B<T extends C> extends D<E>", " extends ")
	if !found {
		t.Fatal("expected separator to be found")
	}
	if before != "a.B<T extends C>" {
		t.Errorf("before = %q, want %q", before, "a.B<T extends C>")
	}
	if after != "D<E>" {
		t.Errorf("after = %q, want %q", after, "D<E>")
	}

	if _, _, found := cutTopLevel("a.B<T extends C>", " extends "); found {
		t.Error("separator inside brackets must not match")
	}
}
