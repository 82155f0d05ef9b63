package javap

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name string
		sig  string
		want Method
	}{
		{
			name: "static main",
			sig:  "public static void main(String[])",
			want: Method{
				Name:       "main",
				ReturnType: []string{"void"},
				Modifiers:  []string{"public", "static"},
				Parameters: []string{"String[]"},
			},
		},
		{
			name: "constructor",
			sig:  "public java.lang.String()",
			want: Method{
				Name:       "java.lang.String",
				ReturnType: []string{},
				Modifiers:  []string{"public"},
				Parameters: []string{""},
			},
		},
		{
			name: "package private",
			sig:  "void method()",
			want: Method{
				Name:       "method",
				ReturnType: []string{"void"},
				Modifiers:  []string{},
				Parameters: []string{""},
			},
		},
		{
			name: "generic method",
			sig:  "public <T> T lookup(java.lang.Class<T>, java.util.Map<K, V>)",
			want: Method{
				Name:       "lookup",
				ReturnType: []string{"<T>", "T"},
				Modifiers:  []string{"public"},
				Parameters: []string{"java.lang.Class<T>", "java.util.Map<K, V>"},
			},
		},
		{
			name: "throws clause",
			sig:  "public void close() throws java.io.IOException, a.B",
			want: Method{
				Name:       "close",
				ReturnType: []string{"void"},
				Modifiers:  []string{"public"},
				Parameters: []string{""},
				Throws:     []string{"java.io.IOException", "a.B"},
			},
		},
		{
			name: "default interface method",
			sig:  "public default java.lang.Integer defaultMethod()",
			want: Method{
				Name:       "defaultMethod",
				ReturnType: []string{"java.lang.Integer"},
				Modifiers:  []string{"public", "default"},
				Parameters: []string{""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.sig)
			if err != nil {
				t.Fatalf("ParseMethod(%q) error: %v", tt.sig, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMethod(%q) = %#v, want %#v", tt.sig, got, tt.want)
			}
		})
	}
}

func TestParseMethodMalformed(t *testing.T) {
	for _, sig := range []string{
		"public void broken(int",
		"public void broken(int) extra",
	} {
		_, err := ParseMethod(sig)
		if !errors.Is(err, ErrMalformedSignature) {
			t.Errorf("ParseMethod(%q) error = %v, want ErrMalformedSignature", sig, err)
		}
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		decl string
		want Field
	}{
		{
			decl: "boolean field",
			want: Field{Name: "field", Type: []string{"boolean"}, Modifiers: []string{}},
		},
		{
			decl: "public static final test.data.ExampleEnum LOW",
			want: Field{
				Name:      "LOW",
				Type:      []string{"test.data.ExampleEnum"},
				Modifiers: []string{"public", "static", "final"},
			},
		},
		{
			decl: "private final java.util.Map<K, V> entries",
			want: Field{
				Name:      "entries",
				Type:      []string{"java.util.Map<K,", "V>"},
				Modifiers: []string{"private", "final"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			got := ParseField(tt.decl)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseField(%q) = %#v, want %#v", tt.decl, got, tt.want)
			}
		})
	}
}

func TestParseMemberDispatch(t *testing.T) {
	m, err := ParseMember("public int size()")
	if err != nil {
		t.Fatalf("ParseMember error: %v", err)
	}
	if _, ok := m.(Method); !ok {
		t.Errorf("ParseMember returned %T, want Method", m)
	}

	f, err := ParseMember("protected int size")
	if err != nil {
		t.Fatalf("ParseMember error: %v", err)
	}
	if _, ok := f.(Field); !ok {
		t.Errorf("ParseMember returned %T, want Field", f)
	}
}

func TestVisibilityOf(t *testing.T) {
	tests := []struct {
		modifiers []string
		want      Visibility
	}{
		{[]string{"public", "static"}, VisibilityPublic},
		{[]string{"protected"}, VisibilityProtected},
		{[]string{"static", "private"}, VisibilityPrivate},
		{[]string{"public", "private"}, VisibilityPrivate},
		{[]string{"protected", "public"}, VisibilityProtected},
		{nil, VisibilityPackage},
	}
	for _, tt := range tests {
		if got := VisibilityOf(tt.modifiers); got != tt.want {
			t.Errorf("VisibilityOf(%q) = %q, want %q", tt.modifiers, got, tt.want)
		}
	}
}
