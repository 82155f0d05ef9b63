package classfile

import (
	"reflect"
	"testing"
)

func TestAccessFlagsKeywords(t *testing.T) {
	tests := []struct {
		name  string
		flags AccessFlags
		table []Modifier
		want  []string
	}{
		{"visibility", AccProtected | AccStatic, Visibility, []string{"protected"}},
		{"package private", AccStatic, Visibility, nil},
		{"field", AccPrivate | AccVolatile | AccTransient, FieldModifiers, []string{"transient", "volatile"}},
		{"bridge is not a method keyword", AccPublic | AccBridge | AccFinal, MethodModifiers, []string{"final"}},
		{"method order", AccNative | AccSynchronized | AccFinal, MethodModifiers, []string{"final", "synchronized", "native"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.Keywords(tt.table); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords() = %q, want %q", got, tt.want)
			}
		})
	}
}
