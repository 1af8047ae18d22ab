package ui

import (
	"reflect"
	"testing"

	"hub/internal/config"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name     string
		custom   string
		defaults []string
		want     []string
	}{
		{"empty uses defaults", "", []string{"q", "ctrl+c"}, []string{"q", "ctrl+c"}},
		{"single custom", "x", []string{"q"}, []string{"x"}},
		{"comma separated", "x, y,z", []string{"q"}, []string{"x", "y", "z"}},
		{"blank entries dropped", "x,,y", []string{"q"}, []string{"x", "y"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseKeys(tc.custom, tc.defaults...)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseKeys(%q) = %v, want %v", tc.custom, got, tc.want)
			}
		})
	}
}

func TestNewGlobalKeyMap_CustomBindings(t *testing.T) {
	keys := NewGlobalKeyMap(&config.KeysConfig{Quit: "ctrl+q"})

	if got := keys.Quit.Keys(); !reflect.DeepEqual(got, []string{"ctrl+q"}) {
		t.Errorf("Quit keys = %v, want the configured override", got)
	}
	// Unset bindings keep their defaults.
	if got := keys.Help.Keys(); !reflect.DeepEqual(got, []string{"?"}) {
		t.Errorf("Help keys = %v, want default", got)
	}
}

func TestTaskKeyMapHelp(t *testing.T) {
	keys := DefaultTaskKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp returned no bindings")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp returned no binding groups")
	}
}
