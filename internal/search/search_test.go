package search

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rana", "rana"},
		{"  José   María ", "jose maria"},
		{"STRASSE", "strasse"},
		{"Zoë", "zoe"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query", "", []string{"anything"}, true},
		{"single field", "khou", []string{"Rana", "Khoury"}, true},
		{"words across fields", "rana khoury", []string{"Rana", "Khoury"}, true},
		{"accent insensitive", "jose", []string{"José"}, true},
		{"missing word", "rana smith", []string{"Rana", "Khoury"}, false},
		{"id number", "1234", []string{"Rana", "Khoury", "981234"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.query, tt.fields...); got != tt.want {
				t.Errorf("Match(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}
