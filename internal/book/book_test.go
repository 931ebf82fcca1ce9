package book

import "testing"

func TestSearchPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"great gatsby", "%great%gatsby%"},
		{"  great   gatsby  ", "%great%gatsby%"},
		{"single", "%single%"},
		{"", "%%"},
		{"a b c", "%a%b%c%"},
	}

	for _, tt := range tests {
		if got := searchPattern(tt.in); got != tt.want {
			t.Errorf("searchPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
