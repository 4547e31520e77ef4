package middleware

import "testing"

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Basic dXNlcjpwYXNz", ""},
		{"bearer abc", ""}, // scheme is case-sensitive
		{"Bearer", ""},
		{"Bearer abc123", "abc123"},
		{"Bearer   abc123  ", "abc123"},
	}
	for _, tt := range tests {
		if got := BearerToken(tt.header); got != tt.want {
			t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
