package sanitize_test

import (
	"testing"

	"github.com/collectam/collectam-web/internal/app/system/sanitize"
)

func TestField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Carl", "Carl"},
		{"script stripped", `<script>alert(1)</script>Carl`, "Carl"},
		{"tags stripped keeping text", "<b>Carl</b>", "Carl"},
		{"whitespace trimmed", "  Carl  ", "Carl"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.Field(tt.in); got != tt.want {
				t.Errorf("Field(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
