package filters

import "testing"

func TestHTMLText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "<b>bold</b>", "bold"},
		{"nested", "<div><p>one</p><p>two</p></div>", "onetwo"},
		{"tail text", "<span>a</span>b", "ab"},
		{"plain text", "no markup", "no markup"},
		{"script dropped", "<p>x</p><script>alert(1)</script>", "x"},
	}

	for _, tt := range tests {
		if got := HTMLText(tt.in); got != tt.want {
			t.Errorf("%s: HTMLText(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
