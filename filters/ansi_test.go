package filters

import "testing"

func TestStripAnsi(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "no escapes here", "no escapes here"},
		{"empty", "", ""},
		{"color", "\x1b[31mred\x1b[0m", "red"},
		{"bold color", "\x1b[1;31merror\x1b[0m done", "error done"},
		{"cursor", "\x1b[2Kline", "line"},
		{"mid line", "a\x1b[32mb\x1b[39mc", "abc"},
		{"traceback", "\x1b[0;31mZeroDivisionError\x1b[0m: division by zero",
			"ZeroDivisionError: division by zero"},
	}

	for _, tt := range tests {
		if got := StripAnsi(tt.in); got != tt.want {
			t.Errorf("%s: StripAnsi(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestStripAnsi_Idempotent(t *testing.T) {
	inputs := []string{
		"\x1b[31mred\x1b[0m",
		"plain",
		"mixed \x1b[1mtext\x1b[0m here",
	}
	for _, in := range inputs {
		once := StripAnsi(in)
		if twice := StripAnsi(once); twice != once {
			t.Errorf("StripAnsi not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}
