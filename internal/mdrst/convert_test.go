package mdrst

import (
	"strings"
	"testing"
)

func TestConvert_Headings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# Title", "Title\n=====\n"},
		{"## Section", "Section\n-------\n"},
		{"### Sub", "Sub\n~~~\n"},
		{"#### Deep", "Deep\n^^^^\n"},
	}

	for _, tt := range tests {
		if got := Convert(tt.in); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvert_HeadingUnderlineCoversRunes(t *testing.T) {
	got := Convert("# héllo")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Convert() = %q, want two lines", got)
	}
	if len([]rune(lines[1])) != len([]rune(lines[0])) {
		t.Errorf("underline %q does not cover title %q", lines[1], lines[0])
	}
}

func TestConvert_Paragraphs(t *testing.T) {
	got := Convert("first paragraph\n\nsecond paragraph")
	want := "first paragraph\n\nsecond paragraph\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_Inlines(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"some *emphasis* here", "some *emphasis* here\n"},
		{"some **strong** words", "some **strong** words\n"},
		{"call `f(x)` twice", "call ``f(x)`` twice\n"},
		{"see [docs](https://example.com)", "see `docs <https://example.com>`__\n"},
		{"plain <https://example.com> link", "plain https://example.com link\n"},
	}

	for _, tt := range tests {
		if got := Convert(tt.in); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvert_EscapesMarkup(t *testing.T) {
	got := Convert(`a \* literal star`)
	if !strings.Contains(got, `\*`) {
		t.Errorf("Convert() = %q, want escaped star", got)
	}
}

func TestConvert_FencedCode(t *testing.T) {
	got := Convert("```python\nprint('hi')\n```")
	want := ".. code:: python\n\n    print('hi')\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_FencedCodeNoLanguage(t *testing.T) {
	got := Convert("```\nx = 1\n```")
	want := "::\n\n    x = 1\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_IndentedCode(t *testing.T) {
	got := Convert("    x = 1\n    y = 2")
	want := "::\n\n    x = 1\n    y = 2\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_ImageParagraph(t *testing.T) {
	got := Convert("![a chart](chart.png)")
	want := ".. image:: chart.png\n    :alt: a chart\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_BulletList(t *testing.T) {
	got := Convert("- one\n- two\n- three")
	want := "- one\n- two\n- three\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_OrderedList(t *testing.T) {
	got := Convert("1. first\n2. second")
	want := "1. first\n2. second\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_Blockquote(t *testing.T) {
	got := Convert("> quoted text")
	want := "    quoted text\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_ThematicBreak(t *testing.T) {
	got := Convert("above\n\n---\n\nbelow")
	want := "above\n\n----\n\nbelow\n"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestConvert_HTMLBlock(t *testing.T) {
	got := Convert("<table>\n<tr><td>x</td></tr>\n</table>")
	if !strings.HasPrefix(got, ".. raw:: html\n\n    <table>") {
		t.Errorf("Convert() = %q, want raw html directive", got)
	}
}

func TestConvert_Empty(t *testing.T) {
	if got := Convert(""); got != "" {
		t.Errorf("Convert(\"\") = %q, want \"\"", got)
	}
	if got := Convert("   \n\n  "); got != "" {
		t.Errorf("Convert(blank) = %q, want \"\"", got)
	}
}
