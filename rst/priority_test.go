package rst

import (
	"testing"

	"github.com/tsawler/stilus/notebook"
)

func TestResolveMime(t *testing.T) {
	priority := DefaultPriority()

	tests := []struct {
		name   string
		bundle notebook.MimeBundle
		want   notebook.MimeType
		wantOK bool
	}{
		{
			"markdown beats plain text",
			notebook.MimeBundle{notebook.MIMEMarkdown: "**x**", notebook.MIMEText: "x"},
			notebook.MIMEMarkdown, true,
		},
		{
			"png beats plain text",
			notebook.MimeBundle{notebook.MIMEText: "<Figure>", notebook.MIMEPNG: "...=="},
			notebook.MIMEPNG, true,
		},
		{
			"svg beats png",
			notebook.MimeBundle{notebook.MIMEPNG: "...", notebook.MIMESVG: "<svg/>"},
			notebook.MIMESVG, true,
		},
		{
			"plain text beats html",
			notebook.MimeBundle{notebook.MIMEHTML: "<b>x</b>", notebook.MIMEText: "x"},
			notebook.MIMEText, true,
		},
		{
			"only unsupported kind",
			notebook.MimeBundle{"application/vnd.custom+json": "{}"},
			"", false,
		},
		{
			"empty bundle",
			notebook.MimeBundle{},
			"", false,
		},
	}

	for _, tt := range tests {
		got, ok := ResolveMime(tt.bundle, priority)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s: ResolveMime = (%q, %v), want (%q, %v)",
				tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveMime_Deterministic(t *testing.T) {
	bundle := notebook.MimeBundle{
		notebook.MIMEText:     "x",
		notebook.MIMEMarkdown: "**x**",
		notebook.MIMEHTML:     "<b>x</b>",
		notebook.MIMEPNG:      "...",
	}
	// Map iteration order must not leak into selection.
	for i := 0; i < 100; i++ {
		got, ok := ResolveMime(bundle, DefaultPriority())
		if !ok || got != notebook.MIMEMarkdown {
			t.Fatalf("iteration %d: ResolveMime = (%q, %v), want (%q, true)",
				i, got, ok, notebook.MIMEMarkdown)
		}
	}
}

func TestResolveMime_CustomPriority(t *testing.T) {
	bundle := notebook.MimeBundle{
		notebook.MIMEText: "x",
		notebook.MIMEHTML: "<b>x</b>",
	}
	got, ok := ResolveMime(bundle, []notebook.MimeType{notebook.MIMEHTML, notebook.MIMEText})
	if !ok || got != notebook.MIMEHTML {
		t.Errorf("ResolveMime with custom priority = (%q, %v), want (%q, true)",
			got, ok, notebook.MIMEHTML)
	}
}
