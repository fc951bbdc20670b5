package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"analysis.ipynb", Notebook},
		{"ANALYSIS.IPYNB", Notebook},
		{"dir/nested/report.ipynb", Notebook},
		{"notes.txt", Unknown},
		{"notebook", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"notebook", []byte(`{"nbformat": 4, "cells": []}`), Notebook},
		{"notebook with BOM", []byte("\xef\xbb\xbf" + `{"nbformat": 3}`), Notebook},
		{"leading whitespace", []byte("\n  \t" + `{"nbformat": 4}`), Notebook},
		{"plain JSON object", []byte(`{"hello": "world"}`), Unknown},
		{"JSON array", []byte(`[1, 2]`), Unknown},
		{"not JSON", []byte("hello world"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		if got := DetectFromMagic(tt.data); got != tt.want {
			t.Errorf("%s: DetectFromMagic() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDetectVersion(t *testing.T) {
	major, minor, ok := DetectVersion([]byte(`{"nbformat": 4, "nbformat_minor": 5}`))
	if !ok || major != 4 || minor != 5 {
		t.Errorf("DetectVersion() = (%d, %d, %v), want (4, 5, true)", major, minor, ok)
	}

	if _, _, ok := DetectVersion([]byte(`{"cells": []}`)); ok {
		t.Error("DetectVersion() ok = true for non-notebook JSON, want false")
	}
	if _, _, ok := DetectVersion([]byte("garbage")); ok {
		t.Error("DetectVersion() ok = true for non-JSON, want false")
	}
}

func TestFormatStrings(t *testing.T) {
	if got := Notebook.String(); got != "Notebook" {
		t.Errorf("Notebook.String() = %q", got)
	}
	if got := Unknown.String(); got != "Unknown" {
		t.Errorf("Unknown.String() = %q", got)
	}
	if got := Notebook.Extension(); got != ".ipynb" {
		t.Errorf("Notebook.Extension() = %q", got)
	}
}
