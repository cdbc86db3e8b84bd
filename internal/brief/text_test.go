package brief

import (
	"strings"
	"testing"
)

func TestTextExtractor_ParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	e := &TextExtractor{}
	text, err := e.Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	e := &TextExtractor{}
	text, err := e.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty output, got %q", text)
	}
}

func TestTextExtractor_CollapsesBlankRuns(t *testing.T) {
	input := "one\n\n\n\ntwo"
	e := &TextExtractor{}
	text, err := e.Extract(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "one\n\ntwo" {
		t.Errorf("expected blank runs collapsed, got %q", text)
	}
}
