package testutils

import (
	"errors"
	"io"
	"io/fs"
	"testing"
)

func TestMockPrompter(t *testing.T) {
	prompter := NewMockPrompter("first", "second")

	line, err := prompter.ReadLine("? ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if line != "first" {
		t.Errorf("Expected 'first', got '%s'", line)
	}

	line, err = prompter.ReadLine("? ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if line != "second" {
		t.Errorf("Expected 'second', got '%s'", line)
	}

	_, err = prompter.ReadLine("? ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF when no more lines available, got %v", err)
	}
	if len(prompter.Prompts) != 3 {
		t.Errorf("Expected 3 recorded prompts, got %d", len(prompter.Prompts))
	}
}

func TestMockFileReader_Missing(t *testing.T) {
	reader := NewMockFileReader()

	_, err := reader.ReadFile("missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
	if reader.Exists("missing.txt") {
		t.Errorf("Missing file reported as existing")
	}
}
