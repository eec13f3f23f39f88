package tui

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestTerminalPrompter_Pipe(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := NewTerminalPrompter(strings.NewReader("input.txt\r\n  spaced  \nlast"), out)

	for _, want := range []string{"input.txt", "  spaced  ", "last"} {
		got, err := prompter.ReadLine("name: ")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}

	_, err := prompter.ReadLine("name: ")
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF at end of input, got %v", err)
	}

	if got := strings.Count(out.String(), "name: "); got != 4 {
		t.Errorf("Expected the prompt to be written 4 times, got %d", got)
	}
}

func TestTerminalPrompter_FileThatIsNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer r.Close()

	if _, err := w.WriteString("piped.txt\n"); err != nil {
		t.Fatalf("Failed to write to pipe: %v", err)
	}
	w.Close()

	out := &bytes.Buffer{}
	got, err := NewTerminalPrompter(r, out).ReadLine("name: ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "piped.txt" {
		t.Errorf("Expected 'piped.txt', got %q", got)
	}
	if out.String() != "name: " {
		t.Errorf("Expected the plain prompt, got %q", out.String())
	}
}

func TestReadTerminalLine_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	prompter := NewTerminalPrompter(r, &bytes.Buffer{})
	if _, err := prompter.readTerminalLine(int(r.Fd()), "name: "); err == nil {
		t.Error("Expected raw mode to fail on a pipe")
	}
}

type fakeTerminal struct {
	in  io.Reader
	out bytes.Buffer
}

func (f *fakeTerminal) Read(p []byte) (int, error) {
	return f.in.Read(p)
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	return f.out.Write(p)
}

func TestReadEditedLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "Enter", input: "input.txt\r", want: "input.txt"},
		{name: "Backspace", input: "inpx\x7fut.txt\r", want: "input.txt"},
		{name: "Ctrl-D On Empty Line", input: "\x04", wantErr: io.EOF},
		{name: "Input Closed", input: "", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := &fakeTerminal{in: strings.NewReader(tt.input)}

			got, err := readEditedLine(rw, "name: ")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if !strings.Contains(rw.out.String(), "name: ") {
				t.Errorf("Expected the prompt to be drawn, got %q", rw.out.String())
			}
		})
	}
}
