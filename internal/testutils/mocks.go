package testutils

import (
	"io"
	"io/fs"
)

// MockPrompter answers prompts from Lines in order and returns io.EOF once
// they run out. Every prompt shown is recorded in Prompts.
type MockPrompter struct {
	Lines   []string
	Prompts []string
	Err     error
}

func NewMockPrompter(lines ...string) *MockPrompter {
	return &MockPrompter{
		Lines: lines,
	}
}

func (p *MockPrompter) ReadLine(prompt string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)
	if p.Err != nil {
		return "", p.Err
	}
	if len(p.Lines) == 0 {
		return "", io.EOF
	}
	line := p.Lines[0]
	p.Lines = p.Lines[1:]
	return line, nil
}

type MockFileWriter struct {
	Files map[string][]byte
	Perms map[string]int
	Err   error
}

func NewMockFileWriter() *MockFileWriter {
	return &MockFileWriter{
		Files: make(map[string][]byte),
		Perms: make(map[string]int),
	}
}

func (w *MockFileWriter) WriteFile(filename string, data []byte, perm int) error {
	if w.Err != nil {
		return w.Err
	}
	w.Files[filename] = data
	w.Perms[filename] = perm
	return nil
}

func (w *MockFileWriter) GetWrittenFile(filename string) ([]byte, bool) {
	data, exists := w.Files[filename]
	return data, exists
}

// MockFileReader serves Files from memory. Errs takes precedence and lets
// a test fail a read with any error; unknown names fail with fs.ErrNotExist.
type MockFileReader struct {
	Files map[string][]byte
	Errs  map[string]error
}

func NewMockFileReader() *MockFileReader {
	return &MockFileReader{
		Files: make(map[string][]byte),
		Errs:  make(map[string]error),
	}
}

func (r *MockFileReader) ReadFile(filename string) ([]byte, error) {
	if err, ok := r.Errs[filename]; ok {
		return nil, err
	}
	data, exists := r.Files[filename]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filename, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (r *MockFileReader) Exists(filename string) bool {
	_, inFiles := r.Files[filename]
	_, inErrs := r.Errs[filename]
	return inFiles || inErrs
}
