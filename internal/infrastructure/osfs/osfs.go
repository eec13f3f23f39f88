package osfs

import (
	"os"
)

// FileSystem implements FileReader and FileWriter on top of the os package.
// Every name is an ordinary path; "-" is a file called "-".
type FileSystem struct{}

func New() *FileSystem {
	return &FileSystem{}
}

func (f *FileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// Exists reports whether filename resolves to any filesystem entry,
// directories included.
func (f *FileSystem) Exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// WriteFile creates or truncates filename. A failure part way through may
// leave a truncated file behind.
func (f *FileSystem) WriteFile(filename string, data []byte, perm int) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}
