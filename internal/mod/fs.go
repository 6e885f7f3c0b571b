package mod

import "os"

// FileWriter abstracts the destination-directory operations a download needs.
type FileWriter interface {
	// Write creates or overwrites a file at the given path with the given data.
	Write(path string, data []byte) error

	// MkdirAll creates a directory path and all necessary parents.
	MkdirAll(path string) error

	// Remove deletes a file.
	Remove(path string) error

	// Exists reports whether the given path exists.
	Exists(path string) bool
}

// OSFileWriter implements FileWriter using the real filesystem.
type OSFileWriter struct{}

var _ FileWriter = (*OSFileWriter)(nil)

func (w *OSFileWriter) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func (w *OSFileWriter) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (w *OSFileWriter) Remove(path string) error {
	return os.Remove(path)
}

func (w *OSFileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
