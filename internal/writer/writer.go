package writer

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Writer writes fetched icon files to the filesystem.
type Writer interface {
	// WriteFile writes UTF-8 text content to a file, creating parent
	// directories as needed. Existing files are replaced.
	WriteFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	logger *zerolog.Logger
}

// NewFileWriter creates a new FileWriter.
func NewFileWriter(logger *zerolog.Logger) Writer {
	return &FileWriter{logger: logger}
}

// WriteFile writes content to a file with 0644 permissions.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file and rename, so a crashed run
// never leaves a half-written icon behind.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	w.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("writing file")

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return err
		}
	}

	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return newWriteError("failed to create temporary file", path, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return newWriteError("failed to write file content", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return newWriteError("failed to close file", path, closeErr)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return newWriteError("failed to rename temporary file", path, err)
	}

	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newWriteError("failed to create directory", path, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
