// Package output handles reading the source table and writing artifacts.
// Artifacts are named <basename><ext> inside the output directory
// (e.g. dat/chars.json) and are replaced atomically.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/gaurav-prasanna/charsgen/core"
)

// Writer reads and writes pipeline files on an afero filesystem.
type Writer struct {
	fs        afero.Fs
	OutputDir string
}

// New creates a Writer targeting the given output directory on fs.
// If outputDir is empty, it defaults to the current working directory.
// The directory is not created until the first Write.
func New(fs afero.Fs, outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	return &Writer{fs: fs, OutputDir: outputDir}, nil
}

// ReadSource returns the content of the source table.
func (w *Writer) ReadSource(path string) (string, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return "", &core.IOError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// Path returns the destination of the artifact with the given extension.
func (w *Writer) Path(basename, ext string) string {
	return filepath.Join(w.OutputDir, basename+ext)
}

// Write stores data as <basename><ext>. The data goes to a temporary file
// in the same directory first and is renamed into place, so the final path
// only ever holds a complete artifact.
func (w *Writer) Write(basename, ext string, data []byte) (string, error) {
	path := w.Path(basename, ext)

	if err := w.ensureDir(); err != nil {
		return "", err
	}

	tmp, err := afero.TempFile(w.fs, w.OutputDir, "."+basename+ext+".*")
	if err != nil {
		return "", &core.IOError{Op: "create temp file for", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		w.fs.Remove(tmpName)
		return "", &core.IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		w.fs.Remove(tmpName)
		return "", &core.IOError{Op: "close", Path: path, Err: err}
	}
	if err := w.fs.Chmod(tmpName, 0644); err != nil {
		w.fs.Remove(tmpName)
		return "", &core.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		w.fs.Remove(tmpName)
		return "", &core.IOError{Op: "rename into", Path: path, Err: err}
	}
	return path, nil
}

// ensureDir creates the output directory if it does not exist yet.
func (w *Writer) ensureDir() error {
	ok, err := afero.DirExists(w.fs, w.OutputDir)
	if err != nil {
		return &core.IOError{Op: "stat", Path: w.OutputDir, Err: err}
	}
	if ok {
		return nil
	}
	if err := w.fs.MkdirAll(w.OutputDir, 0755); err != nil {
		return &core.IOError{Op: "create directory", Path: w.OutputDir, Err: err}
	}
	return nil
}
