// Package files: I/O wrappers over os, bufio and filepath.

package files

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeMode is the permission set for files created by WriteText and Copy
// fallbacks.
const writeMode = 0o644

// maxLineSize caps the scanner token size in CountLines (64 MiB), so
// pathological single-line files do not fail the count.
const maxLineSize = 64 << 20

// ReadText reads the entire file at path as a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("files: read %s: %w", path, err)
	}

	return string(data), nil
}

// WriteText writes text to path, creating or truncating the file with
// 0644 permissions.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), writeMode); err != nil {
		return fmt.Errorf("files: write %s: %w", path, err)
	}

	return nil
}

// CountLines returns the number of lines in the text file at path.
// A trailing line without a final newline still counts; an empty file
// has zero lines.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("files: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	count := 0
	for sc.Scan() {
		count++
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("files: count %s: %w", path, err)
	}

	return count, nil
}

// List enumerates the regular files directly inside dir, optionally
// filtered by a filepath.Match glob pattern (empty pattern means all).
// Results are full paths in the lexical order of the directory listing;
// subdirectories are skipped, not descended into.
func List(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("files: list %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if pattern != "" {
			ok, err := filepath.Match(pattern, e.Name())
			if err != nil {
				return nil, fmt.Errorf("files: pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}

	return out, nil
}

// Copy copies the contents of src to dst, carrying over src's permission
// bits. dst is created or truncated.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("files: copy open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("files: copy stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("files: copy create %s: %w", dst, err)
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("files: copy %s to %s: %w", src, dst, err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("files: copy close %s: %w", dst, err)
	}

	return nil
}
