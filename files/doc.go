// Package files offers convenience wrappers for everyday file work:
// reading and writing whole text files, counting lines, enumerating a
// directory with an optional glob pattern, and copying a file with its
// permissions.
//
// Failures carry the underlying *fs.PathError, so callers can test for
// conditions like a missing file via errors.Is(err, fs.ErrNotExist).
package files
