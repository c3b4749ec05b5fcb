// Package scan enumerates candidate files under a project root.
//
// The scanner yields descriptors lazily so very large trees never need a
// fully materialized file list. Enumeration order is lexicographic by path,
// which keeps downstream reports deterministic.
package scan

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ErrRootNotFound reports a missing or non-directory scan root. This is the
// only fatal scan failure; anything per-file is skipped instead.
var ErrRootNotFound = errors.New("scan root is not a directory")

// FileInfo describes a single scanned file. Values are immutable once
// produced by the scanner.
type FileInfo struct {
	Path string // root-relative, forward slashes
	Ext  string // lowercased extension, including the dot
	Size int64
}

// Base returns the file's name without directories.
func (f FileInfo) Base() string {
	return pathBase(f.Path)
}

// Stem returns the file name with its last extension removed. The stem is
// the module identity key used by naming and coverage checks.
func (f FileInfo) Stem() string {
	base := f.Base()
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Scanner walks a root directory and yields files accepted by Match.
type Scanner struct {
	Root string
	// Match filters by file name. A nil Match uses DefaultMatch.
	Match func(name string) bool
}

// New creates a scanner over root with the default match set.
func New(root string) *Scanner {
	return &Scanner{Root: root, Match: DefaultMatch}
}

// DefaultMatch accepts C++ sources, headers, and CMakeLists.txt files.
func DefaultMatch(name string) bool {
	if name == "CMakeLists.txt" {
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cpp", ".cc", ".h", ".hpp":
		return true
	}
	return false
}

// Files returns a restartable, lazy sequence of descriptors ordered
// lexicographically by path. A missing or unreadable root yields a single
// ErrRootNotFound and stops. Unreadable directory entries are skipped
// without aborting the walk.
func (s *Scanner) Files() iter.Seq2[FileInfo, error] {
	return func(yield func(FileInfo, error) bool) {
		info, err := os.Stat(s.Root)
		if err != nil || !info.IsDir() {
			yield(FileInfo{}, fmt.Errorf("%w: %s", ErrRootNotFound, s.Root))
			return
		}

		match := s.Match
		if match == nil {
			match = DefaultMatch
		}

		_ = filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip entries we cannot read; the rest of the tree is
				// still scanned.
				return nil
			}
			if d.IsDir() {
				if path != s.Root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !match(d.Name()) {
				return nil
			}

			fi, err := d.Info()
			if err != nil {
				return nil
			}
			rel, err := filepath.Rel(s.Root, path)
			if err != nil {
				return nil
			}

			desc := FileInfo{
				Path: filepath.ToSlash(rel),
				Ext:  strings.ToLower(filepath.Ext(path)),
				Size: fi.Size(),
			}
			if !yield(desc, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// ReadText returns the file's content, rejecting files that are likely
// binary. Callers treat any error as "exclude this file from evaluation".
func (s *Scanner) ReadText(f FileInfo) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(f.Path)))
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, &textDecodingError{path: f.Path}
	}
	return data, nil
}

func skipDir(name string) bool {
	switch name {
	case ".git", "node_modules", "vendor":
		return true
	}
	return strings.HasPrefix(name, ".")
}

// textDecodingError is returned when a file is likely binary and cannot be
// read as text.
type textDecodingError struct {
	path string
}

func (e *textDecodingError) Error() string {
	return fmt.Sprintf("cannot decode %s as text", e.path)
}
