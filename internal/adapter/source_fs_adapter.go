// Package adapter contains the filesystem and parser adapters the hooklens
// workflows depend on.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/hooklens/internal/model"
)

// DiscoveryRules select which files of a tree are processed.
type DiscoveryRules struct {
	// Extensions lists the accepted file extensions, dot included.
	Extensions []string
	// SkipDirs are directory names that are never entered.
	SkipDirs []string
	// TestDir is skipped too when SkipTestDir is set. Files containing
	// ".test." or ".spec." and declaration files are always skipped.
	TestDir     string
	SkipTestDir bool
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover returns the source files under root in depth-first lexical
	// order. A file root yields only itself.
	Discover(root m.Path, rules DiscoveryRules) ([]m.File, error)

	// Walk traverses the provided root path recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the contents of an existing file, keeping its mode.
	WriteFile(path m.Path, content []byte) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover collects the source files selected by rules under root.
func (a *LocalSourceFSAdapter) Discover(root m.Path, rules DiscoveryRules) ([]m.File, error) {
	rootPath, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(m.Path(rootPath))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if !hasExtension(rootPath, rules.Extensions) {
			return nil, fmt.Errorf("unsupported file %s: expected one of %s", root, strings.Join(rules.Extensions, ", "))
		}

		return []m.File{{Path: m.Path(rootPath), ShortPath: m.Path(filepath.Base(rootPath))}}, nil
	}

	var files []m.File

	err = a.Walk(m.Path(rootPath), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("cannot access path", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if path != rootPath && skipDir(info.Name(), rules) {
				return filepath.SkipDir
			}

			return nil
		}

		if !includeFile(info.Name(), rules) {
			return nil
		}

		rel, err := a.RelPath(m.Path(rootPath), m.Path(path))
		if err != nil {
			rel = m.Path(path)
		}

		files = append(files, m.File{Path: m.Path(path), ShortPath: rel})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Walk iterates over files under root in lexical order.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile rewrites path with content, keeping the permissions of the
// existing file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.ToSlash(rel)), nil
}

func normalizeRootPath(root string) (string, error) {
	rootStr := root

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}

func skipDir(name string, rules DiscoveryRules) bool {
	if slices.Contains(rules.SkipDirs, name) {
		return true
	}

	return rules.SkipTestDir && rules.TestDir != "" && name == rules.TestDir
}

func includeFile(name string, rules DiscoveryRules) bool {
	if !hasExtension(name, rules.Extensions) || strings.HasSuffix(name, ".d.ts") {
		return false
	}

	return !strings.Contains(name, ".test.") && !strings.Contains(name, ".spec.")
}

func hasExtension(name string, extensions []string) bool {
	return slices.Contains(extensions, filepath.Ext(name))
}
