// Package model defines the data structures shared by the analysis and
// rewrite workflows.
package model

// Path represents a file system path.
type Path string

// Language identifies the grammar used to parse a source file.
type Language string

const (
	// LanguageJavaScript covers .js and .jsx files (JSX enabled).
	LanguageJavaScript Language = "javascript"
	// LanguageTypeScript covers .ts files.
	LanguageTypeScript Language = "typescript"
	// LanguageTSX covers .tsx files.
	LanguageTSX Language = "tsx"
)

// File describes a discovered source file.
type File struct {
	Path      Path
	ShortPath Path // path relative to the scanned root, used for display
}
