package engine

import (
	"unicode"
	"unicode/utf8"

	"github.com/mouse-blink/hooklens/internal/syntax"
)

// GlobalScope is returned when no suitable enclosing function exists.
const GlobalScope = "global"

// Owner returns the name of the innermost named function in frames,
// regardless of its case.
func Owner(frames []syntax.Frame) string {
	for i := len(frames) - 1; i >= 0; i-- {
		if frames[i].Name != "" {
			return frames[i].Name
		}
	}

	return GlobalScope
}

// Component returns the name of the innermost enclosing function whose name
// is capitalized, walking past lowercase helpers and anonymous callbacks.
func Component(frames []syntax.Frame) string {
	for i := len(frames) - 1; i >= 0; i-- {
		if IsComponentName(frames[i].Name) {
			return frames[i].Name
		}
	}

	return GlobalScope
}

// ComponentOrOwner prefers the enclosing component and falls back to the
// owning function.
func ComponentOrOwner(frames []syntax.Frame) string {
	if name := Component(frames); name != GlobalScope {
		return name
	}

	return Owner(frames)
}

// InsideFunction reports whether any frame is named name.
func InsideFunction(frames []syntax.Frame, name string) bool {
	for _, f := range frames {
		if f.Name == name {
			return true
		}
	}

	return false
}

// IsComponentName reports whether name starts with an uppercase letter.
func IsComponentName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return r != utf8.RuneError && unicode.IsUpper(r)
}
