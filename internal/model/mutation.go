package model

// CodemodType identifies a rewrite applied by the tool.
type CodemodType string

const (
	// CodemodSetterLog inserts a log before every useState setter call.
	CodemodSetterLog CodemodType = "setter-log"
	// CodemodEffectLog counts and logs every useEffect callback run.
	CodemodEffectLog CodemodType = "effect-log"
	// CodemodProfiler wraps component JSX returns with a Profiler element.
	CodemodProfiler CodemodType = "profiler"
	// CodemodTrace logs calls to (or entries into) selected functions.
	CodemodTrace CodemodType = "trace"
)

// Site is one location where synthesized code was inserted or where
// existing code was wrapped.
type Site struct {
	Type  CodemodType
	Line  int
	Label string
}
