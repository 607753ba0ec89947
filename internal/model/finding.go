package model

import "sort"

// ComplexityClass is the label assigned to a useState initializer.
type ComplexityClass string

const (
	ClassFunctionInit  ComplexityClass = "function initialization"
	ClassTernary       ComplexityClass = "ternary"
	ClassLogical       ComplexityClass = "logical expression"
	ClassCall          ComplexityClass = "function call"
	ClassComplexObject ComplexityClass = "complex object"
	ClassNonEmptyArray ComplexityClass = "non-empty array"
	ClassBinary        ComplexityClass = "binary expression"
	// ClassOther is only reported when the unlisted policy is "report".
	ClassOther ComplexityClass = "other"

	// ClassTrivial and ClassEmpty never produce findings.
	ClassTrivial ComplexityClass = "trivial"
	ClassEmpty   ComplexityClass = "empty literal"
)

// Finding is one reported useState initializer.
type Finding struct {
	Component string          `json:"component"`
	Variable  string          `json:"variable"`
	File      Path            `json:"file"`
	Line      int             `json:"line"`
	Class     ComplexityClass `json:"class"`
	Snippet   string          `json:"snippet"`
}

// ClassCount is the number of findings for one class.
type ClassCount struct {
	Class ComplexityClass `json:"class"`
	Count int             `json:"count"`
}

// AnalysisReport is the result of the states analysis.
type AnalysisReport struct {
	Findings []Finding    `json:"findings"`
	Summary  RunSummary   `json:"summary"`
	Counts   []ClassCount `json:"counts"`
}

// CountByClass aggregates findings per class, sorted by count descending and
// then by label.
func CountByClass(findings []Finding) []ClassCount {
	counts := make(map[ComplexityClass]int)
	for _, f := range findings {
		counts[f.Class]++
	}

	result := make([]ClassCount, 0, len(counts))
	for class, n := range counts {
		result = append(result, ClassCount{Class: class, Count: n})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}

		return result[i].Class < result[j].Class
	})

	return result
}
