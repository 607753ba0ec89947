package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"handleClick", CategoryHandler},
		{"handler", CategoryHandler},
		{"handle", CategoryHandler},
		{"onSubmit", CategoryHandler},
		{"online", CategoryHandler},
		{"once", CategoryHandler},
		{"useDraft", CategoryHook},
		{"user", CategoryHook},
		{"use", CategoryHook},
		{"save", CategoryUtility},
		{"Handle", CategoryUtility},
		{"reuse", CategoryUtility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.name))
		})
	}
}

func TestFunctionCatalog_AddRecategorizes(t *testing.T) {
	c := NewFunctionCatalog()
	c.Add("load", "a.js", "")

	entry, ok := c.Get("load")
	assert.True(t, ok)
	assert.Equal(t, GlobalParent, entry.Parent)
	assert.Equal(t, CategoryUtility, entry.Category)

	c.Add("load", "b.js", "App")

	entry, _ = c.Get("load")
	assert.Equal(t, Path("b.js"), entry.File)
	assert.Equal(t, "App", entry.Parent)
	assert.Equal(t, 1, c.Len())
}
