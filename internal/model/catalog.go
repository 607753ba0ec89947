package model

import (
	"sort"
	"strings"
)

// GlobalParent is the owner recorded for functions without an enclosing
// named function.
const GlobalParent = "global"

// Category groups discovered functions by naming convention.
type Category string

const (
	CategoryHandler Category = "handler"
	CategoryHook    Category = "hook"
	CategoryUtility Category = "utility"
)

// Categorize derives the category of a function from its name: handle*/on*
// are handlers, use* are hooks, everything else is a utility.
func Categorize(name string) Category {
	switch {
	case strings.HasPrefix(name, "handle"), strings.HasPrefix(name, "on"):
		return CategoryHandler
	case strings.HasPrefix(name, "use"):
		return CategoryHook
	default:
		return CategoryUtility
	}
}

// FunctionEntry is the catalog record for one function name.
type FunctionEntry struct {
	Name     string   `json:"name"`
	File     Path     `json:"file"`
	Parent   string   `json:"parent"`
	Category Category `json:"category"`
}

// FunctionCatalog maps function names to where they were declared. It is
// built by a scan pass and consumed by a later rewrite pass.
type FunctionCatalog struct {
	entries map[string]FunctionEntry
}

// NewFunctionCatalog creates an empty catalog.
func NewFunctionCatalog() *FunctionCatalog {
	return &FunctionCatalog{entries: make(map[string]FunctionEntry)}
}

// Add records a function. A later Add for the same name replaces the
// earlier entry.
func (c *FunctionCatalog) Add(name string, file Path, parent string) FunctionEntry {
	if parent == "" {
		parent = GlobalParent
	}

	entry := FunctionEntry{
		Name:     name,
		File:     file,
		Parent:   parent,
		Category: Categorize(name),
	}
	c.entries[name] = entry

	return entry
}

// Get returns the entry for name.
func (c *FunctionCatalog) Get(name string) (FunctionEntry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Len returns the number of cataloged functions.
func (c *FunctionCatalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries sorted by category and then by name.
func (c *FunctionCatalog) Entries() []FunctionEntry {
	result := make([]FunctionEntry, 0, len(c.entries))
	for _, e := range c.entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}

		return result[i].Name < result[j].Name
	})

	return result
}

// Groups returns the catalog as selection groups keyed by category.
func (c *FunctionCatalog) Groups() []SelectionGroup {
	var groups []SelectionGroup

	index := make(map[Category]int)

	for _, e := range c.Entries() {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, SelectionGroup{Title: string(e.Category)})
		}

		groups[i].Items = append(groups[i].Items, SelectionItem{
			Name:   e.Name,
			Detail: e.Parent + " · " + string(e.File),
		})
	}

	return groups
}

// SelectionGroup is a titled list of names offered to the operator.
type SelectionGroup struct {
	Title string
	Items []SelectionItem
}

// SelectionItem is one selectable name.
type SelectionItem struct {
	Name   string
	Detail string
}
