package model

import (
	"sort"
	"strconv"
)

// Component is one component function found during the scan pass.
type Component struct {
	Name     string   `json:"name"`
	File     Path     `json:"file"`
	Line     int      `json:"line"`
	Children []string `json:"children,omitempty"`
}

// ComponentGraph records components and the components they render.
type ComponentGraph struct {
	components map[string]*Component
	order      []string
}

// NewComponentGraph creates an empty graph.
func NewComponentGraph() *ComponentGraph {
	return &ComponentGraph{components: make(map[string]*Component)}
}

// AddComponent registers a component. Registering a name twice keeps the
// children collected so far and updates the location.
func (g *ComponentGraph) AddComponent(name string, file Path, line int) {
	if c, ok := g.components[name]; ok {
		c.File = file
		c.Line = line

		return
	}

	g.components[name] = &Component{Name: name, File: file, Line: line}
	g.order = append(g.order, name)
}

// AddChild records that parent renders child. Duplicates are ignored.
func (g *ComponentGraph) AddChild(parent, child string) {
	c, ok := g.components[parent]
	if !ok || parent == child {
		return
	}

	for _, existing := range c.Children {
		if existing == child {
			return
		}
	}

	c.Children = append(c.Children, child)
}

// Get returns the component named name.
func (g *ComponentGraph) Get(name string) (Component, bool) {
	c, ok := g.components[name]
	if !ok {
		return Component{}, false
	}

	return *c, true
}

// Len returns the number of components.
func (g *ComponentGraph) Len() int {
	return len(g.order)
}

// Components returns all components sorted by name.
func (g *ComponentGraph) Components() []Component {
	result := make([]Component, 0, len(g.order))
	for _, name := range g.order {
		result = append(result, *g.components[name])
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result
}

// Roots returns components that no other known component renders, followed
// by the first component (by name) of every group that cannot be reached
// from an earlier root, so components inside cycles are never left out.
func (g *ComponentGraph) Roots() []string {
	referenced := make(map[string]bool)

	for _, c := range g.components {
		for _, child := range c.Children {
			if child != c.Name {
				referenced[child] = true
			}
		}
	}

	var roots []string

	reached := make(map[string]bool)
	components := g.Components()

	for _, c := range components {
		if !referenced[c.Name] {
			roots = append(roots, c.Name)
			g.reach(c.Name, reached)
		}
	}

	for _, c := range components {
		if !reached[c.Name] {
			roots = append(roots, c.Name)
			g.reach(c.Name, reached)
		}
	}

	return roots
}

// reach marks name and every known component it renders, directly or not.
func (g *ComponentGraph) reach(name string, reached map[string]bool) {
	stack := []string{name}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c, ok := g.components[current]
		if !ok || reached[current] {
			continue
		}

		reached[current] = true
		stack = append(stack, c.Children...)
	}
}

// Groups returns the components as selection groups keyed by file.
func (g *ComponentGraph) Groups() []SelectionGroup {
	var groups []SelectionGroup

	index := make(map[Path]int)

	components := g.Components()
	sort.SliceStable(components, func(i, j int) bool { return components[i].File < components[j].File })

	for _, c := range components {
		i, ok := index[c.File]
		if !ok {
			i = len(groups)
			index[c.File] = i
			groups = append(groups, SelectionGroup{Title: string(c.File)})
		}

		detail := "leaf"
		if len(c.Children) > 0 {
			detail = pluralize(len(c.Children), "child", "children")
		}

		groups[i].Items = append(groups[i].Items, SelectionItem{Name: c.Name, Detail: detail})
	}

	return groups
}

func pluralize(n int, one, many string) string {
	word := many
	if n == 1 {
		word = one
	}

	return strconv.Itoa(n) + " " + word
}
