package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/hooklens/internal/model"
)

type selectorItem struct {
	name   string
	group  string
	detail string
}

func (i selectorItem) FilterValue() string {
	return i.name + " " + i.group
}

type selectorKeyMap struct {
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var selectorKeys = selectorKeyMap{
	Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	All:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter or quit")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// checklistDelegate renders one item per line. The checked map is shared
// with the model.
type checklistDelegate struct {
	checked map[string]bool
}

func (d checklistDelegate) Height() int  { return 1 }
func (d checklistDelegate) Spacing() int { return 0 }
func (d checklistDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d checklistDelegate) Render(w io.Writer, l list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectorItem)
	if !ok {
		return
	}

	box := "[ ]"
	if d.checked[item.name] {
		box = "[x]"
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	if index == l.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	name := truncateToWidth(box+" "+item.name, l.Width()/2)
	detail := truncateToWidth(item.group+" · "+item.detail, l.Width()-lipgloss.Width(name)-2)

	_, _ = fmt.Fprintf(w, "%s  %s", nameStyle.Render(name), detailStyle.Render(detail))
}

// selectorModel is a multi-select checklist over named items.
type selectorModel struct {
	title    string
	width    int
	height   int
	items    []selectorItem
	total    int
	list     list.Model
	checked  map[string]bool
	canceled bool
}

func newSelectorModel(title string, groups []m.SelectionGroup) selectorModel {
	var (
		items     []selectorItem
		listItems []list.Item
	)

	for _, g := range groups {
		for _, it := range g.Items {
			item := selectorItem{name: it.Name, group: g.Title, detail: it.Detail}
			items = append(items, item)
			listItems = append(listItems, item)
		}
	}

	checked := make(map[string]bool)

	l := list.New(listItems, checklistDelegate{checked: checked}, defaultWidth, defaultHeight)
	l.SetShowPagination(true)
	l.SetShowFilter(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.FilterInput.Placeholder = "Filter by name…"

	return selectorModel{
		title:   title,
		items:   items,
		total:   len(items),
		list:    l,
		checked: checked,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Selected returns the checked names in offer order.
func (s selectorModel) Selected() []string {
	var names []string

	for _, item := range s.items {
		if s.checked[item.name] {
			names = append(names, item.name)
		}
	}

	return names
}

func (s selectorModel) Init() tea.Cmd {
	return nil
}

func (s selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

		return s, nil

	case tea.KeyMsg:
		if s.list.FilterState() == list.Filtering {
			if msg.String() == "ctrl+c" {
				s.canceled = true
				return s, tea.Quit
			}

			break
		}

		switch {
		case key.Matches(msg, selectorKeys.Back) && s.list.FilterState() == list.FilterApplied:
			// handled by the list
		case key.Matches(msg, selectorKeys.Quit), key.Matches(msg, selectorKeys.Back):
			s.canceled = true
			return s, tea.Quit
		case key.Matches(msg, selectorKeys.Confirm):
			return s, tea.Quit
		case key.Matches(msg, selectorKeys.Toggle):
			if item, ok := s.list.SelectedItem().(selectorItem); ok {
				s.toggle(item.name, !s.checked[item.name])
			}

			return s, nil
		case key.Matches(msg, selectorKeys.All):
			s.toggleVisible()
			return s, nil
		}
	}

	var cmd tea.Cmd

	s.list, cmd = s.list.Update(msg)

	return s, cmd
}

func (s selectorModel) toggle(name string, on bool) {
	if on {
		s.checked[name] = true
	} else {
		delete(s.checked, name)
	}
}

// toggleVisible checks every visible item, or clears them when all of them
// are already checked.
func (s selectorModel) toggleVisible() {
	visible := s.list.VisibleItems()

	all := true

	for _, li := range visible {
		if item, ok := li.(selectorItem); ok && !s.checked[item.name] {
			all = false
			break
		}
	}

	for _, li := range visible {
		if item, ok := li.(selectorItem); ok {
			s.toggle(item.name, !all)
		}
	}
}

func (s selectorModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("hooklens · " + s.title)
	summary := summaryStyle.Render(fmt.Sprintf(
		"Selected: %s of %s",
		accentStyle.Render(fmt.Sprintf("%d", len(s.checked))),
		accentStyle.Render(fmt.Sprintf("%d", s.total)),
	))

	listHeight := s.height - 8
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := s.width - 6

	s.list.SetHeight(listHeight)
	s.list.SetWidth(listWidth)

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(s.width).
		Render("↑/k up • ↓/j down • space toggle • a all • / filter • enter confirm • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		container.Render(s.list.View()),
		footer,
	)
}
