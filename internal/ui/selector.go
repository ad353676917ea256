package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one candidate table in the picker. Everything starts selected:
// the picker exists to narrow a probe run, not to build one from scratch.
type Item struct {
	Value    string
	Selected bool
}

func (i Item) FilterValue() string { return "" }

type keyMap struct {
	Toggle key.Binding
	Accept key.Binding
	Quit   key.Binding
	Help   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Accept, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Accept, k.Quit, k.Help},
	}
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("space", "toggle table"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "probe selected"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(Item)
	if !ok {
		return
	}

	style := itemStyle
	checkbox := "[ ]"
	if i.Selected {
		checkbox = "[x]"
		style = selectedItemStyle
	}

	str := fmt.Sprintf("%s %s", checkbox, i.Value)

	fn := style.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render(strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

type Model struct {
	List     list.Model
	keys     keyMap
	help     help.Model
	quitting bool
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.List.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Accept):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			i, ok := m.List.SelectedItem().(Item)
			if ok {
				i.Selected = !i.Selected
				m.List.SetItem(m.List.Index(), i)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		selected := m.SelectedTables()
		if len(selected) == 0 {
			return "No tables selected; probing the full catalog.\n"
		}
		return fmt.Sprintf("Probing: %s\n", strings.Join(selected, ", "))
	}

	return appStyle.Render(
		fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("Candidate Tables"),
			m.List.View(),
			m.help.View(m.keys),
		),
	)
}

// SelectedTables returns the still-checked table names in catalog order.
func (m Model) SelectedTables() []string {
	var selected []string
	for _, item := range m.List.Items() {
		if i, ok := item.(Item); ok && i.Selected {
			selected = append(selected, i.Value)
		}
	}
	return selected
}

func NewTableSelector(tables []string) Model {
	items := []list.Item{}
	for _, table := range tables {
		items = append(items, Item{Value: table, Selected: true})
	}

	l := list.New(items, itemDelegate{}, defaultWidth, listHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	h := help.New()
	h.ShowAll = false

	return Model{List: l, keys: keys, help: h}
}

// SelectTables runs the interactive picker over the candidate catalog and
// returns the narrowed list. An empty selection falls back to the full
// catalog so an accidental enter cannot produce an empty run.
func SelectTables(tables []string) ([]string, error) {
	program := tea.NewProgram(NewTableSelector(tables))
	m, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running table picker: %w", err)
	}

	final, ok := m.(Model)
	if !ok {
		return tables, nil
	}

	selected := final.SelectedTables()
	if len(selected) == 0 {
		return tables, nil
	}
	return selected, nil
}
