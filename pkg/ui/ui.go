// Package ui is the terminal presentation for one shared list. All mutation
// goes through the sync agent; the view just re-renders whenever the agent
// signals a change.
package ui

import (
	"fmt"
	"io"
	"strings"

	blist "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astromechza/handla/pkg/agent"
	"github.com/astromechza/handla/pkg/list"
	"github.com/astromechza/handla/pkg/parse"
	"github.com/astromechza/handla/pkg/suggest"
)

// refreshMsg arrives whenever the agent's local state or connectivity
// changed.
type refreshMsg struct{}

func waitForUpdate(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return refreshMsg{}
	}
}

// todoItem adapts a list.Todo to bubbles/list.Item.
type todoItem struct {
	todo list.Todo
}

func (i todoItem) label() string {
	return parse.Format(i.todo.Amount, i.todo.Unit, i.todo.Text)
}

func (i todoItem) Title() string       { return i.label() }
func (i todoItem) Description() string { return "" }
func (i todoItem) FilterValue() string { return i.todo.Text }

// single-line renderer
type todoDelegate struct{}

func (d todoDelegate) Height() int                                { return 1 }
func (d todoDelegate) Spacing() int                               { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *blist.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m blist.Model, index int, item blist.Item) {
	it, _ := item.(todoItem)
	box := mutedStyle.Render(boxUnchecked)
	text := it.label()
	if it.todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeRename
)

type Model struct {
	agent *agent.Agent
	list  blist.Model
	ti    textinput.Model
	index *suggest.Index
	hint  string
	mode  mode
}

func New(a *agent.Agent) Model {
	l := blist.New(nil, todoDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetStatusBarItemName("item", "items")

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{agent: a, list: l, ti: ti, index: suggest.NewIndex()}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForUpdate(m.agent.Updates())
}

// refresh rebuilds the widget from the agent's current snapshot.
func (m *Model) refresh() {
	snapshot, state := m.agent.Snapshot()

	items := make([]blist.Item, 0, len(snapshot.Todos))
	for _, t := range snapshot.SortedForDisplay() {
		items = append(items, todoItem{todo: t})
	}
	m.list.SetItems(items)

	name := snapshot.Name
	if name == "" {
		name = snapshot.ID
	}
	status := errorStyle.Render("offline")
	if state == agent.StateConnected {
		status = successStyle.Render("connected")
	}
	header := titleStyle.Render(name) + "  " + status
	if pending := m.agent.PendingCount(); pending > 0 {
		header += mutedStyle.Render(fmt.Sprintf("  %d queued", pending))
	}
	m.list.Title = header
}

func (m Model) selected() (list.Todo, bool) {
	if it, ok := m.list.SelectedItem().(todoItem); ok {
		return it.todo, true
	}
	return list.Todo{}, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.refresh()
		return m, waitForUpdate(m.agent.Updates())
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-3)
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			if t, ok := m.selected(); ok {
				t.Completed = !t.Completed
				m.agent.Send(list.Message{Type: list.TypeUpdate, Todo: &t})
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				m.agent.Send(list.Message{Type: list.TypeDelete, ID: t.ID})
			}
			return m, nil
		case "c":
			m.agent.Send(list.Message{Type: list.TypeDeleteCompleted})
			return m, nil
		case "a":
			m.mode = modeAdd
			m.ti.SetValue("")
			m.ti.Placeholder = "t.ex. 2 kg äpplen och mjölk"
			m.hint = ""
			m.ti.Focus()
			return m, nil
		case "r":
			m.mode = modeRename
			snapshot, _ := m.agent.Snapshot()
			m.ti.SetValue(snapshot.Name)
			m.ti.Placeholder = "List name"
			m.ti.CursorEnd()
			m.ti.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.ti.Value())
		switch m.mode {
		case modeAdd:
			if value != "" {
				for _, p := range parse.Items(value) {
					todo := agent.NewTodo(p.Text, p.Amount, p.Unit)
					m.agent.Send(list.Message{Type: list.TypeAdd, Todo: &todo})
				}
			}
		case modeRename:
			m.agent.Send(list.Message{Type: list.TypeUpdateName, Name: value})
		}
		m.mode = modeBrowse
		m.hint = ""
		m.ti.Blur()
		m.refresh()
		return m, nil
	case "esc":
		m.mode = modeBrowse
		m.hint = ""
		m.ti.Blur()
		return m, nil
	case "tab":
		if m.mode == modeAdd && m.hint != "" {
			m.ti.SetValue(acceptHint(m.ti.Value(), m.hint))
			m.ti.CursorEnd()
			m.hint = ""
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	if m.mode == modeAdd {
		m.hint = completionHint(m.index, m.ti.Value())
	}
	return m, cmd
}

// completionHint offers the best catalogue completion for whatever item is
// being typed last, staying quiet once the name is already typed out in full.
func completionHint(idx *suggest.Index, input string) string {
	items := parse.Items(input)
	last := items[len(items)-1].Text
	if last == "" {
		return ""
	}
	results := idx.Search(last, 1)
	if len(results) == 0 || strings.EqualFold(results[0].Name, last) {
		return ""
	}
	return results[0].Name
}

// acceptHint swaps the item being typed last for the suggested name, keeping
// any amount and unit in front of it.
func acceptHint(input, hint string) string {
	items := parse.Items(input)
	last := items[len(items)-1].Text
	if i := strings.LastIndex(input, last); last != "" && i >= 0 {
		return input[:i] + hint
	}
	return input
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	if m.mode != modeBrowse {
		prompt := "Add items"
		if m.mode == modeRename {
			prompt = "Rename list"
		}
		b.WriteString("\n" + mutedStyle.Render(prompt) + "\n" + m.ti.View())
		if m.hint != "" {
			b.WriteString("\n" + mutedStyle.Render("tab: "+m.hint))
		}
	}
	return b.String()
}
