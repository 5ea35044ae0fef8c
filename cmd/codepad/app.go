package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/editor"
)

type appKeyMap struct {
	Quit key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// fileChangedMsg marks an external reset coming from --watch.
type fileChangedMsg struct {
	text string
}

// appModel hosts the editor full screen with a one-line footer. It never
// writes the file; --print hands the final text back to the shell.
type appModel struct {
	editor  editor.Model
	keys    appKeyMap
	path    string
	reloads int
	width   int
}

var footerStyle = lipgloss.NewStyle().Faint(true)

func newAppModel(path string, cfg editor.Config) appModel {
	return appModel{
		editor: editor.New(cfg),
		keys:   defaultAppKeyMap(),
		path:   path,
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case fileChangedMsg:
		m.reloads++
		m.editor, _ = m.editor.Update(editor.ResetMsg{Text: msg.text})
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.editor.View(), m.footer())
}

func (m appModel) footer() string {
	name := "[new]"
	if m.path != "" {
		name = filepath.Base(m.path)
	}
	s := fmt.Sprintf("%s · %s", name, m.editor.Language())
	if m.editor.ReadOnly() {
		s += " · read-only"
	}
	if m.reloads > 0 {
		s += fmt.Sprintf(" · reloaded %d×", m.reloads)
	}
	s += " · " + m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc
	if m.width > 0 {
		s = footerStyle.MaxWidth(m.width).Render(s)
	} else {
		s = footerStyle.Render(s)
	}
	return s
}
