// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlbench/avl"
	"github.com/mattn/go-shellwords"
	"gopkg.in/op/go-logging.v1"
)

const playgroundHelp = `# Playground commands

| Command | Effect |
|---|---|
| ` + "`insert 5 3 8`" + ` | insert values, duplicates are skipped |
| ` + "`remove 3`" + ` | remove values, missing ones are skipped |
| ` + "`save`" + ` | keep a deep copy of the current tree |
| ` + "`restore`" + ` | replace the tree with the saved copy |
| ` + "`clear`" + ` | drop every node |
| ` + "`check`" + ` | verify ordering, balance and heights |
| ` + "`quit`" + ` | leave the playground |

Keys: **enter** run, **ctrl+y** copy values, **f1** toggle this help, **esc** quit.
`

var errQuit = errors.New("quit")

// playground holds the tree being edited, independent of the UI
type playground struct {
	tree     *avl.Tree
	snapshot *avl.Tree
	log      *logging.Logger
}

func newPlayground(log *logging.Logger) *playground {
	return &playground{
		tree: avl.New(),
		log:  log,
	}
}

// Execute runs one command line and returns a status message. errQuit
// asks the caller to leave.
func (p *playground) Execute(line string) (string, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %v", line, err)
	}
	if len(words) == 0 {
		return "", nil
	}

	cmd, args := strings.ToLower(words[0]), words[1:]
	p.log.Debugf("playground command %q %v", cmd, args)

	switch cmd {
	case "insert", "add", "i", "+":
		values, err := parseWords(args)
		if err != nil {
			return "", err
		}
		added := 0
		for _, v := range values {
			if p.tree.Insert(v) {
				added++
			}
		}
		return fmt.Sprintf("inserted %d, skipped %d duplicate(s)", added, len(values)-added), nil
	case "remove", "delete", "rm", "-":
		values, err := parseWords(args)
		if err != nil {
			return "", err
		}
		removed := 0
		for _, v := range values {
			if p.tree.Remove(v) {
				removed++
			}
		}
		return fmt.Sprintf("removed %d, %d not found", removed, len(values)-removed), nil
	case "save":
		p.snapshot = p.tree.Clone()
		return fmt.Sprintf("saved %d node(s)", p.snapshot.Size()), nil
	case "restore":
		if p.snapshot == nil {
			return "", fmt.Errorf("nothing saved yet")
		}
		p.tree.CopyFrom(p.snapshot)
		return fmt.Sprintf("restored %d node(s)", p.tree.Size()), nil
	case "clear":
		p.tree.Clear()
		return "tree cleared", nil
	case "check":
		if err := p.tree.Check(); err != nil {
			return "", err
		}
		return "tree is consistent", nil
	case "help":
		return "press f1 for the command list", nil
	case "quit", "exit", "q":
		return "", errQuit
	default:
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}

// Render draws the tree followed by its in-order values
func (p *playground) Render() string {
	var b strings.Builder
	p.tree.Print(&b)
	fmt.Fprintf(&b, "\nin-order: %s\nsize: %d  height: %d\n", joinValues(p.tree.Values()), p.tree.Size(), p.tree.Height())
	return b.String()
}

// PlaygroundModel is the Bubble Tea state of the play command
type PlaygroundModel struct {
	ready    bool
	showHelp bool

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model

	session *playground
	status  string
	failed  bool

	styles *Styles
	width  int
	height int
}

func NewPlaygroundModel(session *playground) PlaygroundModel {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8 1 4"
	ti.Prompt = "avl> "
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	treeView := viewport.New(0, 0)
	treeView.SetContent(session.Render())

	helpView := viewport.New(0, 0)
	helpText := playgroundHelp
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err == nil {
		if rendered, err := renderer.Render(playgroundHelp); err == nil {
			helpText = rendered
		}
	}
	helpView.SetContent(helpText)

	return PlaygroundModel{
		input:    ti,
		treeView: treeView,
		helpView: helpView,
		session:  session,
		styles:   NewStyles(),
	}
}

func (m PlaygroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.updateLayout()
			return m, nil
		case "ctrl+y":
			if err := copyToClipboard(joinValues(m.session.tree.Values())); err != nil {
				m.setStatus("", err)
			} else {
				m.setStatus("values copied to clipboard", nil)
			}
			return m, nil
		case "pgup", "pgdown":
			m.treeView, cmd = m.treeView.Update(msg)
			return m, cmd
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			status, err := m.session.Execute(line)
			if errors.Is(err, errQuit) {
				return m, tea.Quit
			}
			m.setStatus(status, err)
			m.treeView.SetContent(m.session.Render())
			m.treeView.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PlaygroundModel) setStatus(status string, err error) {
	m.failed = err != nil
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = status
}

func (m *PlaygroundModel) updateLayout() {
	treeWidth := m.width - 2
	if m.showHelp {
		treeWidth = m.width/2 - 1
	}
	m.input.Width = m.width - 10
	m.treeView.Width = treeWidth - 2
	m.treeView.Height = m.height - 9
	m.helpView.Width = m.width - treeWidth - 4
	m.helpView.Height = m.height - 9
}

func (m PlaygroundModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}
	m.updateLayout()

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.input.View())

	treeBox := m.styles.BorderBlurred.
		Width(m.treeView.Width + 2).
		Height(m.treeView.Height + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🌳 Tree "),
			m.treeView.View(),
		))

	body := treeBox
	if m.showHelp {
		helpBox := m.styles.BorderBlurred.
			Width(m.helpView.Width + 2).
			Height(m.helpView.Height + 1).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📖 Help "),
				m.helpView.View(),
			))
		body = lipgloss.JoinHorizontal(lipgloss.Top, treeBox, helpBox)
	}

	status := m.styles.SuccessMessage.Render(m.status)
	if m.failed {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		body,
		status,
		m.renderKeys(),
	)
}

func (m PlaygroundModel) renderKeys() string {
	keys := []string{"enter", "ctrl+y", "f1", "pgup/pgdown", "esc"}
	descs := []string{"run command", "copy values", "toggle help", "scroll tree", "quit"}

	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	return strings.Join(parts, m.styles.HelpDesc.Render(" • "))
}

// runPlayground starts the Bubble Tea program
func runPlayground(log *logging.Logger) error {
	model := NewPlaygroundModel(newPlayground(log))

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
