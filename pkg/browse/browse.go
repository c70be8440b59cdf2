// Package browse implements the interactive terminal memory browser behind
// `cogmem browse`. It lists memories from the service, supports fuzzy
// filtering, and shows a detail view with syntax-highlighted code blocks.
package browse

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cogmemai/cogmem-go/pkg/cogmem"
)

// Lister is the slice of the cogmem client the browser needs.
type Lister interface {
	ListMemories(ctx context.Context, opts *cogmem.ListMemoriesOptions) (cogmem.Result, error)
}

type viewState int

const (
	stateLoading viewState = iota
	stateList
	stateDetail
)

type (
	memoriesLoadedMsg []memoryItem
	loadFailedMsg     struct{ err error }
	clearToastMsg     struct{}
)

// Model is the Bubble Tea model for the memory browser.
type Model struct {
	lister   Lister
	listOpts *cogmem.ListMemoriesOptions

	state    viewState
	list     list.Model
	selected memoryItem
	loadErr  error
	toast    string

	width  int
	height int
}

// New creates a browser that loads memories from lister with the given
// filters (nil means service defaults).
func New(lister Lister, listOpts *cogmem.ListMemoriesOptions) Model {
	memoryList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	memoryList.Title = "CogmemAi memories"
	memoryList.Styles.Title = titleStyle
	memoryList.SetShowStatusBar(false)

	return Model{
		lister:   lister,
		listOpts: listOpts,
		state:    stateLoading,
		list:     memoryList,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadMemories
}

// loadMemories fetches one page of memories from the service.
func (m Model) loadMemories() tea.Msg {
	result, err := m.lister.ListMemories(context.Background(), m.listOpts)
	if err != nil {
		return loadFailedMsg{err: err}
	}
	return memoriesLoadedMsg(parseMemories(result))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case memoriesLoadedMsg:
		m.state = stateList
		items := make([]list.Item, len(msg))
		for i, item := range msg {
			items[i] = item
		}
		return m, m.list.SetItems(items)

	case loadFailedMsg:
		m.state = stateList
		m.loadErr = msg.err
		return m, nil

	case clearToastMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == stateDetail {
		switch msg.String() {
		case "esc", "q":
			m.state = stateList
			return m, nil
		case "c":
			return m.copySelected()
		}
		return m, nil
	}

	// While the list filter input is active, every key belongs to it.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		if item, ok := m.list.SelectedItem().(memoryItem); ok {
			m.selected = item
			m.state = stateDetail
		}
		return m, nil
	case "c":
		if item, ok := m.list.SelectedItem().(memoryItem); ok {
			m.selected = item
			return m.copySelected()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// copySelected puts the selected memory's content on the system clipboard
// and shows a short-lived toast.
func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(m.selected.content); err != nil {
		m.toast = "clipboard unavailable"
	} else {
		m.toast = "copied to clipboard"
	}
	return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return statusStyle.Render("loading memories...")
	case stateDetail:
		return m.detailView()
	default:
		view := m.list.View()
		if m.loadErr != nil {
			view += "\n" + errorStyle.Render(fmt.Sprintf("error: %v", m.loadErr))
		}
		if m.toast != "" {
			view += "\n" + toastStyle.Render(m.toast)
		}
		return view
	}
}

func (m Model) detailView() string {
	header := detailHeaderStyle.Render(fmt.Sprintf("memory #%d", m.selected.id))
	meta := detailMetaStyle.Render(m.selected.Description())
	body := detailBodyStyle.Render(renderContent(m.selected.content))
	footer := statusStyle.Render("esc back  •  c copy  •  ctrl+c quit")

	view := header + "\n" + meta + "\n" + body + "\n" + footer
	if m.toast != "" {
		view += "\n" + toastStyle.Render(m.toast)
	}
	return view
}

// Run starts the browser in the alternate screen and blocks until the user
// quits.
func Run(lister Lister, listOpts *cogmem.ListMemoriesOptions) error {
	program := tea.NewProgram(New(lister, listOpts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
