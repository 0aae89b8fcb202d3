package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/backmassage/camswap/internal/shot"
	"github.com/backmassage/camswap/internal/term"
)

const (
	defaultWidth  = 100
	defaultHeight = 16
)

// candidate wraps a camera file path for the list display.
type candidate struct {
	path string
}

func (c candidate) Title() string       { return filepath.Base(c.path) }
func (c candidate) Description() string { return filepath.Dir(c.path) }
func (c candidate) FilterValue() string { return c.path }

// pickerModel is a single-choice list. It quits on enter or cancel.
type pickerModel struct {
	list      list.Model
	chosen    string
	cancelled bool
}

func newPickerModel(paths []string, id shot.Identity) pickerModel {
	items := make([]list.Item, len(paths))
	for i, p := range paths {
		items[i] = candidate{path: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = fmt.Sprintf("%d camera files for %s", len(paths), id)
	l.Styles.Title = term.Accent
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - 2
		if h < 5 {
			h = msg.Height
		}
		m.list.SetSize(msg.Width, h)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		// Keys belong to the filter input while it is open.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc", "q":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if c, ok := m.list.SelectedItem().(candidate); ok {
				m.chosen = c.path
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.chosen != "" || m.cancelled {
		return ""
	}
	return m.list.View() + "\n" + term.Debug.Render("enter select · / filter · esc skip shot") + "\n"
}

// Picker asks the user to choose among candidate camera files in a
// terminal list.
type Picker struct {
	Notifier
	in io.Reader
}

// NewPicker returns a Picker reading keys from in and drawing to out.
func NewPicker(in io.Reader, out io.Writer) *Picker {
	return &Picker{Notifier: Notifier{Out: out}, in: in}
}

// Disambiguate blocks until a path is chosen. Cancelling, or a terminal
// failure, reports false.
func (p *Picker) Disambiguate(paths []string, id shot.Identity) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	prog := tea.NewProgram(newPickerModel(paths, id), tea.WithInput(p.in), tea.WithOutput(p.Out))
	final, err := prog.Run()
	if err != nil {
		return "", false
	}
	m, ok := final.(pickerModel)
	if !ok || m.cancelled || m.chosen == "" {
		return "", false
	}
	return m.chosen, true
}
