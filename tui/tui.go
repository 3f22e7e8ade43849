// Package tui is the Bubble Tea front end: a native text field over a
// scrollable output viewport.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/termfolio/engine"
	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// Options wires a Model to its engine and output.
type Options struct {
	Engine   *engine.Engine
	Recorder *render.Recorder // the engine's output
	Catalog  *render.Catalog
	Frames   engine.Frames
	Title    string
	Greeting []types.Element // shown before the first submission
}

// Model is the Bubble Tea model for the termfolio console.
type Model struct {
	engine *engine.Engine
	rec    *render.Recorder
	cat    *render.Catalog
	writer *render.TextWriter
	frames engine.Frames

	viewport viewport.Model
	input    textinput.Model

	title       string
	greeting    []types.Element
	lastInput   string
	submitted   bool
	completions []string

	width    int
	height   int
	ready    bool
	quitting bool
}

// frameMsg carries a board frame into the Update loop.
type frameMsg struct {
	frame types.Frame
}

// New creates a TUI model wired to the given engine.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "$ "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	title := opts.Title
	if title == "" {
		title = "termfolio"
	}
	return Model{
		engine:   opts.Engine,
		rec:      opts.Recorder,
		cat:      opts.Catalog,
		writer:   render.NewTextWriter(Styler{}),
		frames:   opts.Frames,
		input:    ti,
		title:    title,
		greeting: opts.Greeting,
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init starts the cursor blink and the frame listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForFrame(m.frames))
}

// waitForFrame blocks until the board publishes a frame.
func waitForFrame(ch engine.Frames) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return nil
		}
		return frameMsg{frame: f}
	}
}

// Update handles messages (key presses, window resize, board frames).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport(false)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "shift+up":
			if prev, ok := m.engine.HistoryPrev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "shift+down":
			if next, ok := m.engine.HistoryNext(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
			return m, nil

		case "tab":
			m.complete()
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
		m.completions = nil

	case frameMsg:
		if m.engine.ApplyFrame(m.rec, msg.frame) {
			m.refreshViewport(false)
		}
		return m, waitForFrame(m.frames)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// handleEnter submits the input line through the engine.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	out := m.engine.Submit(raw)

	m.lastInput = raw
	m.submitted = true
	m.completions = nil
	if out.ClearInput {
		m.input.SetValue("")
	}
	m.refreshViewport(true)
	return m, nil
}

// complete extends the input to the longest common completion and lists
// the candidates when more than one remains.
func (m *Model) complete() {
	value := m.input.Value()
	cands := m.engine.Complete(value)
	switch len(cands) {
	case 0:
		m.completions = nil
		return
	case 1:
		m.input.SetValue(cands[0] + " ")
		m.completions = nil
	default:
		if p := command.CommonPrefix(cands); len(p) > len(value) {
			m.input.SetValue(p)
		}
		m.completions = cands
	}
	m.input.CursorEnd()
}

// content renders the current output.
func (m Model) content() string {
	if !m.submitted {
		return m.writer.RenderAll(m.greeting)
	}
	body := m.writer.RenderAll(m.cat.ExpandAll(m.rec.Blocks()))
	return styledEcho(m.lastInput) + "\n\n" + body
}

// refreshViewport re-renders the output at the current width. top scrolls
// back to the start, used when a new submission replaced the output.
func (m *Model) refreshViewport(top bool) {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	m.viewport.SetContent(lipgloss.NewStyle().Width(width).Render(m.content()))
	if top {
		m.viewport.GotoTop()
	}
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled, leaving
// the arrow keys to the input field.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
