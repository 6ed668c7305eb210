package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsum/internal/config"
	"textsum/internal/domain"
	"textsum/internal/summarizer"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	SummarizeText(text string, topN int) (summarizer.Summary, error)
	LoadText(path string) (domain.Document, error)
}

type focus int

const (
	focusEditor focus = iota
	focusSummary
	focusPath
)

const (
	statusIdle        = "Write or edit text, then summarize"
	statusNeedText    = "Please enter or load some text to summarize."
	statusSummarizing = "Summarizing..."
	statusDone        = "Text summarized successfully."
	statusLoaded      = "File loaded successfully."
)

type summaryMsg struct {
	summary summarizer.Summary
	err     error
}

type loadedMsg struct {
	doc domain.Document
	err error
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  SummaryPort
	editor   textarea.Model
	path     textinput.Model
	viewport viewport.Model
	summary  string
	status   string
	isError  bool
	topN     int
	focus    focus
	busy     bool
	ready    bool
}

// New creates a new TUI model instance. text pre-fills the editor and
// summary, if not empty, the summary pane.
func New(service SummaryPort, text, summary string, topN int) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste text, or press ctrl+o to open a file"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(text)
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "open: "
	ti.Placeholder = "path/to/document.txt"
	ti.CharLimit = 0

	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		editor:   ta,
		path:     ti,
		viewport: vp,
		summary:  summary,
		status:   statusIdle,
		topN:     clampTopN(topN),
	}
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// TopN returns the current summary length.
func (m Model) TopN() int { return m.topN }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.layout(msg.Width, msg.Height)
		return m, nil
	case summaryMsg:
		m.busy = false
		if msg.err != nil {
			m.setError("Error: " + msg.err.Error())
			return m, nil
		}
		m.summary = msg.summary.String()
		m.setStatus(statusDone)
		m.viewport.SetContent(m.renderSummary())
		m.viewport.GotoTop()
		return m, nil
	case loadedMsg:
		m.busy = false
		if msg.err != nil {
			m.setError("Error reading file: " + msg.err.Error())
			return m, nil
		}
		m.editor.SetValue(msg.doc.Content)
		m.setStatus(statusLoaded)
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.focus == focusPath {
			return m.updatePath(msg)
		}
		switch msg.String() {
		case "ctrl+s":
			return m.startSummary()
		case "ctrl+o":
			m.focus = focusPath
			m.editor.Blur()
			m.path.SetValue("")
			return m, m.path.Focus()
		case "tab":
			if m.focus == focusEditor {
				m.focus = focusSummary
				m.editor.Blur()
				return m, nil
			}
			m.focus = focusEditor
			return m, m.editor.Focus()
		case "ctrl+up":
			m.topN = clampTopN(m.topN + 1)
			return m, nil
		case "ctrl+down":
			m.topN = clampTopN(m.topN - 1)
			return m, nil
		}
		if m.focus == focusSummary {
			switch msg.String() {
			case "+", "=":
				m.topN = clampTopN(m.topN + 1)
				return m, nil
			case "-":
				m.topN = clampTopN(m.topN - 1)
				return m, nil
			}
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updatePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.path.Blur()
		m.focus = focusEditor
		return m, m.editor.Focus()
	case tea.KeyEnter:
		p := strings.TrimSpace(m.path.Value())
		m.path.Blur()
		m.focus = focusEditor
		if p == "" {
			return m, m.editor.Focus()
		}
		m.busy = true
		m.setStatus("Processing file: " + p)
		return m, tea.Batch(m.editor.Focus(), loadCmd(m.service, p))
	}
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m Model) startSummary() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := m.editor.Value()
	if strings.TrimSpace(text) == "" {
		m.setStatus(statusNeedText)
		return m, nil
	}
	m.busy = true
	m.setStatus(statusSummarizing)
	return m, summarizeCmd(m.service, text, m.topN)
}

// summarizeCmd runs the summary off the update loop so the UI keeps redrawing.
func summarizeCmd(svc SummaryPort, text string, topN int) tea.Cmd {
	return func() tea.Msg {
		sum, err := svc.SummarizeText(text, topN)
		return summaryMsg{summary: sum, err: err}
	}
}

func loadCmd(svc SummaryPort, path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := svc.LoadText(path)
		return loadedMsg{doc: doc, err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.isError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.isError = true
}

func (m *Model) layout(width, height int) {
	fw, fh := paneStyle.GetFrameSize()
	// header, pane title, path line, status
	reserved := 4 + fh
	h := max(3, height-reserved)
	half := max(20, width/2)
	m.editor.SetWidth(max(10, half-fw))
	m.editor.SetHeight(h)
	m.viewport.Width = max(10, width-half-fw)
	m.viewport.Height = h
	m.path.Width = max(10, width-len(m.path.Prompt)-1)
	m.viewport.SetContent(m.renderSummary())
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Text Summarizer") + "  " +
		hintStyle.Render(fmt.Sprintf("summary length: %d  (ctrl+s summarize, ctrl+o open, tab switch, ctrl+up/down length)", m.topN))
	left := titledPane("Original Text", m.editor.View(), m.focus == focusEditor)
	right := titledPane("Summary", m.viewport.View(), m.focus == focusSummary)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	line := ""
	if m.focus == focusPath {
		line = m.path.View()
	}
	status := statusStyle.Render(m.status)
	if m.isError {
		status = errorStyle.Render(m.status)
	}
	return header + "\n" + body + "\n" + line + "\n" + status
}

func (m Model) renderSummary() string {
	if m.summary == "" {
		return hintStyle.Render("No summary yet.")
	}
	if m.viewport.Width <= 0 {
		return m.summary
	}
	return lipgloss.NewStyle().Width(m.viewport.Width).Render(m.summary)
}

func titledPane(title, content string, focused bool) string {
	style := paneStyle
	if focused {
		style = style.BorderForeground(lipgloss.Color("12"))
	}
	return style.Render(titleStyle.Render(title) + "\n" + content)
}

func clampTopN(n int) int {
	if n < config.MinTopN {
		return config.MinTopN
	}
	if n > config.MaxTopN {
		return config.MaxTopN
	}
	return n
}

var (
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
